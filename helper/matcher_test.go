package helper

import (
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"testing"
)

func candidateOrders() []model.Order {
	return []model.Order{
		{DTO: model.DTO{ID: 1}, OrderNumber: utils.Ptr("ORD-001"), RecipientName: "홍길동", RecipientPhone: "02-1234-5678", RecipientMobile: "010-1111-2222"},
		{DTO: model.DTO{ID: 2}, OrderNumber: utils.Ptr("ORD-002"), RecipientName: "김철수", RecipientPhone: "031-123-4567", RecipientMobile: "010-3333-4444"},
		{DTO: model.DTO{ID: 3}, OrderNumber: nil, RecipientName: "홍길동", RecipientPhone: "02-9999-8888", RecipientMobile: "010-5555-6666"},
	}
}

func TestMatchOrder(t *testing.T) {
	t.Parallel()

	t.Run("matches by order number first", func(t *testing.T) {
		row := model.DeliveryImportRow{OrderNumber: "ORD-002"}
		result := MatchOrder(row, candidateOrders())
		if !result.Matched {
			t.Fatalf("expected a match")
		}
		if result.Order.ID != 2 {
			t.Fatalf("expected order 2, got %d", result.Order.ID)
		}
	})

	t.Run("order number wins even when name and phone point elsewhere", func(t *testing.T) {
		row := model.DeliveryImportRow{
			OrderNumber:    "ORD-001",
			RecipientName:  "김철수",
			RecipientPhone: "031-123-4567",
		}
		result := MatchOrder(row, candidateOrders())
		if !result.Matched || result.Order.ID != 1 {
			t.Fatalf("expected order 1 via order number, got %+v", result)
		}
	})

	t.Run("falls back to name plus landline", func(t *testing.T) {
		row := model.DeliveryImportRow{
			OrderNumber:    "ORD-999",
			RecipientName:  "홍길동",
			RecipientPhone: "02-9999-8888",
		}
		result := MatchOrder(row, candidateOrders())
		if !result.Matched || result.Order.ID != 3 {
			t.Fatalf("expected order 3 via name+phone, got %+v", result)
		}
	})

	t.Run("falls back to name plus mobile last", func(t *testing.T) {
		row := model.DeliveryImportRow{
			RecipientName:   "김철수",
			RecipientPhone:  "02-0000-0000",
			RecipientMobile: "010-3333-4444",
		}
		result := MatchOrder(row, candidateOrders())
		if !result.Matched || result.Order.ID != 2 {
			t.Fatalf("expected order 2 via name+mobile, got %+v", result)
		}
	})

	t.Run("first occurrence wins on duplicate keys", func(t *testing.T) {
		candidates := candidateOrders()
		dup := candidates[0]
		dup.ID = 99
		candidates = append(candidates, dup)

		row := model.DeliveryImportRow{OrderNumber: "ORD-001"}
		result := MatchOrder(row, candidates)
		if !result.Matched || result.Order.ID != 1 {
			t.Fatalf("expected first occurrence (order 1), got %+v", result)
		}
	})

	t.Run("no keys means no match", func(t *testing.T) {
		result := MatchOrder(model.DeliveryImportRow{Courier: "CJ대한통운", TrackingNumber: "123"}, candidateOrders())
		if result.Matched {
			t.Fatalf("expected no match, got order %d", result.Order.ID)
		}
	})

	t.Run("name alone is not enough", func(t *testing.T) {
		result := MatchOrder(model.DeliveryImportRow{RecipientName: "홍길동"}, candidateOrders())
		if result.Matched {
			t.Fatalf("expected no match on name only, got order %d", result.Order.ID)
		}
	})

	t.Run("empty candidate list", func(t *testing.T) {
		result := MatchOrder(model.DeliveryImportRow{OrderNumber: "ORD-001"}, nil)
		if result.Matched {
			t.Fatalf("expected no match against empty candidates")
		}
	})
}
