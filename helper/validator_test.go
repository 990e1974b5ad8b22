package helper

import (
	"fulfillment_admin/constants"
	"fulfillment_admin/model"
	"testing"
)

func validOrder() model.Order {
	return model.Order{
		DTO:             model.DTO{ID: 1},
		RecipientName:   "홍길동",
		RecipientPhone:  "02-1234-5678",
		RecipientMobile: "010-1234-5678",
		RecipientAddr:   "서울시 강남구 테헤란로 123",
	}
}

func TestIsAcceptedPhone(t *testing.T) {
	t.Parallel()

	accepted := []string{
		"02-1234-5678",
		"031-123-4567",
		"010-1234-5678",
		"010-123-4567",
		"0501-1234-5678",
		"0510-1234-5678",
	}
	for _, phone := range accepted {
		if !IsAcceptedPhone(phone) {
			t.Fatalf("expected %q to be accepted", phone)
		}
	}

	rejected := []string{
		"",
		"123-456",
		"0212345678",
		"02-1234-567",
		"0511-1234-5678",
		"010 1234 5678",
		"+82-10-1234-5678",
	}
	for _, phone := range rejected {
		if IsAcceptedPhone(phone) {
			t.Fatalf("expected %q to be rejected", phone)
		}
	}
}

func TestValidateOrder(t *testing.T) {
	t.Parallel()

	t.Run("valid order has no defects", func(t *testing.T) {
		defects := ValidateOrder(validOrder())
		if len(defects) != 0 {
			t.Fatalf("expected no defects, got %d: %+v", len(defects), defects)
		}
	})

	t.Run("missing both phone numbers yields single missing_phone defect", func(t *testing.T) {
		order := validOrder()
		order.RecipientPhone = ""
		order.RecipientMobile = ""

		defects := ValidateOrder(order)
		if len(defects) != 1 {
			t.Fatalf("expected 1 defect, got %d", len(defects))
		}
		if defects[0].ErrorType != constants.DEFECT_MISSING_PHONE {
			t.Fatalf("expected %s, got %s", constants.DEFECT_MISSING_PHONE, defects[0].ErrorType)
		}
		if defects[0].Field != "recipientPhone" {
			t.Fatalf("expected field recipientPhone, got %s", defects[0].Field)
		}
	})

	t.Run("whitespace-only values count as missing", func(t *testing.T) {
		order := validOrder()
		order.RecipientPhone = "   "
		order.RecipientMobile = "\t"
		order.RecipientAddr = " "

		defects := ValidateOrder(order)
		if len(defects) != 2 {
			t.Fatalf("expected 2 defects, got %d: %+v", len(defects), defects)
		}
		if defects[0].ErrorType != constants.DEFECT_MISSING_PHONE {
			t.Fatalf("expected missing_phone first, got %s", defects[0].ErrorType)
		}
		if defects[1].ErrorType != constants.DEFECT_MISSING_ADDR {
			t.Fatalf("expected missing_address second, got %s", defects[1].ErrorType)
		}
	})

	t.Run("landline format error reported even when mobile is valid", func(t *testing.T) {
		order := validOrder()
		order.RecipientPhone = "123-456"
		order.RecipientMobile = "010-1234-5678"

		defects := ValidateOrder(order)
		if len(defects) != 1 {
			t.Fatalf("expected 1 defect, got %d: %+v", len(defects), defects)
		}
		if defects[0].Field != "recipientPhone" {
			t.Fatalf("expected recipientPhone defect, got %s", defects[0].Field)
		}
		if defects[0].ErrorType != constants.DEFECT_INVALID_FORMAT {
			t.Fatalf("expected invalid_phone_format, got %s", defects[0].ErrorType)
		}
	})

	t.Run("mobile not checked once landline is valid", func(t *testing.T) {
		order := validOrder()
		order.RecipientPhone = "02-1234-5678"
		order.RecipientMobile = "broken"

		defects := ValidateOrder(order)
		if len(defects) != 0 {
			t.Fatalf("expected no defects, got %d: %+v", len(defects), defects)
		}
	})

	t.Run("both malformed yields two format defects", func(t *testing.T) {
		order := validOrder()
		order.RecipientPhone = "123-456"
		order.RecipientMobile = "789"

		defects := ValidateOrder(order)
		if len(defects) != 2 {
			t.Fatalf("expected 2 defects, got %d: %+v", len(defects), defects)
		}
		if defects[0].Field != "recipientPhone" || defects[1].Field != "recipientMobile" {
			t.Fatalf("unexpected defect fields: %s, %s", defects[0].Field, defects[1].Field)
		}
	})

	t.Run("mobile-only order with valid mobile passes", func(t *testing.T) {
		order := validOrder()
		order.RecipientPhone = ""
		order.RecipientMobile = "0501-1234-5678"

		defects := ValidateOrder(order)
		if len(defects) != 0 {
			t.Fatalf("expected no defects, got %+v", defects)
		}
	})

	t.Run("missing address flagged with contact info attached", func(t *testing.T) {
		order := validOrder()
		order.RecipientAddr = ""

		defects := ValidateOrder(order)
		if len(defects) != 1 {
			t.Fatalf("expected 1 defect, got %d", len(defects))
		}
		if defects[0].ErrorType != constants.DEFECT_MISSING_ADDR {
			t.Fatalf("expected missing_address, got %s", defects[0].ErrorType)
		}
		if defects[0].RecipientPhone == nil || *defects[0].RecipientPhone != "02-1234-5678" {
			t.Fatalf("expected contact to fall back to landline, got %v", defects[0].RecipientPhone)
		}
	})
}

func TestValidateOrders(t *testing.T) {
	t.Parallel()

	orders := []model.Order{}
	for i := 0; i < 3; i++ {
		order := validOrder()
		order.ID = uint(i + 1)
		order.RecipientPhone = ""
		order.RecipientMobile = ""
		orders = append(orders, order)
	}

	t.Run("defects preserve input order", func(t *testing.T) {
		defects := ValidateOrders(orders)
		if len(defects) != 3 {
			t.Fatalf("expected 3 defects, got %d", len(defects))
		}
		for i, d := range defects {
			if d.OrderId != uint(i+1) {
				t.Fatalf("expected defect %d for order %d, got %d", i, i+1, d.OrderId)
			}
		}
	})

	t.Run("same input always yields same result", func(t *testing.T) {
		first := ValidateOrders(orders)
		second := ValidateOrders(orders)
		if len(first) != len(second) {
			t.Fatalf("expected identical results, got %d and %d defects", len(first), len(second))
		}
		for i := range first {
			if first[i].OrderId != second[i].OrderId ||
				first[i].ErrorType != second[i].ErrorType ||
				first[i].Field != second[i].Field ||
				first[i].ErrorMessage != second[i].ErrorMessage {
				t.Fatalf("defect %d differs between runs", i)
			}
		}
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		defects := ValidateOrders(nil)
		if len(defects) != 0 {
			t.Fatalf("expected no defects, got %d", len(defects))
		}
	})
}
