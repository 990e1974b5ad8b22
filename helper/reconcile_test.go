package helper

import (
	"errors"
	"fulfillment_admin/constants"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"strings"
	"testing"
)

type fakeOrderUpdater struct {
	updated map[uint][2]string
	failOn  map[uint]error
}

func newFakeOrderUpdater() *fakeOrderUpdater {
	return &fakeOrderUpdater{updated: map[uint][2]string{}, failOn: map[uint]error{}}
}

func (f *fakeOrderUpdater) UpdateDeliveryInfo(orderId uint, courier, trackingNumber string) error {
	if err := f.failOn[orderId]; err != nil {
		return err
	}
	f.updated[orderId] = [2]string{courier, trackingNumber}
	return nil
}

type fakeNotifier struct {
	calls   int
	updates map[string]*model.PartnerUpdate
}

func (f *fakeNotifier) NotifyPartnerDeliveryUpdates(updates map[string]*model.PartnerUpdate) {
	f.calls++
	f.updates = updates
}

func reconcileCandidates() []model.Order {
	return []model.Order{
		{DTO: model.DTO{ID: 1}, OrderNumber: utils.Ptr("ORD-001"), RecipientName: "홍길동", OrderSource: "로켓그로스"},
		{DTO: model.DTO{ID: 2}, OrderNumber: utils.Ptr("ORD-002"), RecipientName: "김철수", OrderSource: "로켓그로스"},
		{DTO: model.DTO{ID: 3}, OrderNumber: utils.Ptr("ORD-003"), RecipientName: "이영희", OrderSource: "스몰닷"},
		{DTO: model.DTO{ID: 4}, OrderNumber: utils.Ptr("ORD-004"), RecipientName: "박민수", OrderSource: "스몰닷"},
		{DTO: model.DTO{ID: 5}, OrderNumber: utils.Ptr("ORD-005"), RecipientName: "최지우", OrderSource: ""},
	}
}

func deliveryRow(orderNumber string) model.DeliveryImportRow {
	return model.DeliveryImportRow{
		OrderNumber:    orderNumber,
		Courier:        "CJ대한통운",
		TrackingNumber: "123456789012",
	}
}

func TestReconcileDeliveryRows(t *testing.T) {
	t.Parallel()

	t.Run("failed row does not stop the batch", func(t *testing.T) {
		rows := []model.DeliveryImportRow{
			deliveryRow("ORD-001"),
			deliveryRow("ORD-002"),
			{OrderNumber: "ORD-003", Courier: "CJ대한통운"}, // 운송장번호 없음
			deliveryRow("ORD-004"),
			deliveryRow("ORD-005"),
		}

		store := newFakeOrderUpdater()
		report := ReconcileDeliveryRows(rows, reconcileCandidates(), store, nil, nil)

		if len(report.Successes) != 4 {
			t.Fatalf("expected 4 successes, got %d", len(report.Successes))
		}
		if len(report.Failures) != 1 {
			t.Fatalf("expected 1 failure, got %d", len(report.Failures))
		}
		if report.Failures[0].Row != 3 {
			t.Fatalf("expected failure at row 3, got row %d", report.Failures[0].Row)
		}
		if report.Failures[0].Reason != "택배사 또는 운송장번호가 없습니다" {
			t.Fatalf("unexpected failure reason: %s", report.Failures[0].Reason)
		}
		if len(store.updated) != 4 {
			t.Fatalf("expected 4 store updates, got %d", len(store.updated))
		}
		if _, ok := store.updated[3]; ok {
			t.Fatalf("order 3 must not be updated")
		}
	})

	t.Run("unmatched row reports identifying info", func(t *testing.T) {
		rows := []model.DeliveryImportRow{
			{OrderNumber: "ORD-999", RecipientName: "없는사람", Courier: "한진택배", TrackingNumber: "111"},
		}

		report := ReconcileDeliveryRows(rows, reconcileCandidates(), newFakeOrderUpdater(), nil, nil)
		if len(report.Failures) != 1 {
			t.Fatalf("expected 1 failure, got %d", len(report.Failures))
		}
		reason := report.Failures[0].Reason
		if !strings.Contains(reason, "ORD-999") || !strings.Contains(reason, "없는사람") {
			t.Fatalf("expected reason to carry order number and name, got %q", reason)
		}
	})

	t.Run("store error becomes row failure and batch continues", func(t *testing.T) {
		rows := []model.DeliveryImportRow{deliveryRow("ORD-001"), deliveryRow("ORD-002")}

		store := newFakeOrderUpdater()
		store.failOn[1] = errors.New("db timeout")

		report := ReconcileDeliveryRows(rows, reconcileCandidates(), store, nil, nil)
		if len(report.Successes) != 1 || len(report.Failures) != 1 {
			t.Fatalf("expected 1 success and 1 failure, got %d/%d", len(report.Successes), len(report.Failures))
		}
		if report.Failures[0].Identifier != "ORD-001" {
			t.Fatalf("expected ORD-001 failure, got %s", report.Failures[0].Identifier)
		}
	})

	t.Run("partner tallies grouped by order source and notified once", func(t *testing.T) {
		rows := []model.DeliveryImportRow{
			deliveryRow("ORD-001"),
			deliveryRow("ORD-002"),
			deliveryRow("ORD-003"),
			deliveryRow("ORD-005"), // 주문처 없음, 집계 제외
		}

		notifier := &fakeNotifier{}
		report := ReconcileDeliveryRows(rows, reconcileCandidates(), newFakeOrderUpdater(), notifier, nil)

		if notifier.calls != 1 {
			t.Fatalf("expected exactly 1 notifier call, got %d", notifier.calls)
		}
		if len(report.PartnerUpdates) != 2 {
			t.Fatalf("expected 2 partner groups, got %d", len(report.PartnerUpdates))
		}
		if report.PartnerUpdates["로켓그로스"].Count != 2 {
			t.Fatalf("expected 로켓그로스 count 2, got %d", report.PartnerUpdates["로켓그로스"].Count)
		}
		if report.PartnerUpdates["스몰닷"].Count != 1 {
			t.Fatalf("expected 스몰닷 count 1, got %d", report.PartnerUpdates["스몰닷"].Count)
		}
	})

	t.Run("no successes means no notification", func(t *testing.T) {
		rows := []model.DeliveryImportRow{{OrderNumber: "ORD-001"}} // 택배사 없음

		notifier := &fakeNotifier{}
		ReconcileDeliveryRows(rows, reconcileCandidates(), newFakeOrderUpdater(), notifier, nil)
		if notifier.calls != 0 {
			t.Fatalf("expected no notifier calls, got %d", notifier.calls)
		}
	})

	t.Run("empty input yields empty report", func(t *testing.T) {
		report := ReconcileDeliveryRows(nil, reconcileCandidates(), newFakeOrderUpdater(), nil, nil)
		if len(report.Successes) != 0 || len(report.Failures) != 0 {
			t.Fatalf("expected empty report, got %d/%d", len(report.Successes), len(report.Failures))
		}
	})

	t.Run("progress callback fired per row", func(t *testing.T) {
		rows := []model.DeliveryImportRow{deliveryRow("ORD-001"), deliveryRow("ORD-002"), {OrderNumber: "ORD-003"}}

		seen := []int{}
		ReconcileDeliveryRows(rows, reconcileCandidates(), newFakeOrderUpdater(), nil, func(done, total int) {
			if total != 3 {
				t.Fatalf("expected total 3, got %d", total)
			}
			seen = append(seen, done)
		})
		if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
			t.Fatalf("expected progress 1..3, got %v", seen)
		}
	})

	t.Run("matched order status promoted to shipped locally", func(t *testing.T) {
		candidates := reconcileCandidates()
		ReconcileDeliveryRows([]model.DeliveryImportRow{deliveryRow("ORD-001")}, candidates, newFakeOrderUpdater(), nil, nil)
		if candidates[0].Status != constants.ORDER_SHIPPED {
			t.Fatalf("expected candidate status SHIPPED, got %q", candidates[0].Status)
		}
		if candidates[0].TrackingNumber != "123456789012" {
			t.Fatalf("expected tracking number applied, got %q", candidates[0].TrackingNumber)
		}
	})
}

func TestParseDeliveryRow(t *testing.T) {
	t.Parallel()

	raw := map[string]string{
		constants.COL_ORDER_NUMBER: " ORD-001 ",
		constants.COL_NAME:         "홍길동",
		constants.COL_PHONE:        "02-1234-5678",
		constants.COL_MOBILE:       " 010-1234-5678",
		constants.COL_COURIER:      "CJ대한통운 ",
		constants.COL_TRACKING:     "123456789012",
	}

	row := ParseDeliveryRow(raw)
	if row.OrderNumber != "ORD-001" {
		t.Fatalf("expected trimmed order number, got %q", row.OrderNumber)
	}
	if row.Courier != "CJ대한통운" {
		t.Fatalf("expected trimmed courier, got %q", row.Courier)
	}
	if row.RecipientMobile != "010-1234-5678" {
		t.Fatalf("expected trimmed mobile, got %q", row.RecipientMobile)
	}

	empty := ParseDeliveryRow(map[string]string{})
	if empty.OrderNumber != "" || empty.TrackingNumber != "" {
		t.Fatalf("expected zero row for missing headers, got %+v", empty)
	}
}

func TestFormatBatchReport(t *testing.T) {
	t.Parallel()

	t.Run("caps failure detail at display limit", func(t *testing.T) {
		report := model.BatchReport{}
		for i := 0; i < 15; i++ {
			report.Failures = append(report.Failures, model.ImportFailure{
				Row:        i + 1,
				Identifier: "없음",
				Reason:     "매칭되는 주문을 찾을 수 없습니다",
			})
		}

		out := FormatBatchReport(report)
		if !strings.Contains(out, "실패: 15건") {
			t.Fatalf("expected failure count in output: %s", out)
		}
		if !strings.Contains(out, "... 외 5건") {
			t.Fatalf("expected overflow marker, got: %s", out)
		}
		if strings.Count(out, "- 행") != constants.IMPORT_ERROR_DISPLAY_LIMIT {
			t.Fatalf("expected %d detail lines, got %d", constants.IMPORT_ERROR_DISPLAY_LIMIT, strings.Count(out, "- 행"))
		}
	})

	t.Run("success only report omits failure section", func(t *testing.T) {
		report := model.BatchReport{
			Successes: []model.ImportSuccess{{Row: 1, Identifier: "ORD-001"}},
		}
		out := FormatBatchReport(report)
		if !strings.Contains(out, "성공: 1건") {
			t.Fatalf("expected success count, got: %s", out)
		}
		if strings.Contains(out, "실패") {
			t.Fatalf("expected no failure section, got: %s", out)
		}
	})
}
