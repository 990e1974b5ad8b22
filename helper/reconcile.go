package helper

import (
	"fmt"
	"fulfillment_admin/constants"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"strings"
)

// OrderUpdater 배송정보 저장 협력자. 핸들러에서 DB 구현을 주입한다.
type OrderUpdater interface {
	UpdateDeliveryInfo(orderId uint, courier, trackingNumber string) error
}

// PartnerNotifier 협력사별 통합 알림 협력자. 실패해도 배치에는 영향 없음.
type PartnerNotifier interface {
	NotifyPartnerDeliveryUpdates(updates map[string]*model.PartnerUpdate)
}

// ProgressFunc 행 처리 진행률 콜백 (웹소켓 전송용, nil 허용)
type ProgressFunc func(done, total int)

// ParseDeliveryRow 한국어 헤더 기반 원시 행을 DeliveryImportRow로 변환.
// 문자열 기반 셀 접근은 전부 여기서 끝낸다.
func ParseDeliveryRow(raw map[string]string) model.DeliveryImportRow {
	return model.DeliveryImportRow{
		OrderNumber:     strings.TrimSpace(raw[constants.COL_ORDER_NUMBER]),
		RecipientName:   strings.TrimSpace(raw[constants.COL_NAME]),
		RecipientPhone:  strings.TrimSpace(raw[constants.COL_PHONE]),
		RecipientMobile: strings.TrimSpace(raw[constants.COL_MOBILE]),
		Courier:         strings.TrimSpace(raw[constants.COL_COURIER]),
		TrackingNumber:  strings.TrimSpace(raw[constants.COL_TRACKING]),
	}
}

// ReconcileDeliveryRows 배송정보 행들을 주문에 반영한다.
// 행마다 독립 처리: 한 행이 실패해도 나머지는 계속 진행된다.
// 성공 건은 고객주문처명별로 모아 마지막에 한 번씩만 알림을 보낸다.
func ReconcileDeliveryRows(
	rows []model.DeliveryImportRow,
	candidates []model.Order,
	store OrderUpdater,
	notifier PartnerNotifier,
	progress ProgressFunc,
) model.BatchReport {
	report := model.BatchReport{
		Successes:      []model.ImportSuccess{},
		Failures:       []model.ImportFailure{},
		PartnerUpdates: map[string]*model.PartnerUpdate{},
	}

	for i, row := range rows {
		rowNumber := i + 1
		identifier := utils.FirstNonEmpty(row.OrderNumber, row.RecipientName, fmt.Sprintf("행 %d", rowNumber))

		if progress != nil {
			progress(rowNumber, len(rows))
		}

		if row.Courier == "" || row.TrackingNumber == "" {
			report.Failures = append(report.Failures, model.ImportFailure{
				Row:        rowNumber,
				Identifier: identifier,
				Reason:     "택배사 또는 운송장번호가 없습니다",
			})
			continue
		}

		result := MatchOrder(row, candidates)
		if !result.Matched {
			report.Failures = append(report.Failures, model.ImportFailure{
				Row:        rowNumber,
				Identifier: identifier,
				Reason: fmt.Sprintf("매칭되는 주문을 찾을 수 없습니다 (주문번호: %s, 고객명: %s)",
					orEmptyLabel(row.OrderNumber), orEmptyLabel(row.RecipientName)),
			})
			continue
		}

		order := result.Order
		if err := store.UpdateDeliveryInfo(order.ID, row.Courier, row.TrackingNumber); err != nil {
			report.Failures = append(report.Failures, model.ImportFailure{
				Row:        rowNumber,
				Identifier: identifier,
				Reason:     err.Error(),
			})
			continue
		}

		// 로컬 후보 목록에도 반영해 같은 배치 안에서 일관되게 보이도록 한다
		order.Courier = row.Courier
		order.TrackingNumber = row.TrackingNumber
		order.Status = constants.ORDER_SHIPPED

		orderKey := identifier
		if row.OrderNumber == "" && order.OrderNumber != nil {
			orderKey = *order.OrderNumber
		}
		report.Successes = append(report.Successes, model.ImportSuccess{Row: rowNumber, Identifier: orderKey})

		// 협력사별 성공 건수 집계
		if order.OrderSource != "" {
			update := report.PartnerUpdates[order.OrderSource]
			if update == nil {
				update = &model.PartnerUpdate{OrderSource: order.OrderSource}
				report.PartnerUpdates[order.OrderSource] = update
			}
			update.Count++
			update.Orders = append(update.Orders, orderKey)
		}
	}

	// 협력사별 통합 알림 (행 단위가 아니라 협력사당 1회)
	if notifier != nil && len(report.PartnerUpdates) > 0 {
		notifier.NotifyPartnerDeliveryUpdates(report.PartnerUpdates)
	}

	return report
}

// FormatBatchReport 작업자에게 보여줄 결과 요약. 실패 내역은 앞 10건까지만.
func FormatBatchReport(report model.BatchReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "성공: %d건\n", len(report.Successes))
	if len(report.Failures) > 0 {
		fmt.Fprintf(&sb, "실패: %d건\n\n실패 상세:\n", len(report.Failures))
		limit := constants.IMPORT_ERROR_DISPLAY_LIMIT
		for i, failure := range report.Failures {
			if i >= limit {
				fmt.Fprintf(&sb, "\n... 외 %d건", len(report.Failures)-limit)
				break
			}
			fmt.Fprintf(&sb, "- 행 %d (%s): %s\n", failure.Row, failure.Identifier, failure.Reason)
		}
	}
	return sb.String()
}

func orEmptyLabel(s string) string {
	if s == "" {
		return "없음"
	}
	return s
}
