package helper

import (
	"fulfillment_admin/model"
)

// MatchOrder 가져온 행을 기존 주문에 매칭한다.
// 우선순위: 주문번호 > 고객명+전화번호 > 고객명+이동통신.
// 후보 목록 순서상 첫 번째 일치를 채택한다 (중복 주문번호가 있어도 첫 건이 기준).
func MatchOrder(row model.DeliveryImportRow, candidates []model.Order) model.MatchResult {
	// 1. 주문번호로 매칭
	if row.OrderNumber != "" {
		for i := range candidates {
			if candidates[i].OrderNumber != nil && *candidates[i].OrderNumber == row.OrderNumber {
				return model.MatchResult{Matched: true, Order: &candidates[i]}
			}
		}
	}

	// 2. 주문번호 매칭 실패 시 고객명 + 전화번호로 매칭
	if row.RecipientName != "" && row.RecipientPhone != "" {
		for i := range candidates {
			if candidates[i].RecipientName == row.RecipientName && candidates[i].RecipientPhone == row.RecipientPhone {
				return model.MatchResult{Matched: true, Order: &candidates[i]}
			}
		}
	}

	// 3. 그래도 실패 시 고객명 + 이동통신으로 매칭
	if row.RecipientName != "" && row.RecipientMobile != "" {
		for i := range candidates {
			if candidates[i].RecipientName == row.RecipientName && candidates[i].RecipientMobile == row.RecipientMobile {
				return model.MatchResult{Matched: true, Order: &candidates[i]}
			}
		}
	}

	return model.MatchResult{}
}
