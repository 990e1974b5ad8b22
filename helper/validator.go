package helper

import (
	"fmt"
	"fulfillment_admin/constants"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"regexp"
)

// 전화번호 형식 정규식
var (
	landlineRegex   = regexp.MustCompile(`^0\d{1,2}-\d{3,4}-\d{4}$`)        // 일반전화: 02-1234-5678, 031-123-4567
	mobileRegex     = regexp.MustCompile(`^01[0-9]-\d{3,4}-\d{4}$`)         // 휴대전화: 010-1234-5678
	safeNumberRegex = regexp.MustCompile(`^05(?:0[1-9]|10)-\d{3,4}-\d{4}$`) // 안심번호: 0501-1234-5678 ~ 0510-1234-5678
)

// IsAcceptedPhone 세 가지 허용 형식 중 하나라도 맞으면 true
func IsAcceptedPhone(phone string) bool {
	return landlineRegex.MatchString(phone) || mobileRegex.MatchString(phone) || safeNumberRegex.MatchString(phone)
}

// ValidateOrders 주문 목록 전체를 검증해 필드 단위 오류 목록을 만든다.
// 순수 함수: 입력 순서대로 규칙 순서대로 오류가 쌓이고, 같은 입력이면 항상 같은 결과.
func ValidateOrders(orders []model.Order) []model.ValidationDefect {
	defects := []model.ValidationDefect{}
	for _, order := range orders {
		defects = append(defects, ValidateOrder(order)...)
	}
	return defects
}

// ValidateOrder 주문 1건 검증 (핵심 3가지: 전화번호 유무, 형식, 주소 유무)
func ValidateOrder(order model.Order) []model.ValidationDefect {
	defects := []model.ValidationDefect{}

	recipientName := utils.StringPtr(order.RecipientName)
	contact := utils.StringPtr(utils.FirstNonEmpty(order.RecipientPhone, order.RecipientMobile))

	phone, hasPhone := utils.Presence(order.RecipientPhone)
	mobile, hasMobile := utils.Presence(order.RecipientMobile)

	// 1. 전화번호 유무 (일반전화/휴대전화 둘 다 없을 때만)
	if !hasPhone && !hasMobile {
		defects = append(defects, model.ValidationDefect{
			OrderId:        order.ID,
			RecipientName:  recipientName,
			RecipientPhone: nil,
			ErrorType:      constants.DEFECT_MISSING_PHONE,
			ErrorMessage:   "전화번호가 없습니다",
			Field:          "recipientPhone",
			Severity:       constants.SEVERITY_ERROR,
			Details:        "배송을 위해 연락처가 필요합니다",
		})
	} else {
		// 2. 전화번호 형식. 유효한 번호를 하나 찾으면 휴대전화는 더 보지 않는다.
		// 일반전화가 엉터리여도 휴대전화가 유효하면 주문 자체는 배송 가능하지만,
		// 원래 정책대로 일반전화 오류는 그대로 표시한다 (정책 재검토 대상).
		hasValidPhone := false

		if hasPhone {
			if IsAcceptedPhone(phone) {
				hasValidPhone = true
			} else {
				defects = append(defects, model.ValidationDefect{
					OrderId:        order.ID,
					RecipientName:  recipientName,
					RecipientPhone: utils.StringPtr(order.RecipientPhone),
					ErrorType:      constants.DEFECT_INVALID_FORMAT,
					ErrorMessage:   "전화번호 형식이 올바르지 않습니다",
					Field:          "recipientPhone",
					Severity:       constants.SEVERITY_ERROR,
					Details:        fmt.Sprintf(`입력값: "%s" / 올바른 형식: 02-1234-5678, 010-1234-5678, 0501-1234-5678`, order.RecipientPhone),
				})
			}
		}

		if hasMobile && !hasValidPhone {
			if !IsAcceptedPhone(mobile) {
				defects = append(defects, model.ValidationDefect{
					OrderId:        order.ID,
					RecipientName:  recipientName,
					RecipientPhone: utils.StringPtr(order.RecipientMobile),
					ErrorType:      constants.DEFECT_INVALID_FORMAT,
					ErrorMessage:   "휴대전화 형식이 올바르지 않습니다",
					Field:          "recipientMobile",
					Severity:       constants.SEVERITY_ERROR,
					Details:        fmt.Sprintf(`입력값: "%s" / 올바른 형식: 010-1234-5678, 0501-1234-5678`, order.RecipientMobile),
				})
			}
		}
	}

	// 3. 배송 주소 유무 (빈 문자열 포함)
	if utils.IsBlank(order.RecipientAddr) {
		defects = append(defects, model.ValidationDefect{
			OrderId:        order.ID,
			RecipientName:  recipientName,
			RecipientPhone: contact,
			ErrorType:      constants.DEFECT_MISSING_ADDR,
			ErrorMessage:   "배송주소가 없습니다",
			Field:          "recipientAddr",
			Severity:       constants.SEVERITY_ERROR,
			Details:        "배송을 위해 주소가 필요합니다",
		})
	}

	return defects
}
