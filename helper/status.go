package helper

import (
	"fulfillment_admin/constants"
	"strings"
)

// MapStatus 엑셀의 자유 입력 상태 문자열을 AS 상태로 변환.
// 한 문자열에 여러 키워드가 섞여 있을 수 있으므로 확인 순서가 곧 우선순위다.
func MapStatus(value string) string {
	str := strings.ToUpper(strings.TrimSpace(value))

	// AS 상태 체크
	if str == "AS" || strings.Contains(str, "수리") || strings.Contains(str, "A/S") || strings.Contains(str, "A.S") {
		return constants.AS_REPAIR
	}

	// 교환 상태 체크
	if strings.Contains(str, "교환") || strings.Contains(str, "교체") || str == "EXCHANGE" {
		return constants.AS_EXCHANGE
	}

	// 처리 상태 체크
	if strings.Contains(str, "처리") || str == "IN_PROGRESS" || strings.Contains(str, "진행") {
		return constants.AS_IN_PROGRESS
	}

	// 접수 상태
	if strings.Contains(str, "접수") || str == "RECEIVED" || str == "신규" {
		return constants.AS_RECEIVED
	}

	// 기본값은 접수
	return constants.AS_RECEIVED
}
