package model

// 검증/가져오기 결과 타입. DB에 저장하지 않고 매 실행마다 새로 계산한다.

type ValidationDefect struct {
	OrderId        uint    `json:"orderId"`
	RecipientName  *string `json:"recipientName"`
	RecipientPhone *string `json:"recipientPhone"`
	ErrorType      string  `json:"errorType"` // missing_phone, invalid_phone_format, missing_address
	ErrorMessage   string  `json:"errorMessage"`
	Field          string  `json:"field"`
	Severity       string  `json:"severity"` // error, warning
	Details        string  `json:"details,omitempty"`
}

// DeliveryImportRow 배송정보 엑셀 한 행. 한국어 헤더 접근은 어댑터에서만 처리한다.
type DeliveryImportRow struct {
	OrderNumber     string `json:"orderNumber"`
	RecipientName   string `json:"recipientName"`
	RecipientPhone  string `json:"recipientPhone"`
	RecipientMobile string `json:"recipientMobile"`
	Courier         string `json:"courier"`
	TrackingNumber  string `json:"trackingNumber"`
}

type MatchResult struct {
	Matched bool
	Order   *Order
}

type ImportSuccess struct {
	Row        int    `json:"row"`
	Identifier string `json:"identifier"`
}

type ImportFailure struct {
	Row        int    `json:"row"`
	Identifier string `json:"identifier"`
	Reason     string `json:"error"`
}

// PartnerUpdate 협력사별 성공 건수 집계 (통합 알림용)
type PartnerUpdate struct {
	OrderSource string   `json:"orderSource"`
	Count       int      `json:"count"`
	Orders      []string `json:"orders"`
}

// BatchReport 가져오기 1회 실행의 집계 결과
type BatchReport struct {
	Successes      []ImportSuccess           `json:"successes"`
	Failures       []ImportFailure           `json:"failures"`
	PartnerUpdates map[string]*PartnerUpdate `json:"partnerUpdates"`
}
