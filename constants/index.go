package constants

// 계정 역할
const (
	ROLE_SUPER_ADMIN = "SUPER_ADMIN"
	ROLE_ADMIN       = "ADMIN"
	ROLE_PARTNER     = "PARTNER"
)

// 주문 상태
const (
	ORDER_PENDING   = "PENDING"
	ORDER_SHIPPED   = "SHIPPED"
	ORDER_DELIVERED = "DELIVERED"
	ORDER_CANCELLED = "CANCELLED"
)

// AS 처리 상태 (5단계)
const (
	AS_RECEIVED    = "RECEIVED"
	AS_IN_PROGRESS = "IN_PROGRESS"
	AS_REPAIR      = "AS"
	AS_EXCHANGE    = "EXCHANGE"
	AS_COMPLETED   = "COMPLETED"
)

var AsStatuses = []string{AS_RECEIVED, AS_IN_PROGRESS, AS_REPAIR, AS_EXCHANGE, AS_COMPLETED}

// 상태 라벨 (엑셀 내보내기용)
var AsStatusLabels = map[string]string{
	AS_RECEIVED:    "접수",
	AS_IN_PROGRESS: "처리중",
	AS_REPAIR:      "AS",
	AS_EXCHANGE:    "교환",
	AS_COMPLETED:   "완료",
}

// 고객주문처명 (협력사 태그)
const DEFAULT_ORDER_SOURCE = "자사몰"

var OrderSources = []string{"본사", "로켓그로스", "그로트", "스몰닷", "해피포즈", "기타"}

// 발주서/배송정보 엑셀 헤더
const (
	COL_ORDER_DATE   = "날짜"
	COL_NAME         = "고객명"
	COL_PHONE        = "전화번호"
	COL_MOBILE       = "이동통신"
	COL_ZIPCODE      = "우편번호"
	COL_ADDR         = "주소"
	COL_ORDER_NUMBER = "주문번호"
	COL_PRODUCT      = "상품명 및 수량"
	COL_DELIVERY_MSG = "배송메시지"
	COL_ORDER_SOURCE = "고객주문처명"
	COL_BASE_PRICE   = "단가"
	COL_SHIPPING_FEE = "배송비"
	COL_COURIER      = "택배사"
	COL_TRACKING     = "운송장번호"
	COL_GIFT_SENT    = "사은품발송"
)

// 택배사 목록 (스마트택배 코드)
var Couriers = []struct {
	Code string
	Name string
}{
	{"04", "CJ대한통운"},
	{"05", "한진택배"},
	{"08", "롯데택배"},
	{"01", "우체국택배"},
	{"06", "로젠택배"},
	{"11", "일양로지스"},
	{"23", "경동택배"},
}

// 공통 에러 메시지
const (
	ERROR_INTERNAL_ERROR     = "서버 내부 오류가 발생했습니다"
	MISSING_LOGIN_INPUT      = "아이디와 비밀번호를 입력해주세요"
	INVALID_USERNAME         = "존재하지 않는 계정입니다"
	INVALID_PASSWORD         = "비밀번호가 일치하지 않습니다"
	ACCOUNT_NOT_ACTIVE       = "비활성화된 계정입니다"
	DATA_INPUT_IS_NOT_NUMBER = "입력값이 숫자가 아닙니다"
	ORDER_NOT_FOUND          = "주문을 찾을 수 없습니다"
	AS_NOT_FOUND             = "AS 건을 찾을 수 없습니다"
)

// 검증 오류 유형
const (
	DEFECT_MISSING_PHONE  = "missing_phone"
	DEFECT_INVALID_FORMAT = "invalid_phone_format"
	DEFECT_MISSING_ADDR   = "missing_address"
)

// 검증 심각도
const (
	SEVERITY_ERROR   = "error"
	SEVERITY_WARNING = "warning"
)

// 가져오기 실패 표시 상한 (이후 건수만 표기)
const IMPORT_ERROR_DISPLAY_LIMIT = 10
