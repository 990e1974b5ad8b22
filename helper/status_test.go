package helper

import (
	"fulfillment_admin/constants"
	"testing"
)

func TestMapStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"AS", constants.AS_REPAIR},
		{"as", constants.AS_REPAIR},
		{"수리 요청", constants.AS_REPAIR},
		{"A/S 접수", constants.AS_REPAIR},
		{"A.S", constants.AS_REPAIR},
		{"교환", constants.AS_EXCHANGE},
		{"고객 교환 요청", constants.AS_EXCHANGE},
		{"부품 교체", constants.AS_EXCHANGE},
		{"EXCHANGE", constants.AS_EXCHANGE},
		{"처리중", constants.AS_IN_PROGRESS},
		{"진행", constants.AS_IN_PROGRESS},
		{"IN_PROGRESS", constants.AS_IN_PROGRESS},
		{"접수", constants.AS_RECEIVED},
		{"RECEIVED", constants.AS_RECEIVED},
		{"신규", constants.AS_RECEIVED},
		{"", constants.AS_RECEIVED},
		{"   ", constants.AS_RECEIVED},
		{"알 수 없는 값", constants.AS_RECEIVED},
		{"  교환  ", constants.AS_EXCHANGE},
	}

	for _, tc := range cases {
		if got := MapStatus(tc.input); got != tc.want {
			t.Fatalf("MapStatus(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	t.Run("repair keyword outranks exchange keyword", func(t *testing.T) {
		// 한 문자열에 수리와 교환이 같이 있으면 AS가 우선
		if got := MapStatus("수리 후 교환"); got != constants.AS_REPAIR {
			t.Fatalf("expected AS, got %q", got)
		}
	})

	t.Run("exchange keyword outranks progress keyword", func(t *testing.T) {
		if got := MapStatus("교환 처리"); got != constants.AS_EXCHANGE {
			t.Fatalf("expected EXCHANGE, got %q", got)
		}
	})

	t.Run("bare AS only matches exact string", func(t *testing.T) {
		// "ASSEMBLY" 같은 단어가 AS로 오인되면 안 된다
		if got := MapStatus("ASSEMBLY 접수"); got != constants.AS_RECEIVED {
			t.Fatalf("expected RECEIVED, got %q", got)
		}
	})
}
