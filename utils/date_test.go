package utils

import "testing"

func TestParseFlexibleDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"2026-03-05", "2026-03-05"},
		{"2026-3-5", "2026-03-05"},
		{"2026.3.5", "2026-03-05"},
		{"2026.03.05", "2026-03-05"},
		{"26.3.5", "2026-03-05"},
		{"26.12.31", "2026-12-31"},
		{"2024/12/1", "2024-12-01"},
		{"2024/1/15", "2024-01-15"},
		{" 2026-01-05 ", "2026-01-05"},
		{"", ""},
		{"   ", ""},
		{"garbage", "garbage"},
		{"2026년 1월 5일", "2026년 1월 5일"},
	}

	for _, tc := range cases {
		if got := ParseFlexibleDate(tc.input); got != tc.want {
			t.Fatalf("ParseFlexibleDate(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	t.Run("excel serial number", func(t *testing.T) {
		// 45292 = 2024-01-01 (기준일 1899-12-30)
		if got := ParseFlexibleDate("45292"); got != "2024-01-01" {
			t.Fatalf("expected 2024-01-01, got %q", got)
		}
	})

	t.Run("small numbers are not treated as serials", func(t *testing.T) {
		if got := ParseFlexibleDate("123"); got != "123" {
			t.Fatalf("expected pass-through, got %q", got)
		}
	})

	t.Run("eight digit numbers are not treated as serials", func(t *testing.T) {
		// 20260105처럼 날짜로 보이는 8자리 숫자도 일련번호 범위 밖이라 그대로 둔다
		if got := ParseFlexibleDate("20260105"); got != "20260105" {
			t.Fatalf("expected pass-through, got %q", got)
		}
	})
}

func TestCustomDateJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trips a date", func(t *testing.T) {
		var d CustomDate
		if err := d.UnmarshalJSON([]byte(`"2026-01-05"`)); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		out, err := d.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(out) != `"2026-01-05"` {
			t.Fatalf("expected \"2026-01-05\", got %s", out)
		}
	})

	t.Run("null stays null", func(t *testing.T) {
		var d CustomDate
		if err := d.UnmarshalJSON([]byte(`null`)); err != nil {
			t.Fatalf("unmarshal null failed: %v", err)
		}
		out, _ := d.MarshalJSON()
		if string(out) != `null` {
			t.Fatalf("expected null, got %s", out)
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		var d CustomDate
		if err := d.UnmarshalJSON([]byte(`"05/01/2026"`)); err == nil {
			t.Fatalf("expected error for non-ISO input")
		}
	})
}
