package utils

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CustomDate 날짜만 저장 (시간 없음)
type CustomDate struct {
	time.Time
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return fmt.Errorf("invalid date format: %s", str)
	}
	*d = CustomDate{t}
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format("2006-01-02"), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = CustomDate{v}
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("cannot parse date string: %v", err)
		}
		*d = CustomDate{t}
		return nil
	case []byte:
		t, err := time.Parse("2006-01-02", string(v))
		if err != nil {
			return fmt.Errorf("cannot parse date bytes: %v", err)
		}
		*d = CustomDate{t}
		return nil
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

var (
	isoDateRe      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	fullDotDateRe  = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})$`)
	shortDotDateRe = regexp.MustCompile(`^(\d{2})\.(\d{1,2})\.(\d{1,2})$`)
	slashDateRe    = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)
	excelSerialRe  = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// excelEpoch 엑셀 일련번호 기준일 (1900 윤년 버그 포함 보정)
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseFlexibleDate 엑셀에서 들어오는 다양한 날짜 표기를 YYYY-MM-DD로 정규화.
// 인식 못 하는 값은 그대로 돌려준다 (가져오기 시점에 실패 처리하지 않음).
func ParseFlexibleDate(raw string) string {
	str := strings.TrimSpace(raw)
	if str == "" {
		return ""
	}

	// "2026-1-5" 형식
	if m := isoDateRe.FindStringSubmatch(str); m != nil {
		return padDate(m[1], m[2], m[3])
	}

	// "2026.1.5" 형식
	if m := fullDotDateRe.FindStringSubmatch(str); m != nil {
		return padDate(m[1], m[2], m[3])
	}

	// "26.1.5" 형식 (2자리 년도 → 20XX)
	if m := shortDotDateRe.FindStringSubmatch(str); m != nil {
		return padDate("20"+m[1], m[2], m[3])
	}

	// "2026/1/5" 형식
	if m := slashDateRe.FindStringSubmatch(str); m != nil {
		return padDate(m[1], m[2], m[3])
	}

	// 엑셀 일련번호
	if excelSerialRe.MatchString(str) {
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			if days := int(f); days >= 10000 && days <= 2958465 {
				t := excelEpoch.AddDate(0, 0, days)
				return t.Format("2006-01-02")
			}
		}
	}

	return str
}

func padDate(year, month, day string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, m, d)
}
