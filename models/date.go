package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout 数据文件中的日期格式
const DateLayout = "2006-01-02"

// 可接受的输入格式
var dateInputLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"01/02/2006",
	"02.01.2006",
}

// Date 不含时间的日历日期
type Date struct {
	t time.Time
}

// NewDate 创建日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf 取 t 所在时区的日期部分
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// ParseDate 按多种常见格式解析日期
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: 날짜 형식이 올바르지 않습니다: %q", ErrInvalidField, s)
}

// Time 返回当天 UTC 零点
func (d Date) Time() time.Time {
	return d.t
}

// String YYYY-MM-DD
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// AddDays 加减天数
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// MarshalJSON 实现 json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON 实现 json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysUntil 从 today 到 d 的天数，已过期为负数
func DaysUntil(d, today Date) int {
	return int((d.t.Unix() - today.t.Unix()) / 86400)
}

// DDayLabel D-n / D-Day / D+n
func DDayLabel(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	case days == 0:
		return "D-Day"
	default:
		return fmt.Sprintf("D+%d", -days)
	}
}
