package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount 资产金额（单位: 원，非负整数）。
// 历史文件中无法解析的值原样保留在 raw 中，写回时不丢失。
type Amount struct {
	value int64
	raw   json.RawMessage
}

// NewAmount 创建金额
func NewAmount(v int64) Amount {
	return Amount{value: v}
}

// Int64 返回金额；历史遗留的非法值返回 false
func (a Amount) Int64() (int64, bool) {
	if a.raw != nil {
		return 0, false
	}
	return a.value, true
}

// String 导出用文本：合法值为不带千分位的整数
func (a Amount) String() string {
	if a.raw != nil {
		var s string
		if err := json.Unmarshal(a.raw, &s); err == nil {
			return s
		}
		return string(a.raw)
	}
	return strconv.FormatInt(a.value, 10)
}

// MarshalJSON 实现 json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.raw != nil {
		return a.raw, nil
	}
	return []byte(strconv.FormatInt(a.value, 10)), nil
}

// UnmarshalJSON 接受数字或数字字符串（可带千分位）
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	var text string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	} else {
		text = string(data)
	}
	if v, err := ParseAmount(text); err == nil {
		*a = Amount{value: v}
		return nil
	}
	*a = Amount{raw: append(json.RawMessage(nil), data...)}
	return nil
}

func (a Amount) clone() Amount {
	if a.raw != nil {
		a.raw = append(json.RawMessage(nil), a.raw...)
	}
	return a
}

// ParseAmount 解析金额文本，去掉千分位与空白；必须是非负整数
func ParseAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(strings.TrimSuffix(clean, "원"))
	if clean == "" {
		return 0, fmt.Errorf("%w: 금액을 입력해주세요", ErrInvalidField)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%w: 금액은 숫자만 입력 가능합니다: %q", ErrInvalidField, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: 금액은 0 이상이어야 합니다: %q", ErrInvalidField, s)
	}
	if !d.LessThanOrEqual(decimal.NewFromInt(1 << 62)) {
		return 0, fmt.Errorf("%w: 금액이 너무 큽니다: %q", ErrInvalidField, s)
	}
	return d.IntPart(), nil
}

// FormatCurrency 千分位加 "원"，如 1,234,567 원
func FormatCurrency(v int64) string {
	return GroupThousands(strconv.FormatInt(v, 10)) + " 원"
}

// GroupThousands 为整数文本加千分位，保留符号与小数部分
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i:]
	}
	if len(s) <= 3 {
		return sign + s + frac
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String() + frac
}
