package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// 文档及 CSV 中使用的字段名
const (
	FieldCategory     = "자산 종류"
	FieldSubcategory  = "세부 분류"
	FieldName         = "자산 명"
	FieldAmount       = "금액"
	FieldMaturityDate = "만기일"
	FieldReminder     = "알림"
	FieldNote         = "비고"
	FieldID           = "no"
)

// ErrInvalidField 字段值不合法
var ErrInvalidField = errors.New("invalid field")

// Asset 资产记录
type Asset struct {
	ID           int64    `json:"id"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Name         string   `json:"name"`
	Amount       Amount   `json:"amount" swaggertype:"integer"`
	MaturityDate *Date    `json:"maturity_date,omitempty" swaggertype:"string" example:"2025-12-31"`
	Reminder     Reminder `json:"reminder"`
	Note         string   `json:"note"`

	// 历史文件中无法解析的到期日原文，写回时保留
	rawMaturity string
}

// AssetInput 新增/更新资产时的输入，字段均为原始文本
type AssetInput struct {
	Category     string `json:"category" example:"예금"`
	Subcategory  string `json:"subcategory" example:"정기예금"`
	Name         string `json:"name" example:"OO은행 정기예금"`
	Amount       string `json:"amount" example:"10,000,000"`
	MaturityDate string `json:"maturity_date" example:"2025-12-31"`
	Reminder     string `json:"reminder" example:"9일 전"`
	Note         string `json:"note"`
}

// Normalize 校验输入并转换为资产记录（ID 为 0）
func (in AssetInput) Normalize() (Asset, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return Asset{}, fmt.Errorf("%w: 자산 종류를 입력해주세요", ErrInvalidField)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Asset{}, fmt.Errorf("%w: 자산 명을 입력해주세요", ErrInvalidField)
	}
	a, err := in.normalizeLoose()
	if err != nil {
		return Asset{}, err
	}
	a.Category = category
	a.Name = name
	return a, nil
}

// NormalizeImported 用于 CSV 导入：允许空的类别和名称
func (in AssetInput) NormalizeImported() (Asset, error) {
	return in.normalizeLoose()
}

func (in AssetInput) normalizeLoose() (Asset, error) {
	amountText := in.Amount
	if strings.TrimSpace(amountText) == "" {
		amountText = "0"
	}
	amount, err := ParseAmount(amountText)
	if err != nil {
		return Asset{}, err
	}
	var maturity *Date
	if strings.TrimSpace(in.MaturityDate) != "" {
		d, err := ParseDate(in.MaturityDate)
		if err != nil {
			return Asset{}, err
		}
		maturity = &d
	}
	reminder, err := ParseReminder(in.Reminder)
	if err != nil {
		return Asset{}, err
	}
	return Asset{
		Category:     strings.TrimSpace(in.Category),
		Subcategory:  strings.TrimSpace(in.Subcategory),
		Name:         strings.TrimSpace(in.Name),
		Amount:       NewAmount(amount),
		MaturityDate: maturity,
		Reminder:     reminder,
		Note:         in.Note,
	}, nil
}

// MaturityText 到期日文本；无法解析的历史值返回原文
func (a Asset) MaturityText() string {
	if a.MaturityDate != nil {
		return a.MaturityDate.String()
	}
	return a.rawMaturity
}

// Clone 深拷贝
func (a Asset) Clone() Asset {
	if a.MaturityDate != nil {
		d := *a.MaturityDate
		a.MaturityDate = &d
	}
	a.Amount = a.Amount.clone()
	return a
}

// assetDocument 资产在数据文件中的形式，字段顺序即写出顺序
type assetDocument struct {
	Category     string          `json:"자산 종류"`
	Subcategory  string          `json:"세부 분류"`
	Name         string          `json:"자산 명"`
	Amount       json.RawMessage `json:"금액"`
	MaturityDate string          `json:"만기일,omitempty"`
	Reminder     string          `json:"알림"`
	Note         string          `json:"비고"`
	ID           json.RawMessage `json:"no"`
}

// looseText 历史文件中的文本字段：任意 JSON 值都转成文本，null 为空
type looseText string

func (t *looseText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = looseText(s)
	default:
		var compact bytes.Buffer
		if err := json.Compact(&compact, data); err != nil {
			return err
		}
		*t = looseText(compact.String())
	}
	return nil
}

// assetDocumentIn 读取时的形式，文本字段类型不对也能接受
type assetDocumentIn struct {
	Category     looseText       `json:"자산 종류"`
	Subcategory  looseText       `json:"세부 분류"`
	Name         looseText       `json:"자산 명"`
	Amount       json.RawMessage `json:"금액"`
	MaturityDate looseText       `json:"만기일"`
	Reminder     looseText       `json:"알림"`
	Note         looseText       `json:"비고"`
	ID           json.RawMessage `json:"no"`
}

// EncodeDocument 编码为数据文件中的 JSON 对象
func (a Asset) EncodeDocument() ([]byte, error) {
	amount, err := a.Amount.MarshalJSON()
	if err != nil {
		return nil, err
	}
	doc := assetDocument{
		Category:    a.Category,
		Subcategory: a.Subcategory,
		Name:        a.Name,
		Amount:      amount,
		Reminder:    string(a.Reminder),
		Note:        a.Note,
		ID:          json.RawMessage(strconv.FormatInt(a.ID, 10)),
	}
	if doc.Reminder == "" {
		doc.Reminder = string(ReminderNone)
	}
	doc.MaturityDate = a.MaturityText()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DecodeDocument 从数据文件中的 JSON 对象解码。
// 对历史数据宽容：文本字段可以是数字等任意值，金额可为带千分位的字符串，
// 空的到期日视为未设置，无法解析的到期日保留原文。只有记录本身不是对象时才返回错误。
// 返回的 warnings 描述被容忍的异常值。
func DecodeDocument(raw []byte) (Asset, []string, error) {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		return Asset{}, nil, fmt.Errorf("%w: 자산 기록이 객체가 아닙니다", ErrInvalidField)
	}
	var doc assetDocumentIn
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Asset{}, nil, err
	}
	var warnings []string
	a := Asset{
		Category:    string(doc.Category),
		Subcategory: string(doc.Subcategory),
		Name:        string(doc.Name),
		Reminder:    Reminder(doc.Reminder),
		Note:        string(doc.Note),
	}
	if a.Reminder == "" {
		a.Reminder = ReminderNone
	}
	// 非整数的 no 记为 0，由存储层重新分配
	if len(doc.ID) > 0 {
		if id, err := strconv.ParseInt(string(doc.ID), 10, 64); err == nil {
			a.ID = id
		}
	}
	if len(doc.Amount) > 0 {
		if err := a.Amount.UnmarshalJSON(doc.Amount); err != nil {
			return Asset{}, nil, err
		}
		if _, ok := a.Amount.Int64(); !ok {
			warnings = append(warnings, fmt.Sprintf("금액 값이 올바르지 않습니다: %s", a.Amount.String()))
		}
	}
	if maturity := string(doc.MaturityDate); strings.TrimSpace(maturity) != "" {
		d, err := ParseDate(maturity)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("만기일 값을 해석할 수 없어 원문을 유지합니다: %q", maturity))
			a.rawMaturity = maturity
		} else {
			a.MaturityDate = &d
		}
	}
	return a, warnings, nil
}
