package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"50000", 50000, true},
		{"1,234,567", 1234567, true},
		{" 2,500 원", 2500, true},
		{"0", 0, true},
		{"", 0, false},
		{"-10", 0, false},
		{"12.5", 0, false},
		{"abc", 0, false},
		{"4611686018427387904", 1 << 62, true},
		{"4611686018427387905", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidField, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestAmount_LegacyValuesPreserved(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"1,000"`), &a))
	v, ok := a.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(1000), v)

	var bad Amount
	require.NoError(t, json.Unmarshal([]byte(`"약 백만원"`), &bad))
	_, ok = bad.Int64()
	assert.False(t, ok)
	out, err := json.Marshal(bad)
	require.NoError(t, err)
	assert.Equal(t, `"약 백만원"`, string(out))
	assert.Equal(t, "약 백만원", bad.String())
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "0 원", FormatCurrency(0))
	assert.Equal(t, "999 원", FormatCurrency(999))
	assert.Equal(t, "1,000 원", FormatCurrency(1000))
	assert.Equal(t, "1,234,567 원", FormatCurrency(1234567))
	assert.Equal(t, "-12,345.67", GroupThousands("-12345.67"))
}

func TestParseDate(t *testing.T) {
	want := NewDate(2025, time.March, 9)
	for _, in := range []string{"2025-03-09", "2025/03/09", "2025.03.09", "03/09/2025", "09.03.2025"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDate("next tuesday")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestDDay(t *testing.T) {
	today := NewDate(2025, time.January, 1)
	assert.Equal(t, 10, DaysUntil(NewDate(2025, time.January, 11), today))
	assert.Equal(t, -1, DaysUntil(NewDate(2024, time.December, 31), today))
	// 超过 time.Duration 的范围
	assert.Equal(t, 173490, DaysUntil(NewDate(2500, time.January, 1), today))
	assert.Equal(t, -118704, DaysUntil(NewDate(1700, time.January, 1), today))
	assert.Equal(t, "D-10", DDayLabel(10))
	assert.Equal(t, "D-Day", DDayLabel(0))
	assert.Equal(t, "D+3", DDayLabel(-3))
}

func TestParseReminder(t *testing.T) {
	for in, want := range map[string]Reminder{
		"":      ReminderNone,
		"없음":    ReminderNone,
		"none":  ReminderNone,
		"3일 전":  "3일 전",
		"30일 전": "30일 전",
		"9":     "9일 전",
	} {
		got, err := ParseReminder(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"4일 전", "33일 전", "0", "매일"} {
		_, err := ParseReminder(in)
		assert.ErrorIs(t, err, ErrInvalidField, in)
	}

	days, ok := Reminder("12일 전").Days()
	assert.True(t, ok)
	assert.Equal(t, 12, days)
	_, ok = ReminderNone.Days()
	assert.False(t, ok)

	opts := ReminderOptions()
	assert.Len(t, opts, 11)
	assert.Equal(t, ReminderNone, opts[0])
	assert.Equal(t, Reminder("30일 전"), opts[10])
}

func TestAssetInput_Normalize(t *testing.T) {
	a, err := AssetInput{
		Category:     " 현금 ",
		Name:         "Wallet",
		Amount:       "50,000",
		MaturityDate: "   ",
	}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "현금", a.Category)
	assert.Equal(t, int64(50000), mustInt(t, a.Amount))
	assert.Nil(t, a.MaturityDate)
	assert.Equal(t, ReminderNone, a.Reminder)

	_, err = AssetInput{Category: "현금", Name: "  ", Amount: "1"}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidField)
	_, err = AssetInput{Category: "", Name: "x", Amount: "1"}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidField)

	imported, err := AssetInput{}.NormalizeImported()
	require.NoError(t, err)
	assert.Equal(t, int64(0), mustInt(t, imported.Amount))
}

func TestAsset_DocumentEncoding(t *testing.T) {
	d := NewDate(2026, time.June, 30)
	a := Asset{
		ID:           7,
		Category:     "예금",
		Name:         "정기예금",
		Amount:       NewAmount(1000000),
		MaturityDate: &d,
		Reminder:     "9일 전",
	}
	raw, err := a.EncodeDocument()
	require.NoError(t, err)
	assert.Equal(t,
		`{"자산 종류":"예금","세부 분류":"","자산 명":"정기예금","금액":1000000,"만기일":"2026-06-30","알림":"9일 전","비고":"","no":7}`,
		string(raw))

	a.MaturityDate = nil
	raw, err = a.EncodeDocument()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), FieldMaturityDate)

	back, warnings, err := DecodeDocument([]byte(`{"자산 종류":"현금","자산 명":"지갑","금액":"12,000","만기일":"","no":3}`))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Nil(t, back.MaturityDate)
	assert.Equal(t, ReminderNone, back.Reminder)
	assert.Equal(t, int64(12000), mustInt(t, back.Amount))
	assert.Equal(t, int64(3), back.ID)

	legacy, warnings, err := DecodeDocument([]byte(`{"금액":"n/a","만기일":"someday","no":4}`))
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Nil(t, legacy.MaturityDate)
	assert.Equal(t, "someday", legacy.MaturityText())
	raw, err = legacy.EncodeDocument()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"만기일":"someday"`)
}

func TestDecodeDocument_LooseTextFields(t *testing.T) {
	a, _, err := DecodeDocument([]byte(`{"자산 종류":"현금","세부 분류":null,"자산 명":2024,"금액":1,"알림":9,"비고":12345,"no":1}`))
	require.NoError(t, err)
	assert.Equal(t, "현금", a.Category)
	assert.Equal(t, "", a.Subcategory)
	assert.Equal(t, "2024", a.Name)
	assert.Equal(t, Reminder("9"), a.Reminder)
	assert.Equal(t, "12345", a.Note)

	a, _, err = DecodeDocument([]byte(`{"비고":true,"세부 분류":["a", 1]}`))
	require.NoError(t, err)
	assert.Equal(t, "true", a.Note)
	assert.Equal(t, `["a",1]`, a.Subcategory)

	for _, bad := range []string{`[1,2]`, `"text"`, `42`, `null`} {
		_, _, err = DecodeDocument([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestAsset_CloneIsIndependent(t *testing.T) {
	d := NewDate(2025, time.May, 1)
	a := Asset{MaturityDate: &d}
	c := a.Clone()
	*c.MaturityDate = NewDate(2030, time.May, 1)
	assert.Equal(t, "2025-05-01", a.MaturityDate.String())
}

func mustInt(t *testing.T, a Amount) int64 {
	t.Helper()
	v, ok := a.Int64()
	require.True(t, ok)
	return v
}
