package calc

import (
	"fmt"
	"strings"
	"unicode"
)

// Result 计算结果
type Result struct {
	// Display 屏幕显示，带千分位
	Display string `json:"display"`
	// Value 不带千分位的结果，可直接填入金额
	Value string `json:"value"`
}

// Evaluate 依次按下 keys 并返回结果。未以 = 结尾时按当前显示值返回。
func Evaluate(keys []string) (Result, error) {
	c := New()
	for _, k := range keys {
		if err := c.Press(k); err != nil {
			return Result{}, err
		}
	}
	if c.Failed() {
		return Result{Display: ErrorDisplay}, ErrDivisionByZero
	}
	return Result{
		Display: c.Display(),
		Value:   FormatResult(c.Value()),
	}, nil
}

// Tokenize 把 "1,200*3=" 这样的文本拆成按键；空白和千分位逗号被忽略
func Tokenize(expr string) ([]string, error) {
	var keys []string
	runes := []rune(strings.ToUpper(expr))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r), r == ',':
		case r >= '0' && r <= '9', strings.ContainsRune("+-*/%=.", r):
			keys = append(keys, string(r))
		case r == '×':
			keys = append(keys, KeyMul)
		case r == '÷':
			keys = append(keys, KeyDiv)
		case r == 'C':
			if i+1 < len(runes) && runes[i+1] == 'E' {
				keys = append(keys, KeyClearEntry)
				i++
				continue
			}
			keys = append(keys, KeyClear)
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidExpression, string(r))
		}
	}
	return keys, nil
}

// EvaluateExpression 计算一段按键文本
func EvaluateExpression(expr string) (Result, error) {
	keys, err := Tokenize(expr)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(keys)
}
