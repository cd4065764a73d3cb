package calc

import (
	"errors"
	"fmt"
	"strings"

	"assetbook/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidExpression = errors.New("유효하지 않은 수식입니다")
	ErrDivisionByZero    = errors.New("0으로 나눌 수 없습니다")
)

// 按键
const (
	KeyAdd        = "+"
	KeySub        = "-"
	KeyMul        = "*"
	KeyDiv        = "/"
	KeyPercent    = "%"
	KeyEquals     = "="
	KeyPoint      = "."
	KeyClear      = "C"
	KeyClearEntry = "CE"
)

// ErrorDisplay 出错时的显示内容
const ErrorDisplay = "Error"

// 输入数字最多位数
const maxEntryDigits = 16

var hundred = decimal.NewFromInt(100)

// Calculator 立即执行的四则计算器：没有优先级，按下运算符时先结算挂起的运算。
// 零值即可使用。
type Calculator struct {
	acc       decimal.Decimal
	entry     string
	op        string
	evaluated bool
	failed    bool
}

// New 创建计算器
func New() *Calculator {
	return &Calculator{}
}

// Reset 清空全部状态
func (c *Calculator) Reset() {
	*c = Calculator{}
}

// Failed 是否处于错误状态，只有 C 可以恢复
func (c *Calculator) Failed() bool {
	return c.failed
}

// Press 处理一次按键
func (c *Calculator) Press(key string) error {
	key = strings.ToUpper(strings.TrimSpace(key))
	switch {
	case key == KeyClear:
		c.Reset()
		return nil
	case c.failed:
		return nil
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		c.digit(key)
	case key == KeyPoint:
		c.point()
	case key == KeyAdd, key == KeySub, key == KeyMul, key == KeyDiv:
		c.operator(key)
	case key == KeyPercent:
		c.percent()
	case key == KeyEquals:
		c.equals()
	case key == KeyClearEntry:
		c.backspace()
	default:
		return fmt.Errorf("%w: 알 수 없는 키 %q", ErrInvalidExpression, key)
	}
	return nil
}

func (c *Calculator) startEntryIfEvaluated() {
	if c.evaluated {
		c.acc = decimal.Zero
		c.op = ""
		c.evaluated = false
	}
}

func (c *Calculator) digit(d string) {
	c.startEntryIfEvaluated()
	if len(strings.ReplaceAll(c.entry, ".", "")) >= maxEntryDigits {
		return
	}
	if c.entry == "0" {
		c.entry = d
		return
	}
	c.entry += d
}

func (c *Calculator) point() {
	c.startEntryIfEvaluated()
	if strings.Contains(c.entry, ".") {
		return
	}
	if c.entry == "" {
		c.entry = "0"
	}
	c.entry += "."
}

func (c *Calculator) operator(op string) {
	c.evaluated = false
	if c.entry == "" {
		// 连续按运算符时替换挂起的运算
		c.op = op
		return
	}
	if !c.resolve() {
		return
	}
	c.op = op
}

// resolve 把当前输入并入累计值
func (c *Calculator) resolve() bool {
	operand := c.entryValue()
	c.entry = ""
	if c.op == "" {
		c.acc = operand
		return true
	}
	v, err := apply(c.acc, c.op, operand)
	if err != nil {
		c.failed = true
		return false
	}
	c.acc = v
	c.op = ""
	return true
}

func (c *Calculator) percent() {
	if c.entry == "" {
		c.acc = c.acc.Div(hundred)
		return
	}
	c.entry = c.entryValue().Div(hundred).String()
}

func (c *Calculator) equals() {
	if c.entry != "" && !c.resolve() {
		return
	}
	c.op = ""
	c.evaluated = true
}

func (c *Calculator) backspace() {
	if c.entry == "" {
		return
	}
	c.entry = c.entry[:len(c.entry)-1]
	if c.entry == "" {
		c.entry = "0"
	}
}

func (c *Calculator) entryValue() decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSuffix(c.entry, "."))
	if err != nil {
		return decimal.Zero
	}
	return v
}

func apply(a decimal.Decimal, op string, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case KeyAdd:
		return a.Add(b), nil
	case KeySub:
		return a.Sub(b), nil
	case KeyMul:
		return a.Mul(b), nil
	case KeyDiv:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return a.Div(b), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidExpression, op)
}

// Value 当前显示的数值：有输入时为输入值，否则为累计值
func (c *Calculator) Value() decimal.Decimal {
	if c.entry != "" {
		return c.entryValue()
	}
	return c.acc
}

// Pending 挂起的运算符
func (c *Calculator) Pending() string {
	return c.op
}

// Display 显示内容：输入中按原样加千分位，结果按 FormatResult 格式化
func (c *Calculator) Display() string {
	if c.failed {
		return ErrorDisplay
	}
	if c.entry != "" {
		return models.GroupThousands(c.entry)
	}
	return models.GroupThousands(FormatResult(c.acc))
}

// FormatResult 整数原样输出，否则保留两位小数，结果为 .00 时去掉
func FormatResult(v decimal.Decimal) string {
	if v.IsInteger() {
		return v.String()
	}
	return strings.TrimSuffix(v.StringFixed(2), ".00")
}
