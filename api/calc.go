package api

import (
	"assetbook/calc"

	"github.com/gin-gonic/gin"
)

// CalcHandler 计算器
type CalcHandler struct{}

// NewCalcHandler 创建计算器处理器
func NewCalcHandler() *CalcHandler {
	return &CalcHandler{}
}

// CalcRequest 按键序列或按键文本，二选一
type CalcRequest struct {
	Keys       []string `json:"keys" example:"1,2,+,3,="`
	Expression string   `json:"expression" example:"12+3*4="`
}

// Evaluate 立即执行计算（无优先级）
// @Summary 계산기
// @Description 입력 순서대로 계산합니다 (우선순위 없음). 키: 0-9 . + - * / % = C CE
// @Tags 계산기
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CalcRequest true "키 입력"
// @Success 200 {object} Response{data=calc.Result} "계산 결과"
// @Failure 400 {object} Response "잘못된 수식 또는 0으로 나누기"
// @Router /api/v1/calc [post]
func (h *CalcHandler) Evaluate(c *gin.Context) {
	var req CalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식이 올바르지 않습니다")
		return
	}

	var (
		res calc.Result
		err error
	)
	if len(req.Keys) > 0 {
		res, err = calc.Evaluate(req.Keys)
	} else {
		res, err = calc.EvaluateExpression(req.Expression)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, res)
}
