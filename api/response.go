package api

import (
	"errors"
	"net/http"

	"assetbook/calc"
	"assetbook/service"
	"assetbook/store"

	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409 错误响应
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// statusOf 把领域错误映射为 HTTP 状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, store.ErrDuplicateTab):
		return http.StatusConflict
	case errors.Is(err, store.ErrUnknownTab), errors.Is(err, store.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidSettings),
		errors.Is(err, service.ErrEmptyPassword),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrPasswordUnchanged),
		errors.Is(err, service.ErrPasswordNotSet),
		errors.Is(err, calc.ErrInvalidExpression),
		errors.Is(err, calc.ErrDivisionByZero):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPasswordAlreadySet):
		return http.StatusConflict
	case errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// HandleError 按错误类型返回对应状态码；500 时在 release 模式下隐藏内部信息
func HandleError(c *gin.Context, err error) {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = SafeErrorMessage(err, "데이터 저장에 실패했습니다")
	}
	Error(c, code, message)
}
