package api

import (
	"errors"
	"time"

	"assetbook/middleware"
	"assetbook/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler 主密码与会话
type AuthHandler struct {
	creds    *service.CredentialStore
	settings *service.SettingsStore
	log      logrus.FieldLogger
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(creds *service.CredentialStore, settings *service.SettingsStore, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{creds: creds, settings: settings, log: logger}
}

// PasswordRequest 设置/登录请求
type PasswordRequest struct {
	Password string `json:"password" binding:"required" example:"my-secret"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" example:"old-secret"`
	NewPassword     string `json:"new_password" example:"new-secret"`
	ConfirmPassword string `json:"confirm_password" example:"new-secret"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// StatusResponse 认证状态
type StatusResponse struct {
	PasswordSet     bool `json:"password_set"`
	AutoLockMinutes int  `json:"auto_lock_minutes"`
}

func (h *AuthHandler) issue(c *gin.Context, message string) {
	token, err := middleware.GenerateToken()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "세션을 만들 수 없습니다"))
		return
	}
	ttl := time.Duration(h.settings.AutoLockMinutes()) * time.Minute
	SuccessWithMessage(c, message, LoginResponse{Token: token, ExpiresIn: int(ttl.Seconds())})
}

// Status 是否已设置主密码
// @Summary 인증 상태
// @Description 마스터 비밀번호 설정 여부와 자동 잠금 시간을 반환합니다
// @Tags 인증
// @Produce json
// @Success 200 {object} Response{data=StatusResponse} "조회 성공"
// @Router /api/v1/auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	Success(c, StatusResponse{
		PasswordSet:     h.creds.IsSet(),
		AutoLockMinutes: h.settings.AutoLockMinutes(),
	})
}

// Setup 首次设置主密码并直接登录
// @Summary 마스터 비밀번호 설정
// @Description 최초 실행 시 마스터 비밀번호를 설정하고 세션 토큰을 발급합니다
// @Tags 인증
// @Accept json
// @Produce json
// @Param request body PasswordRequest true "비밀번호"
// @Success 200 {object} Response{data=LoginResponse} "설정 성공"
// @Failure 400 {object} Response "요청 오류"
// @Failure 409 {object} Response "이미 설정됨"
// @Router /api/v1/auth/setup [post]
func (h *AuthHandler) Setup(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "비밀번호를 입력해주세요")
		return
	}
	if err := h.creds.Setup(req.Password); err != nil {
		HandleError(c, err)
		return
	}
	h.issue(c, "마스터 비밀번호가 설정되었습니다")
}

// Login 校验主密码并签发会话
// @Summary 로그인
// @Description 마스터 비밀번호로 로그인하고 세션 토큰을 발급합니다. 토큰은 자동 잠금 시간 동안 유효하며 요청마다 X-Session-Token 헤더로 갱신됩니다
// @Tags 인증
// @Accept json
// @Produce json
// @Param request body PasswordRequest true "비밀번호"
// @Success 200 {object} Response{data=LoginResponse} "로그인 성공"
// @Failure 400 {object} Response "요청 오류"
// @Failure 401 {object} Response "비밀번호 불일치"
// @Failure 429 {object} Response "시도 횟수 초과"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "비밀번호를 입력해주세요")
		return
	}
	if !h.creds.IsSet() {
		HandleError(c, service.ErrPasswordNotSet)
		return
	}
	if !h.creds.Verify(req.Password) {
		h.log.WithField("ip", c.ClientIP()).Warn("로그인 실패")
		Unauthorized(c, service.ErrWrongPassword.Error())
		return
	}
	h.log.WithField("ip", c.ClientIP()).Info("로그인 성공")
	h.issue(c, "로그인 성공")
}

// Lock 立即锁定所有会话
// @Summary 잠금
// @Description 발급된 모든 세션을 즉시 무효화합니다
// @Tags 인증
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "잠금 완료"
// @Failure 401 {object} Response "인증 필요"
// @Router /api/v1/auth/lock [post]
func (h *AuthHandler) Lock(c *gin.Context) {
	middleware.LockSessions()
	c.Header(middleware.SessionHeader, "")
	h.log.Info("잠금")
	SuccessWithMessage(c, "잠금되었습니다", nil)
}

// ChangePassword 修改主密码
// @Summary 비밀번호 변경
// @Description 현재 비밀번호 확인 후 새 비밀번호로 변경합니다. 새 세션 토큰을 발급합니다
// @Tags 인증
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "비밀번호 변경"
// @Success 200 {object} Response{data=LoginResponse} "변경 성공"
// @Failure 400 {object} Response "요청 오류 또는 현재 비밀번호 불일치"
// @Failure 401 {object} Response "인증 필요"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식이 올바르지 않습니다")
		return
	}
	err := h.creds.Change(req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if errors.Is(err, service.ErrWrongPassword) {
		// 401 只用于会话失效
		BadRequest(c, "현재 비밀번호가 올바르지 않습니다")
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	// 旧会话连同事件流一起失效
	middleware.LockSessions()
	h.issue(c, "비밀번호가 변경되었습니다")
}
