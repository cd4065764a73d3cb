package api

import (
	"assetbook/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler 用户设置
type SettingsHandler struct {
	settings *service.SettingsStore
}

// NewSettingsHandler 创建设置处理器
func NewSettingsHandler(settings *service.SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// UpdateSettingsRequest 修改设置请求
type UpdateSettingsRequest struct {
	AutoLockMinutes int `json:"auto_lock_minutes" binding:"required" example:"10"`
}

// Get 获取设置
// @Summary 설정 조회
// @Tags 설정
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.Settings} "조회 성공"
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	Success(c, h.settings.Get())
}

// Update 修改设置，新的自动锁定时间从下一次请求开始生效
// @Summary 설정 변경
// @Description 자동 잠금 시간(분)을 변경합니다. 1 이상이어야 합니다
// @Tags 설정
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "설정"
// @Success 200 {object} Response{data=service.Settings} "변경 성공"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "자동 잠금 시간을 입력해주세요")
		return
	}
	if err := h.settings.SetAutoLockMinutes(req.AutoLockMinutes); err != nil {
		HandleError(c, err)
		return
	}
	SuccessWithMessage(c, "설정이 저장되었습니다", h.settings.Get())
}
