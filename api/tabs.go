package api

import (
	"assetbook/models"
	"assetbook/store"

	"github.com/gin-gonic/gin"
)

// TabHandler 标签页管理
type TabHandler struct {
	store *store.Store
}

// NewTabHandler 创建标签页处理器
func NewTabHandler(s *store.Store) *TabHandler {
	return &TabHandler{store: s}
}

// TabRequest 新建/重命名请求
type TabRequest struct {
	Name string `json:"name" binding:"required" example:"예적금"`
}

// TabSummary 标签页概要
type TabSummary struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Total     int64  `json:"total"`
	TotalText string `json:"total_text" example:"1,234,567 원"`
}

func (h *TabHandler) summary(name string) TabSummary {
	total := h.store.TotalAmount(name)
	return TabSummary{
		Name:      name,
		Count:     len(h.store.GetAssetsByTab(name)),
		Total:     total,
		TotalText: models.FormatCurrency(total),
	}
}

// List 按顺序列出标签页及合计
// @Summary 탭 목록
// @Tags 탭
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]TabSummary} "조회 성공"
// @Router /api/v1/tabs [get]
func (h *TabHandler) List(c *gin.Context) {
	names := h.store.GetAllTabNames()
	list := make([]TabSummary, 0, len(names))
	for _, name := range names {
		list = append(list, h.summary(name))
	}
	Success(c, list)
}

// Create 新建标签页
// @Summary 탭 추가
// @Tags 탭
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TabRequest true "탭 이름"
// @Success 200 {object} Response{data=TabSummary} "추가 성공"
// @Failure 400 {object} Response "이름 누락"
// @Failure 409 {object} Response "이미 있는 탭"
// @Router /api/v1/tabs [post]
func (h *TabHandler) Create(c *gin.Context) {
	var req TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "탭 이름을 입력해주세요")
		return
	}
	if err := h.store.AddTab(req.Name); err != nil {
		HandleError(c, err)
		return
	}
	SuccessWithMessage(c, "탭이 추가되었습니다", h.summary(trimmed(req.Name)))
}

// Rename 重命名标签页
// @Summary 탭 이름 변경
// @Tags 탭
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Param request body TabRequest true "새 이름"
// @Success 200 {object} Response{data=TabSummary} "변경 성공"
// @Failure 404 {object} Response "없는 탭"
// @Failure 409 {object} Response "이미 있는 탭"
// @Router /api/v1/tabs/{tab} [put]
func (h *TabHandler) Rename(c *gin.Context) {
	var req TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "새 탭 이름을 입력해주세요")
		return
	}
	if err := h.store.RenameTab(c.Param("tab"), req.Name); err != nil {
		HandleError(c, err)
		return
	}
	SuccessWithMessage(c, "탭 이름이 변경되었습니다", h.summary(trimmed(req.Name)))
}

// Delete 删除标签页及其全部记录，至少保留一个标签页
// @Summary 탭 삭제
// @Tags 탭
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Success 200 {object} Response "삭제 성공"
// @Failure 400 {object} Response "마지막 탭"
// @Failure 404 {object} Response "없는 탭"
// @Router /api/v1/tabs/{tab} [delete]
func (h *TabHandler) Delete(c *gin.Context) {
	name := c.Param("tab")
	if !h.store.HasTab(name) {
		NotFound(c, "탭을 찾을 수 없습니다: "+name)
		return
	}
	if len(h.store.GetAllTabNames()) <= 1 {
		BadRequest(c, "마지막 탭은 삭제할 수 없습니다")
		return
	}
	if err := h.store.DeleteTab(name); err != nil {
		HandleError(c, err)
		return
	}
	SuccessWithMessage(c, "탭이 삭제되었습니다", nil)
}

// Total 标签页金额合计
// @Summary 탭 합계
// @Tags 탭
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Success 200 {object} Response{data=TabSummary} "조회 성공"
// @Failure 404 {object} Response "없는 탭"
// @Router /api/v1/tabs/{tab}/total [get]
func (h *TabHandler) Total(c *gin.Context) {
	name := c.Param("tab")
	if !h.store.HasTab(name) {
		NotFound(c, "탭을 찾을 수 없습니다: "+name)
		return
	}
	Success(c, h.summary(name))
}
