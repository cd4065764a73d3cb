package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"assetbook/models"
	"assetbook/store"

	"github.com/gin-gonic/gin"
)

// AssetHandler 资产记录
type AssetHandler struct {
	store *store.Store
	today func() models.Date
}

// NewAssetHandler 创建资产处理器；today 用于计算 D-day
func NewAssetHandler(s *store.Store, today func() models.Date) *AssetHandler {
	return &AssetHandler{store: s, today: today}
}

// textOrNumber 接受 JSON 字符串或数字
type textOrNumber string

func (t *textOrNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = textOrNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = textOrNumber(n.String())
	return nil
}

// AssetRequest 新增/修改请求，金额可以是数字或带千分位的文本
type AssetRequest struct {
	Category     string       `json:"category" example:"예금"`
	Subcategory  string       `json:"subcategory" example:"정기예금"`
	Name         string       `json:"name" example:"OO은행 정기예금"`
	Amount       textOrNumber `json:"amount" swaggertype:"string" example:"10,000,000"`
	MaturityDate string       `json:"maturity_date" example:"2025-12-31"`
	Reminder     textOrNumber `json:"reminder" swaggertype:"string" example:"9일 전"`
	Note         string       `json:"note"`
}

func (r AssetRequest) input() models.AssetInput {
	return models.AssetInput{
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		Name:         r.Name,
		Amount:       string(r.Amount),
		MaturityDate: r.MaturityDate,
		Reminder:     string(r.Reminder),
		Note:         r.Note,
	}
}

// DeleteAssetsRequest 批量删除请求
type DeleteAssetsRequest struct {
	IDs []int64 `json:"ids" binding:"required" example:"1,2"`
}

// AssetView 列表展示用的资产
type AssetView struct {
	models.Asset
	AmountText string `json:"amount_text" example:"10,000,000 원"`
	DDay       string `json:"d_day,omitempty" example:"D-30"`
}

// AssetListResponse 资产列表
type AssetListResponse struct {
	Tab       string      `json:"tab"`
	Count     int         `json:"count"`
	Total     int64       `json:"total"`
	TotalText string      `json:"total_text"`
	List      []AssetView `json:"list"`
}

func (h *AssetHandler) view(a models.Asset) AssetView {
	v := AssetView{Asset: a, AmountText: formatAmount(a.Amount)}
	if a.MaturityDate != nil && h.today != nil {
		v.DDay = models.DDayLabel(models.DaysUntil(*a.MaturityDate, h.today()))
	}
	return v
}

func formatAmount(a models.Amount) string {
	if v, ok := a.Int64(); ok {
		return models.FormatCurrency(v)
	}
	return a.String()
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "잘못된 번호입니다")
		return 0, false
	}
	return id, true
}

// List 列出标签页中的资产，可按字段排序
// @Summary 자산 목록
// @Tags 자산
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Param sort query string false "정렬 필드 (id, category, subcategory, name, amount, maturity_date, reminder, note)"
// @Param order query string false "asc 또는 desc"
// @Success 200 {object} Response{data=AssetListResponse} "조회 성공"
// @Failure 404 {object} Response "없는 탭"
// @Router /api/v1/tabs/{tab}/assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	tab := c.Param("tab")
	if !h.store.HasTab(tab) {
		NotFound(c, "탭을 찾을 수 없습니다: "+tab)
		return
	}
	assets := h.store.GetAssetsByTab(tab)
	if field := c.Query("sort"); field != "" {
		store.SortAssets(assets, field, strings.EqualFold(c.Query("order"), "desc"))
	}

	list := make([]AssetView, 0, len(assets))
	for _, a := range assets {
		list = append(list, h.view(a))
	}
	total := h.store.TotalAmount(tab)
	Success(c, AssetListResponse{
		Tab:       tab,
		Count:     len(list),
		Total:     total,
		TotalText: models.FormatCurrency(total),
		List:      list,
	})
}

// Get 按编号获取
// @Summary 자산 조회
// @Tags 자산
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Param id path int true "자산 번호"
// @Success 200 {object} Response{data=AssetView} "조회 성공"
// @Failure 404 {object} Response "없는 탭 또는 자산"
// @Router /api/v1/tabs/{tab}/assets/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.store.GetAsset(c.Param("tab"), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, h.view(a))
}

// Create 新增资产
// @Summary 자산 추가
// @Tags 자산
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Param request body AssetRequest true "자산 정보"
// @Success 200 {object} Response{data=AssetView} "추가 성공"
// @Failure 400 {object} Response "입력 오류"
// @Failure 404 {object} Response "없는 탭"
// @Router /api/v1/tabs/{tab}/assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식이 올바르지 않습니다")
		return
	}
	a, err := h.store.AddRecord(c.Param("tab"), req.input())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessWithMessage(c, "자산이 추가되었습니다", h.view(a))
}

// Update 修改资产，编号不变
// @Summary 자산 수정
// @Tags 자산
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Param id path int true "자산 번호"
// @Param request body AssetRequest true "자산 정보"
// @Success 200 {object} Response{data=AssetView} "수정 성공"
// @Failure 400 {object} Response "입력 오류"
// @Failure 404 {object} Response "없는 탭 또는 자산"
// @Router /api/v1/tabs/{tab}/assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "요청 형식이 올바르지 않습니다")
		return
	}
	a, err := h.store.UpdateRecord(c.Param("tab"), id, req.input())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessWithMessage(c, "자산이 수정되었습니다", h.view(a))
}

// Delete 批量删除，找不到的编号忽略
// @Summary 자산 삭제
// @Tags 자산
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Param request body DeleteAssetsRequest true "삭제할 번호"
// @Success 200 {object} Response{data=map[string]bool} "처리 완료 (deleted: 실제 삭제 여부)"
// @Failure 404 {object} Response "없는 탭"
// @Router /api/v1/tabs/{tab}/assets [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	var req DeleteAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "삭제할 자산을 선택해주세요")
		return
	}
	deleted, err := h.store.DeleteRecords(c.Param("tab"), req.IDs)
	if err != nil {
		HandleError(c, err)
		return
	}
	message := "자산이 삭제되었습니다"
	if !deleted {
		message = "삭제된 자산이 없습니다"
	}
	SuccessWithMessage(c, message, gin.H{"deleted": deleted})
}
