package api

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"assetbook/store"

	"github.com/gin-gonic/gin"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// 上传文件大小上限
	maxImportSize = 10 << 20
)

// ExportHandler 导入导出处理器
type ExportHandler struct {
	store *store.Store
}

// NewExportHandler 创建导入导出处理器
func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// ImportResponse 导入结果
type ImportResponse struct {
	Imported int `json:"imported"`
	Count    int `json:"count"`
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, contentType, data)
}

func exportFilename(tab, ext string) string {
	return fmt.Sprintf("%s_%s.%s", tab, time.Now().Format("20060102"), ext)
}

// ExportCSV 导出标签页为 CSV
// @Summary CSV 내보내기
// @Description 탭의 자산을 BOM 이 포함된 UTF-8 CSV 로 내보냅니다. 번호(no)는 포함되지 않습니다
// @Tags 가져오기/내보내기
// @Produce text/csv
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Success 200 {file} file "CSV 파일"
// @Failure 400 {object} Response "내보낼 데이터 없음"
// @Failure 404 {object} Response "없는 탭"
// @Router /api/v1/tabs/{tab}/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	tab := c.Param("tab")
	if !h.store.HasTab(tab) {
		NotFound(c, "탭을 찾을 수 없습니다: "+tab)
		return
	}

	var buf bytes.Buffer
	ok, err := h.store.ExportCSV(tab, &buf)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !ok {
		BadRequest(c, "내보낼 자산 데이터가 없습니다")
		return
	}
	attachment(c, exportFilename(tab, "csv"), csvContentType, buf.Bytes())
}

// ExportXLSX 导出标签页为 Excel
// @Summary Excel 내보내기
// @Description 탭의 자산을 합계 행이 있는 xlsx 파일로 내보냅니다
// @Tags 가져오기/내보내기
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Success 200 {file} file "Excel 파일"
// @Failure 400 {object} Response "내보낼 데이터 없음"
// @Failure 404 {object} Response "없는 탭"
// @Router /api/v1/tabs/{tab}/export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	tab := c.Param("tab")
	if !h.store.HasTab(tab) {
		NotFound(c, "탭을 찾을 수 없습니다: "+tab)
		return
	}

	var buf bytes.Buffer
	ok, err := h.store.ExportXLSX(tab, &buf)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !ok {
		BadRequest(c, "내보낼 자산 데이터가 없습니다")
		return
	}
	attachment(c, exportFilename(tab, "xlsx"), xlsxContentType, buf.Bytes())
}

// ImportCSV 从 CSV 导入，clear=true 时先清空标签页
// @Summary CSV 가져오기
// @Description CSV 파일의 자산을 탭에 추가합니다. 열 이름으로 매칭하며 없는 열은 기본값을 사용합니다. 모든 행이 올바를 때만 반영됩니다
// @Tags 가져오기/내보내기
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param tab path string true "탭 이름"
// @Param file formData file true "CSV 파일"
// @Param clear formData bool false "기존 데이터 삭제 후 가져오기"
// @Success 200 {object} Response{data=ImportResponse} "가져오기 성공"
// @Failure 400 {object} Response "파일 형식 오류"
// @Failure 404 {object} Response "없는 탭"
// @Router /api/v1/tabs/{tab}/import/csv [post]
func (h *ExportHandler) ImportCSV(c *gin.Context) {
	tab := c.Param("tab")
	if !h.store.HasTab(tab) {
		NotFound(c, "탭을 찾을 수 없습니다: "+tab)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "CSV 파일을 선택해주세요")
		return
	}
	if fh.Size > maxImportSize {
		BadRequest(c, "파일이 너무 큽니다")
		return
	}
	clearExisting, err := strconv.ParseBool(c.DefaultPostForm("clear", "false"))
	if err != nil {
		BadRequest(c, "clear 값이 올바르지 않습니다")
		return
	}

	f, err := fh.Open()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "파일을 열 수 없습니다"))
		return
	}
	defer f.Close()

	n, err := h.store.ImportCSV(tab, f, clearExisting)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessWithMessage(c, fmt.Sprintf("%d건을 가져왔습니다", n), ImportResponse{
		Imported: n,
		Count:    len(h.store.GetAssetsByTab(tab)),
	})
}
