package api

import (
	"bytes"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assetbook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportRouter(t *testing.T) (*gin.Engine, *ExportHandler) {
	t.Helper()
	h := NewExportHandler(newTestStore(t))
	require.NoError(t, h.store.AddTab("예금"))
	r := gin.New()
	r.GET("/tabs/:tab/export/csv", h.ExportCSV)
	r.GET("/tabs/:tab/export/xlsx", h.ExportXLSX)
	r.POST("/tabs/:tab/import/csv", h.ImportCSV)
	return r, h
}

func uploadCSV(r *gin.Engine, path, content string, fields map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if content != "" {
		fw, _ := mw.CreateFormFile("file", "assets.csv")
		_, _ = fw.Write([]byte(content))
	}
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	_ = mw.Close()

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportHandler_ExportCSV(t *testing.T) {
	r, h := newExportRouter(t)

	w := doJSON(r, "GET", "/tabs/%EC%98%88%EA%B8%88/export/csv", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty tab has nothing to export")

	_, err := h.store.AddRecord("예금", models.AssetInput{Category: "예금", Name: "OO은행", Amount: "1,000"})
	require.NoError(t, err)

	w = doJSON(r, "GET", "/tabs/%EC%98%88%EA%B8%88/export/csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	_, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(params["filename"], "예금_"))
	assert.True(t, strings.HasSuffix(params["filename"], ".csv"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF자산 종류,"))
	assert.Contains(t, body, "예금,,OO은행,1000,,없음,")

	w = doJSON(r, "GET", "/tabs/none/export/csv", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportHandler_ExportXLSX(t *testing.T) {
	r, h := newExportRouter(t)
	_, err := h.store.AddRecord("예금", models.AssetInput{Category: "예금", Name: "OO은행", Amount: "1000"})
	require.NoError(t, err)

	w := doJSON(r, "GET", "/tabs/%EC%98%88%EA%B8%88/export/xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestExportHandler_ImportCSV(t *testing.T) {
	r, h := newExportRouter(t)
	_, err := h.store.AddRecord("예금", models.AssetInput{Category: "예금", Name: "old", Amount: "1"})
	require.NoError(t, err)

	csvData := "자산 종류,자산 명,금액\n예금,new1,\"2,000\"\n예금,new2,3000\n"

	w := uploadCSV(r, "/tabs/%EC%98%88%EA%B8%88/import/csv", csvData, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res ImportResponse
	decodeResponse(t, w, &res)
	assert.Equal(t, ImportResponse{Imported: 2, Count: 3}, res)

	w = uploadCSV(r, "/tabs/%EC%98%88%EA%B8%88/import/csv", csvData, map[string]string{"clear": "true"})
	require.Equal(t, http.StatusOK, w.Code)
	decodeResponse(t, w, &res)
	assert.Equal(t, ImportResponse{Imported: 2, Count: 2}, res)
	assert.Equal(t, int64(5000), h.store.TotalAmount("예금"))

	w = uploadCSV(r, "/tabs/%EC%98%88%EA%B8%88/import/csv", "자산 명,금액\nx,abc\n", map[string]string{"clear": "true"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, h.store.GetAssetsByTab("예금"), 2)

	w = uploadCSV(r, "/tabs/%EC%98%88%EA%B8%88/import/csv", csvData, map[string]string{"clear": "yes"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "clear must be a boolean")
	assert.Len(t, h.store.GetAssetsByTab("예금"), 2)

	w = uploadCSV(r, "/tabs/%EC%98%88%EA%B8%88/import/csv", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "file is required")

	w = uploadCSV(r, "/tabs/none/import/csv", csvData, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
