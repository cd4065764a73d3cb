package api

import (
	"net/http"
	"net/url"
	"testing"

	"assetbook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTabRouter(t *testing.T) (*gin.Engine, *TabHandler) {
	t.Helper()
	h := NewTabHandler(newTestStore(t))
	r := gin.New()
	r.UseRawPath = true
	r.GET("/tabs", h.List)
	r.POST("/tabs", h.Create)
	r.PUT("/tabs/:tab", h.Rename)
	r.DELETE("/tabs/:tab", h.Delete)
	r.GET("/tabs/:tab/total", h.Total)
	return r, h
}

func TestTabHandler_CreateAndList(t *testing.T) {
	r, h := newTabRouter(t)

	w := doJSON(r, "POST", "/tabs", TabRequest{Name: "  예적금 "})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created TabSummary
	decodeResponse(t, w, &created)
	assert.Equal(t, "예적금", created.Name)
	assert.Equal(t, "0 원", created.TotalText)

	w = doJSON(r, "POST", "/tabs", TabRequest{Name: "예적금"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, "POST", "/tabs", `{"name": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, "POST", "/tabs", TabRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, h.store.AddTab("주식"))
	_, err := h.store.AddRecord("주식", models.AssetInput{Category: "주식", Name: "A", Amount: "1,234,567"})
	require.NoError(t, err)

	w = doJSON(r, "GET", "/tabs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []TabSummary
	decodeResponse(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "예적금", list[0].Name)
	assert.Equal(t, TabSummary{Name: "주식", Count: 1, Total: 1234567, TotalText: "1,234,567 원"}, list[1])
}

func TestTabHandler_RenameAndDelete(t *testing.T) {
	r, h := newTabRouter(t)
	require.NoError(t, h.store.AddTab("A"))
	require.NoError(t, h.store.AddTab("B"))

	w := doJSON(r, "PUT", "/tabs/A", TabRequest{Name: "B"})
	assert.Equal(t, http.StatusConflict, w.Code)
	w = doJSON(r, "PUT", "/tabs/none", TabRequest{Name: "C"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, "PUT", "/tabs/A", TabRequest{Name: "현금/예금"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"현금/예금", "B"}, h.store.GetAllTabNames())

	w = doJSON(r, "GET", "/tabs/"+url.PathEscape("현금/예금")+"/total", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "DELETE", "/tabs/none", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, "DELETE", "/tabs/B", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "DELETE", "/tabs/"+url.PathEscape("현금/예금"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "last tab is kept")
	assert.Equal(t, []string{"현금/예금"}, h.store.GetAllTabNames())
}

func TestTabHandler_Total(t *testing.T) {
	r, h := newTabRouter(t)
	require.NoError(t, h.store.AddTab("A"))
	for _, amt := range []string{"1000", "2500", "0"} {
		_, err := h.store.AddRecord("A", models.AssetInput{Category: "현금", Name: "x", Amount: amt})
		require.NoError(t, err)
	}

	w := doJSON(r, "GET", "/tabs/A/total", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sum TabSummary
	decodeResponse(t, w, &sum)
	assert.Equal(t, int64(3500), sum.Total)
	assert.Equal(t, 3, sum.Count)

	w = doJSON(r, "GET", "/tabs/none/total", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
