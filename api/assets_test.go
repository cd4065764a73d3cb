package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"assetbook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssetRouter(t *testing.T) (*gin.Engine, *AssetHandler) {
	t.Helper()
	today := models.NewDate(2026, time.January, 1)
	h := NewAssetHandler(newTestStore(t), func() models.Date { return today })
	require.NoError(t, h.store.AddTab("A"))
	r := gin.New()
	r.GET("/tabs/:tab/assets", h.List)
	r.POST("/tabs/:tab/assets", h.Create)
	r.DELETE("/tabs/:tab/assets", h.Delete)
	r.GET("/tabs/:tab/assets/:id", h.Get)
	r.PUT("/tabs/:tab/assets/:id", h.Update)
	return r, h
}

func TestTextOrNumber(t *testing.T) {
	var req AssetRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 1500000, "reminder": 9}`), &req))
	assert.Equal(t, "1500000", string(req.Amount))
	assert.Equal(t, "9", string(req.Reminder))

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "1,500,000", "reminder": null}`), &req))
	assert.Equal(t, "1,500,000", string(req.Amount))
	assert.Equal(t, "", string(req.Reminder))

	assert.Error(t, json.Unmarshal([]byte(`{"amount": true}`), &req))
}

func TestAssetHandler_CreateGetUpdate(t *testing.T) {
	r, _ := newAssetRouter(t)

	w := doJSON(r, "POST", "/tabs/A/assets", `{
		"category": "예금", "subcategory": "정기예금", "name": "OO은행",
		"amount": 10000000, "maturity_date": "2026/01/31", "reminder": "9"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created AssetView
	decodeResponse(t, w, &created)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "10,000,000 원", created.AmountText)
	assert.Equal(t, "D-30", created.DDay)
	assert.Equal(t, models.ReminderDaysBefore(9), created.Reminder)
	require.NotNil(t, created.MaturityDate)
	assert.Equal(t, "2026-01-31", created.MaturityDate.String())

	w = doJSON(r, "GET", "/tabs/A/assets/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "PUT", "/tabs/A/assets/1", AssetRequest{Category: "예금", Name: "OO은행", Amount: "20,000,000"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated AssetView
	decodeResponse(t, w, &updated)
	assert.Equal(t, int64(1), updated.ID)
	assert.Nil(t, updated.MaturityDate)
	assert.Empty(t, updated.DDay)
	assert.Equal(t, models.ReminderNone, updated.Reminder)
	v, ok := updated.Amount.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(20000000), v)
}

func TestAssetHandler_Errors(t *testing.T) {
	r, _ := newAssetRouter(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"missing name", "POST", "/tabs/A/assets", AssetRequest{Category: "현금"}, http.StatusBadRequest},
		{"bad amount", "POST", "/tabs/A/assets", AssetRequest{Category: "현금", Name: "x", Amount: "-5"}, http.StatusBadRequest},
		{"bad reminder", "POST", "/tabs/A/assets", AssetRequest{Category: "현금", Name: "x", Reminder: "4"}, http.StatusBadRequest},
		{"bad json", "POST", "/tabs/A/assets", `{"name":`, http.StatusBadRequest},
		{"unknown tab", "POST", "/tabs/none/assets", AssetRequest{Category: "현금", Name: "x"}, http.StatusNotFound},
		{"unknown tab list", "GET", "/tabs/none/assets", nil, http.StatusNotFound},
		{"bad id", "GET", "/tabs/A/assets/abc", nil, http.StatusBadRequest},
		{"zero id", "GET", "/tabs/A/assets/0", nil, http.StatusBadRequest},
		{"missing record", "GET", "/tabs/A/assets/99", nil, http.StatusNotFound},
		{"update missing", "PUT", "/tabs/A/assets/99", AssetRequest{Category: "현금", Name: "x"}, http.StatusNotFound},
		{"delete without ids", "DELETE", "/tabs/A/assets", `{}`, http.StatusBadRequest},
		{"delete unknown tab", "DELETE", "/tabs/none/assets", DeleteAssetsRequest{IDs: []int64{1}}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestAssetHandler_ListSortedAndDelete(t *testing.T) {
	r, h := newAssetRouter(t)
	for _, in := range []models.AssetInput{
		{Category: "현금", Name: "b", Amount: "300"},
		{Category: "현금", Name: "a", Amount: "100"},
		{Category: "현금", Name: "c", Amount: "200"},
	} {
		_, err := h.store.AddRecord("A", in)
		require.NoError(t, err)
	}

	w := doJSON(r, "GET", "/tabs/A/assets?sort=amount&order=desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list AssetListResponse
	decodeResponse(t, w, &list)
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, int64(600), list.Total)
	assert.Equal(t, "600 원", list.TotalText)
	names := []string{list.List[0].Name, list.List[1].Name, list.List[2].Name}
	assert.Equal(t, []string{"b", "c", "a"}, names)

	w = doJSON(r, "GET", "/tabs/A/assets", nil)
	decodeResponse(t, w, &list)
	assert.Equal(t, "b", list.List[0].Name, "insertion order without sort")

	w = doJSON(r, "DELETE", "/tabs/A/assets", DeleteAssetsRequest{IDs: []int64{1, 3, 42}})
	require.Equal(t, http.StatusOK, w.Code)
	var res map[string]bool
	decodeResponse(t, w, &res)
	assert.True(t, res["deleted"])
	assert.Len(t, h.store.GetAssetsByTab("A"), 1)

	w = doJSON(r, "DELETE", "/tabs/A/assets", DeleteAssetsRequest{IDs: []int64{42}})
	require.Equal(t, http.StatusOK, w.Code)
	decodeResponse(t, w, &res)
	assert.False(t, res["deleted"])
}
