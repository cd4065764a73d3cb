package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"assetbook/calc"
	"assetbook/config"
	"assetbook/service"
	"assetbook/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: A", store.ErrDuplicateTab), http.StatusConflict},
		{fmt.Errorf("%w: A", store.ErrUnknownTab), http.StatusNotFound},
		{store.ErrRecordNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: 2행", store.ErrInvalidInput), http.StatusBadRequest},
		{service.ErrInvalidSettings, http.StatusBadRequest},
		{service.ErrPasswordMismatch, http.StatusBadRequest},
		{service.ErrPasswordNotSet, http.StatusBadRequest},
		{calc.ErrDivisionByZero, http.StatusBadRequest},
		{service.ErrPasswordAlreadySet, http.StatusConflict},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{service.ErrEmailDisabled, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: disk full", store.ErrIO), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusOf(tc.err), tc.err.Error())
	}
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	prev := config.GlobalConfig
	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "release"}}
	defer func() { config.GlobalConfig = prev }()

	r := gin.New()
	r.GET("/io", func(c *gin.Context) { HandleError(c, fmt.Errorf("%w: open /secret/path", store.ErrIO)) })
	r.GET("/dup", func(c *gin.Context) { HandleError(c, fmt.Errorf("%w: A", store.ErrDuplicateTab)) })

	w := doJSON(r, "GET", "/io", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w, nil)
	assert.NotContains(t, resp.Message, "/secret/path")

	w = doJSON(r, "GET", "/dup", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	resp = decodeResponse(t, w, nil)
	assert.Contains(t, resp.Message, "A")
}
