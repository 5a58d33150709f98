package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, w.Code)
	generated := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "req-42", w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "kaboom")
}
