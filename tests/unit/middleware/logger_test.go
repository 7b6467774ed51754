package middleware_test

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novabill/internal/middleware"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestGetRequestID_InsideChain(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	var got string
	r.GET("/test", func(c *gin.Context) {
		got = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", got)
}

func TestLogger_IncludesMethodPathAndQuery(t *testing.T) {
	buf := captureLog(t)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/invoices", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/invoices?status=paid&page=2", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-1")
	r.ServeHTTP(w, req)

	line := buf.String()
	assert.Contains(t, line, "[req-log-1]")
	assert.Contains(t, line, "GET /invoices?status=paid&page=2")
	assert.Contains(t, line, "200")
}

func TestLogger_IncludesAttachedErrors(t *testing.T) {
	buf := captureLog(t)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boom", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), "errors=")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestRecovery_RendersErrorEnvelope(t *testing.T) {
	buf := captureLog(t)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/panic", http.NoBody)
	req.Header.Set("X-Request-ID", "req-panic-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)

	assert.Contains(t, buf.String(), "[req-panic-1] panic recovered: kaboom")
}
