package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(buf *bytes.Buffer) *gin.Engine {
	log := slog.New(slog.NewJSONHandler(buf, nil))
	r := gin.New()
	r.Use(RequestID(), AccessLog(log))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("database gone"))
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())
	assert.Contains(t, buf.String(), `"route":"/ok"`)
	assert.Contains(t, buf.String(), id)
}

func TestRequestIDPropagated(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestAccessLogLevels(t *testing.T) {
	tests := []struct {
		path  string
		level string
	}{
		{"/ok", `"level":"INFO"`},
		{"/boom", `"level":"ERROR"`},
		{"/missing", `"level":"WARN"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			r := newRouter(&buf)
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Contains(t, buf.String(), tt.level)
		})
	}
}
