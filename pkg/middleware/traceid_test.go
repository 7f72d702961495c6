package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func traceTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDMiddleware_GeneratesWhenAbsent(t *testing.T) {
	r := traceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	traceID := w.Header().Get("X-Trace-ID")
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
	assert.Equal(t, traceID, w.Body.String())
}

func TestTraceIDMiddleware_ReusesInboundHeader(t *testing.T) {
	r := traceTestRouter()
	inbound := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", inbound)
	r.ServeHTTP(w, req)

	assert.Equal(t, inbound, w.Header().Get("X-Trace-ID"))
	assert.Equal(t, inbound, w.Body.String())
}

func TestTraceIDMiddleware_ReplacesMalformedHeader(t *testing.T) {
	r := traceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "not-a-uuid")
	r.ServeHTTP(w, req)

	traceID := w.Header().Get("X-Trace-ID")
	assert.NotEqual(t, "not-a-uuid", traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}
