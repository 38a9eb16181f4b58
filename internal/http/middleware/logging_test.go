package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mitrasinergi/sales-api/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging_AssignsRequestIDAndLogsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = middleware.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"missing"}`))
	})

	handler := middleware.Logging(zap.New(core))(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	headerID := rec.Header().Get("X-Request-ID")
	require.NotEmpty(t, headerID)
	assert.Equal(t, headerID, seenID, "downstream handlers see the same request ID as the response header")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, headerID, fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/v1/projects", fields["path"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status_code"])
	assert.Equal(t, int64(len(`{"error":"missing"}`)), fields["response_size"])
}

func TestRequestIDFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, middleware.RequestIDFromContext(req.Context()))
}
