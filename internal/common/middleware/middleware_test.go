package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/common/metrics"
)

func TestRecoverAnswersWithFallback(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput("test", &buf)

	h := Recover(lg, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("oops"))
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/place-order", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "oops", rec.Body.String())
	assert.Contains(t, buf.String(), `"action":"panic_recovered"`)
	assert.Contains(t, buf.String(), "boom")
}

func TestRecoverLogsInnerRequestID(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput("test", &buf)

	h := Recover(lg, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})(WithRequestID(lg)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })))

	req := httptest.NewRequest(http.MethodPost, "/place-order", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "panic_recovered", entry["action"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsMintedAndPropagated(t *testing.T) {
	var buf bytes.Buffer
	var seen string
	h := WithRequestID(logger.NewWithOutput("test", &buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, seen, entry["request_id"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics)
	r.HandleFunc("/admin/{list}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/orders", nil))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `cafe_http_requests_total{method="GET",path="/admin/{list}",status="202"} 1`)
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	rl := NewRateLimiter(1, 2, logger.NewWithOutput("test", &bytes.Buffer{}))
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/check-client", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	other := httptest.NewRequest(http.MethodPost, "/check-client", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterDisabledAtZero(t *testing.T) {
	rl := NewRateLimiter(0, 0, logger.NewWithOutput("test", &bytes.Buffer{}))
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		rl.Handler(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}
