// Package middleware holds the HTTP wrappers shared by every route:
// panic recovery, request ids with access logging, metrics and rate limiting.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/common/metrics"
)

const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// RequestID returns the id attached by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Recover turns a panic into onPanic's reply so the connection is never
// dropped without an answer.
func Recover(lg *logger.Logger, onPanic http.HandlerFunc) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					// WithRequestID runs inside us: its id is only on the response.
					id := RequestID(r.Context())
					if id == "" {
						id = w.Header().Get(RequestIDHeader)
					}
					lg.WithRequestID(id).Error("panic_recovered", fmt.Errorf("%v", rec), map[string]any{
						"method": r.Method,
						"path":   r.URL.Path,
					})
					onPanic(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// WithRequestID reuses the caller's X-Request-ID or mints one, echoes it
// back and logs the finished request.
func WithRequestID(lg *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, id))
			w.Header().Set(RequestIDHeader, id)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			lg.WithRequestID(id).Info("http_request", map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      wrapped.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
			})
		})
	}
}

// Metrics records count, latency and in-flight requests per route template.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.IncInFlight()
		defer metrics.DecInFlight()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		metrics.RecordHTTPRequest(r.Method, path, strconv.Itoa(wrapped.statusCode), time.Since(start))
	})
}

// responseWriter captures the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}
