package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"cafe-bot/internal/common/logger"
)

// maxLimiters caps the per-address table; it is reset when exceeded.
const maxLimiters = 10000

// RateLimiter keeps one token bucket per remote host.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	lg       *logger.Logger
}

func NewRateLimiter(perSecond float64, burst int, lg *logger.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		lg:       lg,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxLimiters {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

// Handler answers 429 once the caller's bucket is empty. A non-positive
// rate disables limiting.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	if rl.rate <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientHost(r.RemoteAddr)
		if !rl.limiter(key).Allow() {
			rl.lg.WithRequestID(RequestID(r.Context())).Warn("rate_limit_exceeded", map[string]any{
				"key":    key,
				"path":   r.URL.Path,
				"method": r.Method,
			})
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests"}` + "\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
