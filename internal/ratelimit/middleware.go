package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cotejo/pkg/platform/httputil"
	"cotejo/pkg/requestcontext"
)

// Middleware throttles requests per client IP. Store failures fail open so a
// degraded limiter never takes validation traffic down with it.
type Middleware struct {
	store             Store
	requestsPerMinute int
	logger            *slog.Logger
}

func NewMiddleware(store Store, requestsPerMinute int, logger *slog.Logger) *Middleware {
	return &Middleware{
		store:             store,
		requestsPerMinute: requestsPerMinute,
		logger:            logger,
	}
}

// Limit enforces the per-IP limit over a one minute sliding window.
func (m *Middleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.requestsPerMinute <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)

		result, err := m.store.Allow(ctx, ip, m.requestsPerMinute, time.Minute)
		if err != nil {
			m.logger.ErrorContext(ctx, "rate limit check failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
			httputil.WriteJSON(w, http.StatusTooManyRequests, map[string]any{
				"error":       "rate_limited",
				"message":     "Too many requests from this client. Please try again later.",
				"retry_after": result.RetryAfter,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
