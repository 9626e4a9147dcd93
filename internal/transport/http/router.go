// Package httptransport assembles the HTTP surface: middleware chain, health
// and metrics endpoints, and the versioned validation API.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	platformmetrics "cotejo/internal/platform/metrics"
	"cotejo/internal/platform/middleware"
	"cotejo/internal/ratelimit"
	validatehandler "cotejo/internal/validate/handler"
)

// Deps carries everything the router mounts. Validator and RateLimiter are
// optional; nil disables the corresponding middleware.
type Deps struct {
	Logger      *slog.Logger
	Metrics     *platformmetrics.Metrics
	Validate    *validatehandler.Handler
	Validator   middleware.JWTValidator
	RateLimiter *ratelimit.Middleware
	Healthz     http.HandlerFunc
}

// NewRouter wires the middleware chain and all endpoints. Health and metrics
// stay outside auth and rate limiting so probes and scrapes always succeed.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))

	if deps.Healthz != nil {
		r.Get("/healthz", deps.Healthz)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		if deps.RateLimiter != nil {
			api.Use(deps.RateLimiter.Limit)
		}
		if deps.Validator != nil {
			api.Use(middleware.RequireAuth(deps.Validator, deps.Logger))
		}
		deps.Validate.Register(api)
	})

	return r
}
