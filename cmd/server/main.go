package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"cotejo/internal/audit"
	"cotejo/internal/jwttoken"
	"cotejo/internal/platform/config"
	"cotejo/internal/platform/httpserver"
	"cotejo/internal/platform/logger"
	platformmetrics "cotejo/internal/platform/metrics"
	"cotejo/internal/platform/middleware"
	platformredis "cotejo/internal/platform/redis"
	"cotejo/internal/ratelimit"
	httptransport "cotejo/internal/transport/http"
	"cotejo/internal/validate"
	validatehandler "cotejo/internal/validate/handler"
	validatemetrics "cotejo/internal/validate/metrics"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpMetrics := platformmetrics.New()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		log.Info("redis connected", "url", cfg.Redis.URL)
	}

	var limiter *ratelimit.Middleware
	if cfg.RateLimit.RequestsPerMinute > 0 {
		var store ratelimit.Store
		if redisClient != nil {
			store = ratelimit.NewRedisStore(redisClient.Client)
		} else {
			store = ratelimit.NewMemoryStore()
		}
		limiter = ratelimit.NewMiddleware(store, cfg.RateLimit.RequestsPerMinute, log)
	}

	var sink audit.Sink
	var kafkaSink *audit.KafkaSink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err = audit.NewKafkaSink(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka sink setup failed", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("audit events publishing to kafka", "topic", cfg.Kafka.Topic)
	} else {
		sink = audit.NewMemorySink(0)
		log.Info("audit events retained in memory; set COTEJO_KAFKA_BROKERS to publish")
	}

	publisher := audit.NewPublisher(log, 0)
	worker := audit.NewWorker(sink, publisher.Inbox(), log)

	var validator middleware.JWTValidator
	if cfg.JWTSigningKey != "" {
		validator = jwttoken.NewJWTService(cfg.JWTSigningKey, "cotejo", "cotejo-api")
		log.Info("bearer auth enabled")
	}

	service := validate.New(log, validatemetrics.New(), publisher, audit.NewPseudonymizer(cfg.AuditHashKey), cfg.OnlyNIF)
	handler := validatehandler.New(service, log)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:      log,
		Metrics:     httpMetrics,
		Validate:    handler,
		Validator:   validator,
		RateLimiter: limiter,
		Healthz:     healthz(redisClient),
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return worker.Run(gctx)
	})

	g.Go(func() error {
		log.Info("starting cotejo", "addr", cfg.Addr, "only_nif", cfg.OnlyNIF)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

// healthz reports process liveness, including the rate-limit store when Redis
// is configured.
func healthz(redisClient *platformredis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded","redis":"unreachable"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
