package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. Everything is optional except
// the listen address default; integrations (Redis, Kafka, JWT auth) activate
// only when their settings are present.
type Server struct {
	Addr string

	// OnlyNIF rejects company identifiers (CIF) service-wide, for deployments
	// that only ever validate personal identifiers.
	OnlyNIF bool

	// JWTSigningKey enables Bearer-token auth on the validation endpoints
	// when non-empty.
	JWTSigningKey string

	// AuditHashKey keys the pseudonymization of identifiers in audit events.
	AuditHashKey string

	RateLimit RateLimitConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
}

// RateLimitConfig bounds per-client request rates.
type RateLimitConfig struct {
	RequestsPerMinute int
}

// RedisConfig configures the optional shared rate-limit store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional audit event sink.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("COTEJO_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	topic := os.Getenv("COTEJO_AUDIT_TOPIC")
	if topic == "" {
		topic = "cotejo.validations"
	}

	hashKey := os.Getenv("COTEJO_AUDIT_HASH_KEY")
	if hashKey == "" {
		// Use a default for development - should be overridden in production
		hashKey = "dev-hash-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		OnlyNIF:       os.Getenv("COTEJO_ONLY_NIF") == "true",
		JWTSigningKey: os.Getenv("COTEJO_JWT_SIGNING_KEY"),
		AuditHashKey:  hashKey,
		RateLimit: RateLimitConfig{
			RequestsPerMinute: envInt("COTEJO_RATE_LIMIT_PER_MINUTE", 600),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("COTEJO_REDIS_URL"),
			PoolSize:     envInt("COTEJO_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("COTEJO_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: envList("COTEJO_KAFKA_BROKERS"),
			Topic:   topic,
		},
	}
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envList(name string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
