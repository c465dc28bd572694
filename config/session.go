package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionStoreKind selects the backing store for server-side sessions.
type SessionStoreKind string

const (
	// SessionStoreMemory keeps sessions in process memory with a
	// background expiry sweep. Sessions are lost on restart.
	SessionStoreMemory SessionStoreKind = "memory"
	// SessionStoreRedis keeps sessions in Redis with per-key TTL.
	SessionStoreRedis SessionStoreKind = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (s *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "memory", "redis":
		*s = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid SESSION_STORE: %q (valid options: memory, redis)", v)
	}
}

// RedisConfig contains Redis connection settings for the session store.
type RedisConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// Addr returns the host:port address for the Redis client.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SessionConfig groups session storage configuration.
type SessionConfig struct {
	// Store selects the session backend.
	Store SessionStoreKind `env:"SESSION_STORE" envDefault:"memory"`

	// TTL is the absolute session lifetime. Sessions are not renewed by
	// activity; after TTL the browser must re-authenticate.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// SweepInterval is how often the memory store evicts expired sessions.
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`

	// Redis connection settings (used when Store=redis).
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
	if s.SweepInterval <= 0 {
		s.SweepInterval = 10 * time.Minute
	}
}
