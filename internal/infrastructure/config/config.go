package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=15m"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	// BcryptCost of 0 selects the library default.
	BcryptCost int `env:"BCRYPT_COST, default=0"`

	Redis RedisConfig
	Login LoginConfig
}

type RedisConfig struct {
	// Addr empty disables Redis entirely (no login throttling, readiness
	// degrades to process-only).
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type LoginConfig struct {
	MaxAttempts   int           `env:"LOGIN_MAX_ATTEMPTS,   default=10"`
	AttemptWindow time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
