// Command server runs the catalog API.
//
//	@title			Shelfmark Catalog API
//	@version		1.0
//	@description	Book catalog with token-gated admin writes.
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shelfmark/catalog-api/internal/api"
	"github.com/shelfmark/catalog-api/internal/infrastructure/config"
	redisinfra "github.com/shelfmark/catalog-api/internal/infrastructure/db/redis"
	"github.com/shelfmark/catalog-api/pkg/logger"

	_ "github.com/shelfmark/catalog-api/docs"
)

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The signing secret is the single security-critical invariant of the
	// whole service. Refuse to start without it; never log it.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := api.Options{
		JWTSecret:        cfg.JWTSecret,
		TokenTTL:         cfg.TokenTTL,
		BcryptCost:       cfg.BcryptCost,
		LoginMaxAttempts: cfg.Login.MaxAttempts,
		LoginWindow:      cfg.Login.AttemptWindow,
		SeedBooks:        cfg.Env == "development",
		Metrics:          true,
		Logger:           log,
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		opts.Redis = rdb
	} else {
		log.Warn().Msg("redis not configured; login throttling disabled")
	}

	e := api.NewRouter(ctx, opts)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
