package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/shelfmark/catalog-api/internal/api/handler"
	"github.com/shelfmark/catalog-api/internal/api/middleware"
	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
	"github.com/shelfmark/catalog-api/internal/core/service"
	"github.com/shelfmark/catalog-api/internal/infrastructure/db/memory"
	redisinfra "github.com/shelfmark/catalog-api/internal/infrastructure/db/redis"
	"github.com/shelfmark/catalog-api/internal/infrastructure/queue"
)

// Options carries everything NewRouter needs to assemble the service.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration

	// BcryptCost of 0 selects the bcrypt default.
	BcryptCost int

	// Redis is optional; nil disables login throttling.
	Redis            *redis.Client
	LoginMaxAttempts int
	LoginWindow      time.Duration

	// AuditWorkers <= 0 selects the dispatcher default.
	AuditWorkers int

	// SeedBooks preloads the catalog with fixture entries.
	SeedBooks bool

	// Metrics mounts the echoprometheus middleware and /metrics. Off in
	// tests: the collectors register globally and cannot be added twice.
	Metrics bool

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit dispatcher's workers run until ctx is cancelled.
func NewRouter(ctx context.Context, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if opts.Metrics {
		e.Use(echoprometheus.NewMiddleware("catalog"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Dependencies ---
	userStore := memory.NewUserStore()
	bookStore := memory.NewBookStore()
	if opts.SeedBooks {
		seedCatalog(ctx, bookStore)
	}

	var limiter ports.LoginLimiter
	if opts.Redis != nil {
		limiter = redisinfra.NewLoginLimiter(opts.Redis, opts.LoginMaxAttempts, opts.LoginWindow)
	}

	auditRecorder := service.NewAuditRecorder(opts.Logger)
	auditDispatcher := queue.NewDispatcher(opts.AuditWorkers, auditRecorder, opts.Logger)
	auditDispatcher.Start(ctx)

	hasher := service.NewBcryptHasher(opts.BcryptCost)
	tokens := service.NewJWTTokenService(opts.JWTSecret)
	authService := service.NewAuthService(userStore, hasher, tokens, limiter, opts.TokenTTL, opts.Logger)
	bookService := service.NewBookService(bookStore, auditDispatcher, opts.Logger)

	authHandler := handler.NewAuthHandler(authService, auditDispatcher)
	bookHandler := handler.NewBookHandler(bookService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Catalog routes: open reads, admin-gated writes ---
	e.GET("/books", bookHandler.List)
	e.GET("/books/:id", bookHandler.Get)
	e.POST("/books", bookHandler.Create, authRequired, adminOnly)
	e.PUT("/books/:id", bookHandler.Update, authRequired, adminOnly)
	e.DELETE("/books/:id", bookHandler.Delete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- API docs ---
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// seedCatalog loads the development fixtures.
func seedCatalog(ctx context.Context, store *memory.BookStore) {
	now := time.Now().UTC()
	fixtures := []*domain.Book{
		{Title: "1984", Author: "George Orwell", PublishedYear: 1949, CreatedAt: now, UpdatedAt: now},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", PublishedYear: 1937, CreatedAt: now, UpdatedAt: now},
	}
	for _, b := range fixtures {
		_, _ = store.Insert(ctx, b)
	}
}
