package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Ibrakam/PartyLand/internal"
	"github.com/Ibrakam/PartyLand/internal/backend"
	"github.com/Ibrakam/PartyLand/internal/cookie"
	"github.com/Ibrakam/PartyLand/internal/events"
	"github.com/Ibrakam/PartyLand/internal/handler"
	"github.com/Ibrakam/PartyLand/internal/middleware"
	"github.com/Ibrakam/PartyLand/internal/proxy"
	"github.com/Ibrakam/PartyLand/internal/repository"
	"github.com/Ibrakam/PartyLand/internal/router"
	"github.com/Ibrakam/PartyLand/internal/routes"
	"github.com/Ibrakam/PartyLand/internal/service"
	"github.com/Ibrakam/PartyLand/internal/telegram"
	"github.com/Ibrakam/PartyLand/internal/telemetry"
)

func run() error {
	ctx := context.Background()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	sentryDSN := cfg.Sentry.DSN
	if !cfg.Sentry.Enabled {
		sentryDSN = ""
	}
	cleanupSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:         sentryDSN,
		Environment: cfg.Sentry.Environment,
		SampleRate:  cfg.Sentry.SampleRate,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer cleanupSentry()

	// Cart storage: Postgres when configured, in-memory otherwise. The
	// in-memory store is fine for local work; carts die with the process.
	var store repository.Store
	if cfg.DatabaseURL != "" {
		logger.Info("connecting to database")
		sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		logger.Info("running database migrations")
		version, err := internal.RunMigrations(sqlDB)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("database schema ready", "version", version)

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to create connection pool: %w", err)
		}
		defer pool.Close()

		store = repository.NewPostgresStore(pool)
	} else {
		logger.Warn("DATABASE_URL not set, carts are stored in memory")
		store = repository.NewMemoryStore()
	}

	httpMetrics := middleware.NewMetrics("partyland")
	bizMetrics := telemetry.NewBusinessMetrics("partyland")

	// Shop backend client and services.
	shopClient := backend.New(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
		backend.WithAdminToken(cfg.Backend.AdminToken),
		backend.WithMetrics(bizMetrics),
	)

	var publisher service.OrderPublisher
	natsPub, err := events.Connect(cfg.Events.NATSURL, cfg.Events.Subject, logger)
	if err != nil {
		// The storefront can sell without a broker.
		logger.Warn("nats connection failed, order events disabled", "error", err)
	} else if natsPub != nil {
		defer natsPub.Close()
		publisher = natsPub
	}

	cartService := service.NewCartService(store, logger).WithMetrics(bizMetrics)
	catalogService := service.NewCatalogService(shopClient, logger)
	checkoutService := service.NewCheckoutService(cartService, shopClient, publisher, logger).WithMetrics(bizMetrics)
	adminService := service.NewAdminService(
		cfg.Admin.Username,
		cfg.Admin.PasswordHash,
		time.Duration(cfg.Admin.SessionTTL)*time.Minute,
		logger,
	)
	paymentsService := service.NewPaymentsService(shopClient, logger).WithMetrics(bizMetrics)

	tgValidator := telegram.NewValidator(
		cfg.Telegram.BotToken,
		time.Duration(cfg.Telegram.InitDataMaxAge)*time.Second,
	)
	if tgValidator.Enabled() {
		logger.Info("telegram init data validation enabled")
	}

	cookies := cookie.NewConfig(cfg.Env == "prod")

	backendProxy, err := proxy.New(cfg.Backend.BaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to build backend proxy: %w", err)
	}

	// Router with the global chain: recovery outermost, then request id,
	// logging, metrics, headers and body limits.
	r := router.New(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.WithRequestLogger(logger),
		middleware.AccessLog(logger),
		httpMetrics.Middleware,
		middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()),
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.RateLimit(middleware.DefaultRateLimiterConfig()),
	)

	deps := routes.Deps{
		Site:          handler.NewSiteHandler(cookies, logger),
		Catalog:       handler.NewCatalogHandler(catalogService, logger),
		Cart:          handler.NewCartHandler(cartService, catalogService, cookies, logger),
		Checkout:      handler.NewCheckoutHandler(checkoutService, tgValidator, logger),
		Admin:         handler.NewAdminHandler(adminService, paymentsService, cookies, logger),
		AdminService:  adminService,
		Proxy:         backendProxy,
		Metrics:       httpMetrics.Handler(),
		StrictLimiter: middleware.RateLimit(middleware.StrictRateLimiterConfig()),
	}
	routes.RegisterStorefront(r, deps)
	routes.RegisterAdmin(r, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			"port", cfg.Port,
			"env", cfg.Env,
			"backend", cfg.Backend.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
