package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	ingestHttp "account-analytics-service/internal/ingest/adapters/http/fiber"
	ingestRepoPg "account-analytics-service/internal/ingest/adapters/postgres"
	ingestUsecase "account-analytics-service/internal/ingest/core/usecase"

	metricsHttp "account-analytics-service/internal/metrics/adapters/http/fiber"
	metricsObserver "account-analytics-service/internal/metrics/adapters/observer"
	metricsRepoPg "account-analytics-service/internal/metrics/adapters/postgres"
	metricsCache "account-analytics-service/internal/metrics/adapters/redis"
	metricsRest "account-analytics-service/internal/metrics/adapters/rest"
	"account-analytics-service/internal/metrics/core/ports"
	metricsUsecase "account-analytics-service/internal/metrics/core/usecase"
	"account-analytics-service/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "account-analytics-service/docs"
)

// @title Account Analytics Service API
// @version 1.0
// @description Cross-account social metrics aggregation and daily metric ingest.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// DB connection
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("failed to open postgres", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping postgres", zap.Error(err))
	}

	// Adapter-level DB wrappers
	ingestDB := ingestRepoPg.NewSQLDB(db)
	metricsDB := metricsRepoPg.NewSQLDB(db)

	// Repositories
	pointRepository := ingestRepoPg.NewPointRepository(ingestDB)
	accountRepository := metricsRepoPg.NewAccountRepository(metricsDB)

	// Metrics source
	fetcher, closeFetcher, err := newFetcher(cfg, metricsDB, log)
	if err != nil {
		log.Fatal("failed to build metrics fetcher", zap.Error(err))
	}
	defer closeFetcher()

	// Observability
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observer := metricsObserver.Multi{
		metricsObserver.NewZapObserver(log),
		metricsObserver.NewPrometheusObserver(registry),
	}

	// Usecases
	aggregator := metricsUsecase.NewAggregator(fetcher,
		metricsUsecase.WithObserver(observer),
		metricsUsecase.WithConcurrency(cfg.Fetcher.Concurrency),
	)
	storePointUC := ingestUsecase.NewStorePointUseCase(pointRepository)
	getMetricsUC := metricsUsecase.NewGetMetricsUseCase(accountRepository, aggregator)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})

	// ingest endpoints
	pointHandler := ingestHttp.NewPointHandler(storePointUC)
	app.Post("/accounts/:id/metrics", pointHandler.StorePoint)
	app.Post("/accounts/:id/metrics/bulk", pointHandler.BulkStorePoints)

	// analytics endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(getMetricsUC)
	app.Get("/analytics/aggregate", metricsHandler.Aggregate)
	app.Get("/analytics/categories", metricsHandler.Categories)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Error("fiber stopped", zap.Error(err))
		}
	}()

	log.Info("server started",
		zap.String("addr", addr),
		zap.String("fetcher", cfg.Fetcher.Source),
		zap.String("env", cfg.App.Environment),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", zap.Error(err))
	}

	log.Info("server exiting")
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

// newFetcher picks the per-account metrics source and wraps it with the
// redis cache when one is configured.
func newFetcher(cfg *config.Config, db metricsRepoPg.DB, log *zap.Logger) (ports.MetricsFetcherPort, func(), error) {
	var fetcher ports.MetricsFetcherPort
	switch cfg.Fetcher.Source {
	case config.SourcePostgres:
		fetcher = metricsRepoPg.NewMetricsRepository(db)
	default:
		f, err := metricsRest.NewFetcher(metricsRest.Settings{
			BaseURL:     cfg.Backend.URL,
			Token:       cfg.Backend.Token,
			Timeout:     cfg.Backend.Timeout,
			MaxFailures: cfg.Backend.FailureThreshold,
			OpenTimeout: cfg.Backend.OpenTimeout,
		}, nil, log)
		if err != nil {
			return nil, nil, err
		}
		fetcher = f
	}

	if cfg.Redis.URL == "" || cfg.Fetcher.CacheTTL <= 0 {
		return fetcher, func() {}, nil
	}

	cache, err := metricsCache.NewRedisCache(cfg.Redis.URL, log)
	if err != nil {
		// Analytics still work without the cache.
		log.Warn("redis unavailable, metrics cache disabled", zap.Error(err))
		return fetcher, func() {}, nil
	}

	closeCache := func() {
		if err := cache.Close(); err != nil {
			log.Warn("failed to close redis", zap.Error(err))
		}
	}
	return metricsCache.NewCachingFetcher(fetcher, cache, cfg.Fetcher.CacheTTL, log), closeCache, nil
}
