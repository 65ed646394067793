package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpAdapter "github.com/acmattos/bankslip/internal/adapter/http"
	"github.com/acmattos/bankslip/internal/adapter/http/handler"
	"github.com/acmattos/bankslip/internal/adapter/http/middleware"
	"github.com/acmattos/bankslip/internal/adapter/repository/memory"
	postgresRepo "github.com/acmattos/bankslip/internal/adapter/repository/postgres"
	redisRepo "github.com/acmattos/bankslip/internal/adapter/repository/redis"
	"github.com/acmattos/bankslip/internal/infrastructure/config"
	"github.com/acmattos/bankslip/internal/infrastructure/logger"
	"github.com/acmattos/bankslip/internal/infrastructure/metrics"
	"github.com/acmattos/bankslip/internal/infrastructure/postgres"
	"github.com/acmattos/bankslip/internal/infrastructure/redis"
	"github.com/acmattos/bankslip/internal/usecase"
)

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitMaxIdle         = 10 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	a, err := newApp(ctx, cfg, log, newRegistry())
	if err != nil {
		return err
	}
	defer a.Close()

	if a.rateLimiter != nil {
		go a.rateLimiter.RunCleanup(ctx, rateLimitCleanupInterval, rateLimitMaxIdle)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("store", cfg.StoreDriver).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}

// newRegistry returns a registry carrying the Go runtime and process collectors.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// app is the wired service: its HTTP handler and what must be closed on exit.
type app struct {
	handler     http.Handler
	rateLimiter *middleware.RateLimiter
	closers     []func()
}

// Close releases the connections opened by newApp, last opened first.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger, reg *prometheus.Registry) (*app, error) {
	a := &app{}

	repo, storePinger, err := a.openStore(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	dependencies := []handler.Dependency{{Name: "store", Pinger: storePinger}}

	var idempotencyStore usecase.IdempotencyStore
	if cfg.RedisEnabled {
		redisClient, err := redis.Connect(ctx, cfg.RedisURL, cfg.DatabaseConnectTimeout, log)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = redisClient.Close() })
		log.Info().Msg("connected to redis")

		store := redisRepo.NewIdempotencyStore(redisClient)
		idempotencyStore = store
		dependencies = append(dependencies, handler.Dependency{Name: "redis", Pinger: store})
	}

	m := metrics.New(reg)
	bankSlipUC := usecase.NewBankSlipUseCase(
		repo,
		postgresRepo.NewUUIDGenerator(),
		postgresRepo.NewULIDTicketGenerator(),
		log,
		usecase.WithMetrics(m),
	)

	if cfg.RateLimitEnabled() {
		a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	a.handler = httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BankSlipHandler:  handler.NewBankSlipHandler(bankSlipUC),
		HealthHandler:    handler.NewHealthHandler(dependencies...),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      a.rateLimiter,
		Metrics:          middleware.NewHTTPMetrics(reg),
		MetricsHandler:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Logger:           log,
	})

	return a, nil
}

// openStore opens the bank slip store selected by the configuration.
func (a *app) openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (usecase.BankSlipRepository, handler.Pinger, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn().Msg("using in-memory store; bank slips are lost on restart")
		store := memory.NewBankSlipStore()
		return store, store, nil
	}

	pool, err := postgres.Connect(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseConnectTimeout,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	log.Info().Msg("connected to postgres")

	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, log); err != nil {
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return postgresRepo.NewBankSlipRepository(pool), pool, nil
}
