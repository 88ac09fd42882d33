// Package app wires configuration, storage, services and the HTTP
// transport into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	accountrepo "github.com/kirakulakov/risk-management/internal/adapter/postgres/account"
	historyrepo "github.com/kirakulakov/risk-management/internal/adapter/postgres/history"
	lookuprepo "github.com/kirakulakov/risk-management/internal/adapter/postgres/lookup"
	riskrepo "github.com/kirakulakov/risk-management/internal/adapter/postgres/risk"

	"github.com/kirakulakov/risk-management/internal/adapter/postgres"
	"github.com/kirakulakov/risk-management/internal/auth"
	"github.com/kirakulakov/risk-management/internal/config"
	"github.com/kirakulakov/risk-management/internal/service/account"
	"github.com/kirakulakov/risk-management/internal/service/lookup"
	"github.com/kirakulakov/risk-management/internal/service/risk"
	"github.com/kirakulakov/risk-management/internal/transport/middleware"
	"github.com/kirakulakov/risk-management/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to PostgreSQL, applies migrations, wires services and handlers, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := runMigrations(ctx, cfg.Database.DSN, cfg.Database.MigrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations applied", slog.String("dir", cfg.Database.MigrationsDir))

	accounts := accountrepo.New(pool)
	risks := riskrepo.New(pool)
	history := historyrepo.New(pool)
	lookups := lookuprepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	accountSvc := account.NewService(logger, accounts, jwtManager, cfg.Auth)
	riskSvc := risk.NewService(logger, risks, history, lookups, accounts, txManager)
	lookupSvc := lookup.NewService(logger, lookups)

	router := rest.NewRouter(
		rest.NewAuthHandler(accountSvc, logger),
		rest.NewAccountHandler(accountSvc, logger),
		rest.NewRiskHandler(riskSvc, cfg.Pagination, logger),
		rest.NewLookupHandler(lookupSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	// Auth runs before Logger so access log lines carry the account id.
	chain := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		chain = append(chain, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}
	chain = append(chain, middleware.Auth(jwtManager), middleware.Logger(logger))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(chain...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
