package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/vista/internal/adapters/http/api"
	"github.com/okian/vista/internal/adapters/repository"
	app "github.com/okian/vista/internal/app"
	"github.com/okian/vista/internal/config"
	"github.com/okian/vista/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("fatal: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log level, keeping info",
			logger.String("logLevel", cfg.LogLevel))
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	opts := []app.Option{
		app.WithStore(store),
		app.WithLogger(logger.Named("service")),
		app.WithRecentVotesLimit(cfg.RecentVotesLimit),
	}
	if !cfg.Seed {
		opts = append(opts, app.WithSeedCatalog(nil))
	}
	svc := app.New(opts...)

	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	defer svc.Stop()

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewServer(svc, api.WithMaxRecentVotesLimit(cfg.MaxRecentVotesLimit)).Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Get().Info(ctx, "http server listening",
			logger.String("addr", cfg.Addr),
			logger.String("backend", cfg.StoreBackend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Get().Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// newStore builds the vote store selected by configuration.
func newStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		return repository.NewSQLiteStore(ctx, cfg.SQLitePath)
	case config.BackendMemory:
		return repository.NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}
