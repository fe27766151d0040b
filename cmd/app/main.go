package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	api "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := postgres.Migrate(ctx, db, logger); err != nil {
		log.Fatalf("%v", err)
	}

	app := cmd.NewCompositionRoot(cfg, db, logger)

	if err := hydrate(ctx, app, cfg, logger); err != nil {
		log.Fatalf("hydration failed: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("%v", err)
	}
	defer jobManager.StopAll()

	if err := serve(ctx, app, cfg.HTTPPort, logger); err != nil {
		logger.Error("server error", "error", err)
		jobManager.StopAll()
		os.Exit(1)
	}
}

func hydrate(ctx context.Context, app cmd.CompositionRoot, cfg cmd.Config, logger *slog.Logger) error {
	handler := app.CreateHydrateCommandHandler()

	result, err := handler.Handle(ctx, commands.NewHydrateCommand(cfg.SeedCouriers))
	if err != nil {
		return err
	}

	logger.Info("state hydrated",
		"seeded_couriers", len(result.SeededCouriers),
		"removed_active", result.Reconcile.RemovedActive,
		"cleared_history", result.Reconcile.ClearedHistory,
		"removed_sentinel_couriers", result.Reconcile.RemovedSentinelCouriers,
		"day_filter", result.DayFilter.String(),
	)
	return nil
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func serve(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := api.NewEcho(app.CreateHTTPServer())

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", port)
		logger.Info("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
