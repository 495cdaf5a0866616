// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	assignmentRepository "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/repository"
	assignmentRouter "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/router"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/cache"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/config"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/database/database"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/database/migrate"
	groupRouter "github.com/DannyWilsonCodeShop/classcast-platform/internal/group/router"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/health"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/middleware"
	peerResponseRouter "github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/router"
	statisticsRouter "github.com/DannyWilsonCodeShop/classcast-platform/internal/statistics/router"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/validator"
	"github.com/DannyWilsonCodeShop/classcast-platform/pkg/logger"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Errorw("server stopped with error", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, log); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	rdb, err := cache.New(ctx, cfg.Redis, log)
	if err != nil {
		// the cache is optional, so the service starts without it
		log.Warnw("assignment cache disabled", "error", err)
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	validator.Setup()
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))

	assignments := assignmentRepository.NewCached(assignmentRepository.New(db), rdb, cfg.Redis.CacheTTL, log)

	assignmentRouter.RegisterRoutes(r, assignments, log)
	groupRouter.RegisterRoutes(r, db, assignments, log)
	peerResponseRouter.RegisterRoutes(r, db, assignments, log)
	statisticsRouter.RegisterRoutes(r, db, assignments, log)
	r.GET("/health", health.New(db, rdb, log).Check)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", srv.Addr, "gin_mode", cfg.GinMode, "cache_enabled", rdb != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("shutdown complete")
	return nil
}
