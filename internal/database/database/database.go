// Package database opens and checks the PostgreSQL connection.
package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/DannyWilsonCodeShop/classcast-platform/internal/database/config"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/database/pool"
	"github.com/DannyWilsonCodeShop/classcast-platform/pkg/retry"
)

// New creates a database connection configured from environment variables.
func New(ctx context.Context, logger *zap.SugaredLogger) (*gorm.DB, error) {
	return NewWithConfig(ctx, config.LoadConfigFromEnv(), config.LoadRetryConfigFromEnv(),
		config.LoadPoolConfigFromEnv(), logger)
}

// NewWithConfig connects with retry, then applies the pool limits.
func NewWithConfig(
	ctx context.Context,
	cfg config.Config,
	retryCfg retry.Config,
	poolCfg pool.Config,
	logger *zap.SugaredLogger,
) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()

	dsn := config.BuildDSN(cfg)
	attempt := 0
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		attempt++
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Warn),
		})
		if openErr != nil {
			logger.Warnw("database connection attempt failed",
				"attempt", attempt, "host", cfg.Host, "error", config.SanitizeError(openErr, cfg))
		}
		return db, openErr
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	logger.Infow("database connected", "host", cfg.Host, "database", cfg.DBName, "attempts", attempt)
	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
