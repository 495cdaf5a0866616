// Package cache bootstraps the Redis client behind the assignment configuration cache.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/DannyWilsonCodeShop/classcast-platform/internal/config"
	"github.com/DannyWilsonCodeShop/classcast-platform/pkg/retry"
)

// New connects to Redis with the default cache retry policy.
// It returns a nil client when caching is disabled.
func New(ctx context.Context, cfg appConfig.RedisConfig, logger *zap.SugaredLogger) (*redis.Client, error) {
	return NewWithRetry(ctx, cfg, retry.RedisConfig(), logger)
}

// NewWithRetry parses the URL, then pings until the server answers or
// retryCfg is exhausted.
func NewWithRetry(
	ctx context.Context,
	cfg appConfig.RedisConfig,
	retryCfg retry.Config,
	logger *zap.SugaredLogger,
) (*redis.Client, error) {
	if !cfg.Enabled() {
		logger.Infow("redis cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	err = retry.Do(ctx, retryCfg, func() error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Infow("redis connected", "addr", opt.Addr, "db", opt.DB)
	return rdb, nil
}
