package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
)

// CacheKey returns the Redis key of an assignment's cached configuration.
func CacheKey(assignmentID string) string {
	return fmt.Sprintf("assignment:%s:config", assignmentID)
}

type cachedRepository struct {
	next   Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

// NewCached puts a read-through Redis cache in front of next. With a nil
// client it returns next unchanged. Cache failures are logged and the
// database answers instead.
func NewCached(next Repository, rdb *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) Repository {
	if rdb == nil {
		return next
	}
	return &cachedRepository{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

// GetByID serves from the cache, falling back to the database on miss or error.
func (r *cachedRepository) GetByID(ctx context.Context, assignmentID string) (*assignmentModel.Assignment, error) {
	key := CacheKey(assignmentID)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var a assignmentModel.Assignment
		if jsonErr := json.Unmarshal(raw, &a); jsonErr == nil {
			return &a, nil
		}
		r.logger.Warnw("discarding unreadable cached assignment", "key", key)
	case !errors.Is(err, redis.Nil):
		r.logger.Warnw("assignment cache read failed", "key", key, "error", err)
	}

	a, err := r.next.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(a); jsonErr == nil {
		if setErr := r.rdb.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			r.logger.Warnw("assignment cache write failed", "key", key, "error", setErr)
		}
	}

	return a, nil
}

// Upsert writes through to the database and drops the cached entry.
func (r *cachedRepository) Upsert(ctx context.Context, a *assignmentModel.Assignment) (*assignmentModel.Assignment, error) {
	saved, err := r.next.Upsert(ctx, a)
	if err != nil {
		return nil, err
	}

	key := CacheKey(saved.AssignmentID)
	if delErr := r.rdb.Del(ctx, key).Err(); delErr != nil {
		r.logger.Warnw("assignment cache invalidation failed", "key", key, "error", delErr)
	}

	return saved, nil
}
