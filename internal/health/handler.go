// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DannyWilsonCodeShop/classcast-platform/internal/database/database"
)

const checkTimeout = 5 * time.Second

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	redis  *redis.Client
	logger *zap.SugaredLogger
}

// New creates a new health handler instance. rdb may be nil when the cache is disabled.
func New(db *gorm.DB, rdb *redis.Client, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		redis:  rdb,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Check handles GET /health request.
// The cache is optional: its failure is reported but does not make the service unhealthy.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	resp := Response{Status: "ok", Database: "ok", Cache: "disabled"}

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("database health check failed", "error", err)
		resp.Status = "unhealthy"
		resp.Database = "unavailable"
	}

	if h.redis != nil {
		resp.Cache = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.logger.Warnw("cache health check failed", "error", err)
			resp.Cache = "unavailable"
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
