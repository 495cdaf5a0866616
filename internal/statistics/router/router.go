// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DannyWilsonCodeShop/classcast-platform/internal/statistics/handler"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/statistics/repository"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, assignments service.AssignmentReader, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, assignments, logger)
	h := handler.New(svc, logger)

	r.GET("/statistics/groups", h.GetGroupStatistics)
	r.GET("/statistics/peerResponses", h.GetResponseStatistics)
}
