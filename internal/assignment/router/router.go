// Package router provides assignment module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/handler"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/repository"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/service"
)

// RegisterRoutes registers assignment module routes. repo is shared with the
// modules that read assignment settings, so it is built by the caller.
func RegisterRoutes(r *gin.Engine, repo repository.Repository, logger *zap.SugaredLogger) {
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/assignments/upsert", h.UpsertAssignment)
	r.GET("/assignments/get", h.GetAssignment)
}
