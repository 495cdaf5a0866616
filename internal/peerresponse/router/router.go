// Package router provides peer response module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/handler"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/repository"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/service"
)

// RegisterRoutes registers peer response module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, assignments service.AssignmentReader, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, assignments, db, logger)
	h := handler.New(svc, logger)

	responses := r.Group("/peerResponses")
	responses.POST("/validate", h.ValidateResponse)
	responses.POST("/submit", h.SubmitResponse)
	responses.GET("/list", h.ListVideoResponses)
}
