// Package router provides group module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DannyWilsonCodeShop/classcast-platform/internal/group/handler"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/group/repository"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/group/service"
)

// RegisterRoutes registers group module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, assignments service.AssignmentReader, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, assignments, db, logger)
	h := handler.New(svc, logger)

	groups := r.Group("/groups")
	groups.POST("/create", h.CreateGroup)
	groups.POST("/join", h.JoinGroup)
	groups.POST("/submit", h.SubmitGroup)
	groups.GET("/get", h.GetGroup)
	groups.GET("/list", h.ListGroups)
	groups.GET("/mine", h.GetMyGroup)
}
