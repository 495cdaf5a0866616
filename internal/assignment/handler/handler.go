// Package handler provides HTTP handlers for assignment endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/service"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/response"
)

// Handler handles HTTP requests for assignment endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new assignment handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// UpsertAssignment handles POST /assignments/upsert request.
func (h *Handler) UpsertAssignment(c *gin.Context) {
	var req assignmentModel.UpsertAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	a, err := h.service.UpsertAssignment(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "error saving assignment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": a})
}

// GetAssignment handles GET /assignments/get request.
func (h *Handler) GetAssignment(c *gin.Context) {
	assignmentID := c.Query("assignmentId")
	if assignmentID == "" {
		response.BadRequest(c, "assignmentId parameter is required")
		return
	}

	a, err := h.service.GetAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		h.handleError(c, err, "error getting assignment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) handleError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, assignmentModel.ErrAssignmentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, assignmentModel.ErrInvalidAssignmentID):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
