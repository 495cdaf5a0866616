// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/response"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetGroupStatistics handles GET /statistics/groups request.
func (h *Handler) GetGroupStatistics(c *gin.Context) {
	resp, err := h.service.GetGroupStatistics(c.Request.Context(), c.Query("assignmentId"))
	if err != nil {
		h.handleError(c, err, "error getting group statistics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetResponseStatistics handles GET /statistics/peerResponses request.
func (h *Handler) GetResponseStatistics(c *gin.Context) {
	resp, err := h.service.GetResponseStatistics(c.Request.Context(), c.Query("assignmentId"))
	if err != nil {
		h.handleError(c, err, "error getting peer response statistics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidAssignmentID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, assignmentModel.ErrAssignmentNotFound):
		response.NotFound(c, "Assignment not found")
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
