// Package handler provides HTTP handlers for group endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	groupModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/group/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/group/service"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/response"
)

// Handler handles HTTP requests for group endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new group handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateGroup handles POST /groups/create request.
func (h *Handler) CreateGroup(c *gin.Context) {
	var req groupModel.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.CreateGroup(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "error creating group")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// JoinGroup handles POST /groups/join request.
func (h *Handler) JoinGroup(c *gin.Context) {
	var req groupModel.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.JoinGroup(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "error joining group")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitGroup handles POST /groups/submit request.
func (h *Handler) SubmitGroup(c *gin.Context) {
	var req groupModel.SubmitGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.SubmitGroup(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "error submitting group")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetGroup handles GET /groups/get request.
func (h *Handler) GetGroup(c *gin.Context) {
	var q groupModel.GetGroupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.GetGroup(c.Request.Context(), q.JoinCode)
	if err != nil {
		h.handleError(c, err, "error getting group")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListGroups handles GET /groups/list request.
func (h *Handler) ListGroups(c *gin.Context) {
	assignmentID := c.Query("assignmentId")
	if assignmentID == "" {
		response.BadRequest(c, "assignmentId parameter is required")
		return
	}

	groups, err := h.service.ListGroups(c.Request.Context(), assignmentID)
	if err != nil {
		h.handleError(c, err, "error listing groups")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignmentId": assignmentID,
		"groups":       groups,
	})
}

// GetMyGroup handles GET /groups/mine request.
func (h *Handler) GetMyGroup(c *gin.Context) {
	var q groupModel.MyGroupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.GetMyGroup(c.Request.Context(), q.AssignmentID, q.UserID)
	if err != nil {
		h.handleError(c, err, "error getting user group")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, assignmentModel.ErrAssignmentNotFound):
		response.NotFound(c, "Assignment not found")
	case errors.Is(err, groupModel.ErrInvalidJoinCode):
		response.NotFound(c, "Invalid join code")
	case errors.Is(err, groupModel.ErrGroupNotFound):
		response.NotFound(c, "Group not found")
	case errors.Is(err, groupModel.ErrNotGroupAssignment):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidOperation, "This is not a group assignment")
	case errors.Is(err, groupModel.ErrAlreadyInGroup):
		response.Conflict(c, "You are already in a group for this assignment")
	case errors.Is(err, groupModel.ErrAlreadyMember):
		response.Conflict(c, "You are already in this group")
	case errors.Is(err, groupModel.ErrGroupFull):
		response.Conflict(c, "This group is full")
	case errors.Is(err, groupModel.ErrGroupSubmitted):
		response.Conflict(c, "This group has already submitted and cannot accept new members")
	case errors.Is(err, groupModel.ErrInAnotherGroup):
		response.Conflict(c, "You are already in another group for this assignment")
	case errors.Is(err, groupModel.ErrNotMember):
		response.Conflict(c, "Only group members can submit the group")
	case errors.Is(err, groupModel.ErrInvalidAssignmentID),
		errors.Is(err, groupModel.ErrInvalidUserID),
		errors.Is(err, groupModel.ErrInvalidGroupID):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}
