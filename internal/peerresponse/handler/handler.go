// Package handler provides HTTP handlers for peer response endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	peerResponseModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/service"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/response"
)

// ValidationFailedResponse is the 422 body of a rejected submission.
type ValidationFailedResponse struct {
	Error      response.ErrorBody                   `json:"error"`
	Validation *peerResponseModel.ValidationResult `json:"validation"`
}

// Handler handles HTTP requests for peer response endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new peer response handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ValidateResponse handles POST /peerResponses/validate request.
func (h *Handler) ValidateResponse(c *gin.Context) {
	var req peerResponseModel.ValidateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.service.ValidateResponse(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "error validating peer response")
		return
	}

	c.JSON(http.StatusOK, peerResponseModel.ValidationResponse{Validation: result})
}

// SubmitResponse handles POST /peerResponses/submit request.
func (h *Handler) SubmitResponse(c *gin.Context) {
	var req peerResponseModel.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.SubmitResponse(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "error submitting peer response")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"response": resp})
}

// ListVideoResponses handles GET /peerResponses/list request.
func (h *Handler) ListVideoResponses(c *gin.Context) {
	videoID := c.Query("videoId")
	if videoID == "" {
		response.BadRequest(c, "videoId parameter is required")
		return
	}

	responses, err := h.service.ListVideoResponses(c.Request.Context(), videoID)
	if err != nil {
		h.handleError(c, err, "error listing peer responses")
		return
	}

	c.JSON(http.StatusOK, peerResponseModel.VideoResponsesResponse{
		VideoID:   videoID,
		Responses: responses,
		Total:     len(responses),
	})
}

func (h *Handler) handleError(c *gin.Context, err error, msg string) {
	var ve *peerResponseModel.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, ValidationFailedResponse{
			Error: response.ErrorBody{
				Code:    response.CodeValidationFailed,
				Message: firstError(ve.Result),
			},
			Validation: ve.Result,
		})
	case errors.Is(err, assignmentModel.ErrAssignmentNotFound):
		response.NotFound(c, "Assignment not found")
	case errors.Is(err, peerResponseModel.ErrEmptyContent),
		errors.Is(err, peerResponseModel.ErrInvalidAssignmentID),
		errors.Is(err, peerResponseModel.ErrInvalidVideoID),
		errors.Is(err, peerResponseModel.ErrInvalidStudentID):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}

func firstError(r *peerResponseModel.ValidationResult) string {
	if len(r.Errors) == 0 {
		return peerResponseModel.ErrValidationFailed.Error()
	}
	return r.Errors[0]
}
