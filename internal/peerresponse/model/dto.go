package model

import assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"

// ValidateResponseRequest asks whether a response could be submitted.
// Assignment is optional; when omitted the stored settings are used.
type ValidateResponseRequest struct {
	AssignmentID string                      `json:"assignmentId" binding:"required"`
	VideoID      string                      `json:"videoId" binding:"required"`
	StudentID    string                      `json:"studentId" binding:"required"`
	Content      string                      `json:"content"`
	Assignment   *assignmentModel.Assignment `json:"assignment"`
}

// SubmitResponseRequest submits a response for a video.
type SubmitResponseRequest struct {
	AssignmentID string `json:"assignmentId" binding:"required,max=255"`
	VideoID      string `json:"videoId" binding:"required,max=255"`
	StudentID    string `json:"studentId" binding:"required,max=255"`
	StudentName  string `json:"studentName" binding:"max=255"`
	Content      string `json:"content" binding:"required"`
}

// ValidationResponse wraps a validation result.
type ValidationResponse struct {
	Validation *ValidationResult `json:"validation"`
}

// VideoResponsesResponse lists the responses of a video.
type VideoResponsesResponse struct {
	VideoID   string         `json:"videoId"`
	Responses []PeerResponse `json:"responses"`
	Total     int            `json:"total"`
}
