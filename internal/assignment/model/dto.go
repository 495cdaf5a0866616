package model

import "time"

// UpsertAssignmentRequest creates or replaces an assignment's settings.
type UpsertAssignmentRequest struct {
	AssignmentID           string     `json:"assignmentId" binding:"required,max=255"`
	CourseID               string     `json:"courseId" binding:"max=255"`
	Title                  string     `json:"title" binding:"max=500"`
	GroupAssignment        bool       `json:"groupAssignment"`
	MaxGroupSize           *int       `json:"maxGroupSize"`
	EnablePeerResponses    bool       `json:"enablePeerResponses"`
	ResponseDueDate        *time.Time `json:"responseDueDate"`
	ResponseWordLimit      *int       `json:"responseWordLimit"`
	ResponseCharacterLimit *int       `json:"responseCharacterLimit"`
	MinResponsesRequired   *int       `json:"minResponsesRequired"`
	MaxResponsesPerVideo   *int       `json:"maxResponsesPerVideo"`
}

// ToAssignment converts the request into an entity without timestamps.
func (r *UpsertAssignmentRequest) ToAssignment() *Assignment {
	return &Assignment{
		AssignmentID:           r.AssignmentID,
		CourseID:               r.CourseID,
		Title:                  r.Title,
		GroupAssignment:        r.GroupAssignment,
		MaxGroupSize:           r.MaxGroupSize,
		EnablePeerResponses:    r.EnablePeerResponses,
		ResponseDueDate:        r.ResponseDueDate,
		ResponseWordLimit:      r.ResponseWordLimit,
		ResponseCharacterLimit: r.ResponseCharacterLimit,
		MinResponsesRequired:   r.MinResponsesRequired,
		MaxResponsesPerVideo:   r.MaxResponsesPerVideo,
	}
}
