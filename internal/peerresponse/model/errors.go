package model

import (
	"errors"
	"strings"
)

var (
	// ErrValidationFailed indicates the response broke at least one assignment rule.
	ErrValidationFailed = errors.New("peer response validation failed")
	// ErrEmptyContent indicates the response has no text left after sanitizing.
	ErrEmptyContent = errors.New("content is required")
	// ErrInvalidAssignmentID indicates a missing assignment id.
	ErrInvalidAssignmentID = errors.New("assignmentId is required")
	// ErrInvalidVideoID indicates a missing video id.
	ErrInvalidVideoID = errors.New("videoId is required")
	// ErrInvalidStudentID indicates a missing student id.
	ErrInvalidStudentID = errors.New("studentId is required")
)

// ValidationError carries the failed result of a rejected submission.
type ValidationError struct {
	Result *ValidationResult
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Result.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
