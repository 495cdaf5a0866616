package model

import "errors"

var (
	// ErrAssignmentNotFound indicates that the requested assignment does not exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrInvalidAssignmentID indicates an empty or overlong assignment id.
	ErrInvalidAssignmentID = errors.New("assignmentId must be between 1 and 255 characters")
)
