// Package model provides domain models and DTOs for peerresponse module.
package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// PeerResponse is a student's written reaction to a classmate's video.
// Matches the peer_responses table schema.
type PeerResponse struct {
	ResponseID     string    `gorm:"primaryKey;column:response_id;type:varchar(36)" json:"responseId"`
	AssignmentID   string    `gorm:"column:assignment_id;type:varchar(255);not null;index:idx_peer_responses_assignment_student,priority:1" json:"assignmentId"`
	VideoID        string    `gorm:"column:video_id;type:varchar(255);not null;index:idx_peer_responses_video_id" json:"videoId"`
	StudentID      string    `gorm:"column:student_id;type:varchar(255);not null;index:idx_peer_responses_assignment_student,priority:2" json:"studentId"`
	StudentName    string    `gorm:"column:student_name;type:varchar(255);not null" json:"studentName"`
	Content        string    `gorm:"column:content;type:text;not null" json:"content"`
	WordCount      int       `gorm:"column:word_count;not null" json:"wordCount"`
	CharacterCount int       `gorm:"column:character_count;not null" json:"characterCount"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (PeerResponse) TableName() string {
	return "peer_responses"
}

// CountWords counts whitespace-separated words of the trimmed content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CountCharacters counts Unicode code points.
func CountCharacters(content string) int {
	return utf8.RuneCountInString(content)
}

// ValidationResult tells whether a response may be submitted and why not.
// Errors block submission; warnings are advisory.
type ValidationResult struct {
	CanSubmit bool     `json:"canSubmit"`
	Errors    []string `json:"errors"`
	Warnings  []string `json:"warnings"`
}

// NewValidationResult returns a passing result with empty lists.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{CanSubmit: true, Errors: []string{}, Warnings: []string{}}
}

// AddError records a blocking problem.
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.CanSubmit = false
}

// AddWarning records an advisory note.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
