// Package model provides domain models and DTOs for assignment module.
package model

import "time"

// DefaultMaxGroupSize applies when an assignment sets no usable group size.
const DefaultMaxGroupSize = 4

// Assignment holds the group and peer-response settings of an assignment.
// Matches the assignments table schema.
type Assignment struct {
	AssignmentID           string     `gorm:"primaryKey;column:assignment_id;type:varchar(255)" json:"assignmentId"`
	CourseID               string     `gorm:"column:course_id;type:varchar(255);not null;index" json:"courseId"`
	Title                  string     `gorm:"column:title;type:varchar(500);not null" json:"title"`
	GroupAssignment        bool       `gorm:"column:group_assignment;not null" json:"groupAssignment"`
	MaxGroupSize           *int       `gorm:"column:max_group_size" json:"maxGroupSize,omitempty"`
	EnablePeerResponses    bool       `gorm:"column:enable_peer_responses;not null" json:"enablePeerResponses"`
	ResponseDueDate        *time.Time `gorm:"column:response_due_date" json:"responseDueDate,omitempty"`
	ResponseWordLimit      *int       `gorm:"column:response_word_limit" json:"responseWordLimit,omitempty"`
	ResponseCharacterLimit *int       `gorm:"column:response_character_limit" json:"responseCharacterLimit,omitempty"`
	MinResponsesRequired   *int       `gorm:"column:min_responses_required" json:"minResponsesRequired,omitempty"`
	MaxResponsesPerVideo   *int       `gorm:"column:max_responses_per_video" json:"maxResponsesPerVideo,omitempty"`
	CreatedAt              time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt              time.Time  `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Assignment) TableName() string {
	return "assignments"
}

// Limit returns the value of an optional numeric setting and whether it is set.
// Null and non-positive values count as unset.
func Limit(v *int) (int, bool) {
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

// GroupSize returns the capacity of groups formed for this assignment.
func (a *Assignment) GroupSize() int {
	if size, ok := Limit(a.MaxGroupSize); ok {
		return size
	}
	return DefaultMaxGroupSize
}

// DueDatePassed reports whether now is strictly after the response due date.
func (a *Assignment) DueDatePassed(now time.Time) bool {
	return a.ResponseDueDate != nil && now.After(*a.ResponseDueDate)
}
