// Package repository provides data access layer for assignment module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
)

// Repository defines the interface for assignment data access operations.
type Repository interface {
	// GetByID finds an assignment by assignment_id.
	GetByID(ctx context.Context, assignmentID string) (*assignmentModel.Assignment, error)

	// Upsert creates the assignment or replaces its settings.
	Upsert(ctx context.Context, a *assignmentModel.Assignment) (*assignmentModel.Assignment, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new assignment repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds an assignment by assignment_id.
func (r *repository) GetByID(ctx context.Context, assignmentID string) (*assignmentModel.Assignment, error) {
	var a assignmentModel.Assignment
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		First(&a).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, assignmentModel.ErrAssignmentNotFound
		}
		return nil, err
	}

	return &a, nil
}

// Upsert creates the assignment or replaces every setting except created_at.
func (r *repository) Upsert(ctx context.Context, a *assignmentModel.Assignment) (*assignmentModel.Assignment, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "assignment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"course_id", "title", "group_assignment", "max_group_size",
				"enable_peer_responses", "response_due_date", "response_word_limit",
				"response_character_limit", "min_responses_required",
				"max_responses_per_video", "updated_at",
			}),
		}).
		Create(a).Error
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, a.AssignmentID)
}
