// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	groupModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/group/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetGroupStatistics aggregates the groups of an assignment.
	GetGroupStatistics(ctx context.Context, assignmentID string) (*model.GroupStatistics, error)

	// GetResponseCounts returns per-student response counts, highest first.
	GetResponseCounts(ctx context.Context, assignmentID string) ([]model.StudentResponseCount, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetGroupStatistics aggregates the groups of an assignment.
func (r *repository) GetGroupStatistics(ctx context.Context, assignmentID string) (*model.GroupStatistics, error) {
	r.logger.Debugw("GetGroupStatistics called", "assignment_id", assignmentID)

	var result struct {
		TotalGroups     int64 `gorm:"column:total_groups"`
		FormingGroups   int64 `gorm:"column:forming_groups"`
		ReadyGroups     int64 `gorm:"column:ready_groups"`
		SubmittedGroups int64 `gorm:"column:submitted_groups"`
		TotalMembers    int64 `gorm:"column:total_members"`
		OpenSeats       int64 `gorm:"column:open_seats"`
	}

	err := r.db.WithContext(ctx).
		Table("groups").
		Select(`
			COUNT(*) as total_groups,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as forming_groups,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as ready_groups,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as submitted_groups,
			COALESCE(SUM(current_size), 0) as total_members,
			COALESCE(SUM(CASE WHEN status <> ? THEN max_size - current_size ELSE 0 END), 0) as open_seats
		`, groupModel.StatusForming, groupModel.StatusReady, groupModel.StatusSubmitted, groupModel.StatusSubmitted).
		Where("assignment_id = ?", assignmentID).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetGroupStatistics database error", "error", err)
		return nil, err
	}

	stats := &model.GroupStatistics{
		TotalGroups:     int(result.TotalGroups),
		FormingGroups:   int(result.FormingGroups),
		ReadyGroups:     int(result.ReadyGroups),
		SubmittedGroups: int(result.SubmittedGroups),
		TotalMembers:    int(result.TotalMembers),
		OpenSeats:       int(result.OpenSeats),
	}
	if stats.TotalGroups > 0 {
		stats.AverageGroupSize = float64(stats.TotalMembers) / float64(stats.TotalGroups)
	}

	r.logger.Debugw("GetGroupStatistics completed", "total_groups", stats.TotalGroups)
	return stats, nil
}

// GetResponseCounts returns per-student response counts, highest first.
func (r *repository) GetResponseCounts(ctx context.Context, assignmentID string) ([]model.StudentResponseCount, error) {
	r.logger.Debugw("GetResponseCounts called", "assignment_id", assignmentID)

	var counts []model.StudentResponseCount

	err := r.db.WithContext(ctx).
		Table("peer_responses").
		Select(`
			student_id,
			MAX(student_name) as student_name,
			COUNT(*) as response_count
		`).
		Where("assignment_id = ?", assignmentID).
		Group("student_id").
		Order("response_count DESC, student_id ASC").
		Scan(&counts).Error

	if err != nil {
		r.logger.Errorw("GetResponseCounts database error", "error", err)
		return nil, err
	}

	if counts == nil {
		counts = []model.StudentResponseCount{}
	}

	r.logger.Debugw("GetResponseCounts completed", "count", len(counts))
	return counts, nil
}
