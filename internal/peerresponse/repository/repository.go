// Package repository provides data access layer for peerresponse module.
package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	peerResponseModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/model"
)

// Repository defines the interface for peer response data access operations.
type Repository interface {
	// Create stores a response.
	Create(ctx context.Context, resp *peerResponseModel.PeerResponse) error

	// CountByStudent counts a student's responses within an assignment.
	CountByStudent(ctx context.Context, assignmentID, studentID string) (int64, error)

	// CountByVideo counts responses to a video.
	CountByVideo(ctx context.Context, videoID string) (int64, error)

	// LockVideo serializes writers for one video until the surrounding
	// transaction ends. It must run inside a transaction.
	LockVideo(ctx context.Context, videoID string) error

	// ListByVideo returns responses to a video, oldest first.
	ListByVideo(ctx context.Context, videoID string) ([]peerResponseModel.PeerResponse, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new peer response repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// isMissingTableError reports whether the backing table does not exist yet.
func isMissingTableError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such table") || strings.Contains(msg, "SQLSTATE 42P01")
}

// Create stores a response.
func (r *repository) Create(ctx context.Context, resp *peerResponseModel.PeerResponse) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

// CountByStudent counts a student's responses within an assignment.
// A missing table counts as zero.
func (r *repository) CountByStudent(ctx context.Context, assignmentID, studentID string) (int64, error) {
	return r.count(ctx, "assignment_id = ? AND student_id = ?", assignmentID, studentID)
}

// CountByVideo counts responses to a video. A missing table counts as zero.
func (r *repository) CountByVideo(ctx context.Context, videoID string) (int64, error) {
	return r.count(ctx, "video_id = ?", videoID)
}

func (r *repository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&peerResponseModel.PeerResponse{}).
		Where(query, args...).
		Count(&count).Error
	if err != nil {
		if isMissingTableError(err) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// LockVideo takes a transaction-scoped advisory lock keyed by the video on
// PostgreSQL. SQLite already admits a single writer, so it is a no-op there.
func (r *repository) LockVideo(ctx context.Context, videoID string) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", videoID).Error
}

// ListByVideo returns responses to a video, oldest first.
func (r *repository) ListByVideo(ctx context.Context, videoID string) ([]peerResponseModel.PeerResponse, error) {
	var responses []peerResponseModel.PeerResponse
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at ASC, response_id ASC").
		Find(&responses).Error
	if err != nil {
		if isMissingTableError(err) {
			return []peerResponseModel.PeerResponse{}, nil
		}
		return nil, err
	}

	if responses == nil {
		return []peerResponseModel.PeerResponse{}, nil
	}
	return responses, nil
}
