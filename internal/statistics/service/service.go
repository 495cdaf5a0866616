// Package service provides business logic layer for statistics module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/statistics/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/statistics/repository"
)

// ErrInvalidAssignmentID indicates a missing assignment id.
var ErrInvalidAssignmentID = errors.New("assignmentId parameter is required")

// AssignmentReader loads assignment settings.
type AssignmentReader interface {
	GetByID(ctx context.Context, assignmentID string) (*assignmentModel.Assignment, error)
}

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetGroupStatistics summarizes the groups of an assignment.
	GetGroupStatistics(ctx context.Context, assignmentID string) (*model.GroupStatisticsResponse, error)

	// GetResponseStatistics reports how many responses each student wrote
	// and whether that meets the assignment minimum.
	GetResponseStatistics(ctx context.Context, assignmentID string) (*model.ResponseStatisticsResponse, error)
}

type service struct {
	repo        repository.Repository
	assignments AssignmentReader
	logger      *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, assignments AssignmentReader, logger *zap.SugaredLogger) Service {
	return &service{
		repo:        repo,
		assignments: assignments,
		logger:      logger,
	}
}

// GetGroupStatistics summarizes the groups of an assignment.
func (s *service) GetGroupStatistics(ctx context.Context, assignmentID string) (*model.GroupStatisticsResponse, error) {
	s.logger.Debugw("GetGroupStatistics called", "assignment_id", assignmentID)

	if assignmentID == "" {
		return nil, ErrInvalidAssignmentID
	}
	if _, err := s.assignments.GetByID(ctx, assignmentID); err != nil {
		return nil, err
	}

	stats, err := s.repo.GetGroupStatistics(ctx, assignmentID)
	if err != nil {
		s.logger.Errorw("GetGroupStatistics failed", "error", err)
		return nil, err
	}

	return &model.GroupStatisticsResponse{
		AssignmentID: assignmentID,
		Statistics:   *stats,
	}, nil
}

// GetResponseStatistics reports per-student response counts for an assignment.
// Without a minimum every student counts as meeting it.
func (s *service) GetResponseStatistics(ctx context.Context, assignmentID string) (*model.ResponseStatisticsResponse, error) {
	s.logger.Debugw("GetResponseStatistics called", "assignment_id", assignmentID)

	if assignmentID == "" {
		return nil, ErrInvalidAssignmentID
	}
	a, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	students, err := s.repo.GetResponseCounts(ctx, assignmentID)
	if err != nil {
		s.logger.Errorw("GetResponseStatistics failed", "error", err)
		return nil, err
	}
	if students == nil {
		students = []model.StudentResponseCount{}
	}

	resp := &model.ResponseStatisticsResponse{
		AssignmentID: assignmentID,
		Students:     students,
		Total:        len(students),
	}
	required, hasMinimum := assignmentModel.Limit(a.MinResponsesRequired)
	if hasMinimum {
		resp.MinResponsesRequired = &required
	}
	for i := range students {
		resp.TotalResponses += students[i].ResponseCount
		students[i].MeetsMinimum = !hasMinimum || students[i].ResponseCount >= required
	}

	return resp, nil
}
