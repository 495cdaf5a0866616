// Package service provides business logic layer for assignment module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/repository"
	"github.com/DannyWilsonCodeShop/classcast-platform/pkg/sanitize"
)

// Service defines the interface for assignment business logic operations.
type Service interface {
	// UpsertAssignment creates or replaces an assignment's settings.
	UpsertAssignment(ctx context.Context, req *assignmentModel.UpsertAssignmentRequest) (*assignmentModel.Assignment, error)

	// GetAssignment returns an assignment's settings.
	GetAssignment(ctx context.Context, assignmentID string) (*assignmentModel.Assignment, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new assignment service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// UpsertAssignment creates or replaces an assignment's settings.
func (s *service) UpsertAssignment(
	ctx context.Context,
	req *assignmentModel.UpsertAssignmentRequest,
) (*assignmentModel.Assignment, error) {
	if err := validateID(req.AssignmentID); err != nil {
		return nil, err
	}

	a := req.ToAssignment()
	a.Title = sanitize.Text(a.Title)

	saved, err := s.repo.Upsert(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("upsert assignment: %w", err)
	}

	s.logger.Infow("assignment saved",
		"assignment_id", saved.AssignmentID,
		"group_assignment", saved.GroupAssignment,
		"enable_peer_responses", saved.EnablePeerResponses,
	)
	return saved, nil
}

// GetAssignment returns an assignment's settings.
func (s *service) GetAssignment(ctx context.Context, assignmentID string) (*assignmentModel.Assignment, error) {
	if err := validateID(assignmentID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, assignmentID)
}

func validateID(assignmentID string) error {
	if len(assignmentID) == 0 || len(assignmentID) > 255 {
		return assignmentModel.ErrInvalidAssignmentID
	}
	return nil
}
