// Package service provides business logic layer for peerresponse module.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	peerResponseModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/repository"
	"github.com/DannyWilsonCodeShop/classcast-platform/pkg/sanitize"
)

// AssignmentReader loads assignment settings.
type AssignmentReader interface {
	GetByID(ctx context.Context, assignmentID string) (*assignmentModel.Assignment, error)
}

// Service defines the interface for peer response business logic operations.
type Service interface {
	// ValidateResponse reports whether a response could be submitted. It never persists.
	ValidateResponse(
		ctx context.Context,
		req *peerResponseModel.ValidateResponseRequest,
	) (*peerResponseModel.ValidationResult, error)

	// SubmitResponse validates and stores a response.
	SubmitResponse(
		ctx context.Context,
		req *peerResponseModel.SubmitResponseRequest,
	) (*peerResponseModel.PeerResponse, error)

	// ListVideoResponses returns the responses to a video, oldest first.
	ListVideoResponses(ctx context.Context, videoID string) ([]peerResponseModel.PeerResponse, error)
}

type service struct {
	repo        repository.Repository
	assignments AssignmentReader
	db          *gorm.DB
	logger      *zap.SugaredLogger

	now func() time.Time
}

// New creates a new peer response service instance.
func New(
	repo repository.Repository,
	assignments AssignmentReader,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:        repo,
		assignments: assignments,
		db:          db,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ValidateResponse reports whether a response could be submitted. Content is
// measured after sanitizing, as SubmitResponse stores it.
func (s *service) ValidateResponse(
	ctx context.Context,
	req *peerResponseModel.ValidateResponseRequest,
) (*peerResponseModel.ValidationResult, error) {
	if err := validateIDs(req.AssignmentID, req.VideoID, req.StudentID); err != nil {
		return nil, err
	}

	a := req.Assignment
	if a == nil {
		var err error
		a, err = s.assignments.GetByID(ctx, req.AssignmentID)
		if err != nil {
			return nil, err
		}
	}
	content := sanitize.Text(req.Content)
	result, err := Validate(ctx, s.repo, a, req.AssignmentID, req.VideoID, req.StudentID, content, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("peer response validated",
		"assignment_id", req.AssignmentID,
		"video_id", req.VideoID,
		"student_id", req.StudentID,
		"can_submit", result.CanSubmit,
		"errors", len(result.Errors),
	)
	return result, nil
}

// SubmitResponse sanitizes the content, re-runs validation against the
// stored settings and persists the response in one transaction. The video
// lock makes the count and the insert atomic against concurrent submits.
func (s *service) SubmitResponse(
	ctx context.Context,
	req *peerResponseModel.SubmitResponseRequest,
) (*peerResponseModel.PeerResponse, error) {
	if err := validateIDs(req.AssignmentID, req.VideoID, req.StudentID); err != nil {
		return nil, err
	}

	content := sanitize.Text(req.Content)
	if content == "" {
		return nil, peerResponseModel.ErrEmptyContent
	}

	a, err := s.assignments.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	resp := &peerResponseModel.PeerResponse{
		ResponseID:     uuid.NewString(),
		AssignmentID:   req.AssignmentID,
		VideoID:        req.VideoID,
		StudentID:      req.StudentID,
		StudentName:    sanitize.Text(req.StudentName),
		Content:        content,
		WordCount:      peerResponseModel.CountWords(content),
		CharacterCount: peerResponseModel.CountCharacters(content),
		CreatedAt:      now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		if err := txRepo.LockVideo(ctx, req.VideoID); err != nil {
			return fmt.Errorf("lock video: %w", err)
		}

		result, err := Validate(ctx, txRepo, a, req.AssignmentID, req.VideoID, req.StudentID, content, now)
		if err != nil {
			return err
		}
		if !result.CanSubmit {
			return &peerResponseModel.ValidationError{Result: result}
		}

		if err := txRepo.Create(ctx, resp); err != nil {
			return fmt.Errorf("create peer response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("peer response submitted",
		"response_id", resp.ResponseID,
		"assignment_id", resp.AssignmentID,
		"video_id", resp.VideoID,
		"student_id", resp.StudentID,
		"word_count", resp.WordCount,
	)
	return resp, nil
}

// ListVideoResponses returns the responses to a video, oldest first.
func (s *service) ListVideoResponses(ctx context.Context, videoID string) ([]peerResponseModel.PeerResponse, error) {
	if videoID == "" {
		return nil, peerResponseModel.ErrInvalidVideoID
	}
	return s.repo.ListByVideo(ctx, videoID)
}

func validateIDs(assignmentID, videoID, studentID string) error {
	switch {
	case assignmentID == "":
		return peerResponseModel.ErrInvalidAssignmentID
	case videoID == "":
		return peerResponseModel.ErrInvalidVideoID
	case studentID == "":
		return peerResponseModel.ErrInvalidStudentID
	}
	return nil
}
