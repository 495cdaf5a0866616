// Package service provides business logic layer for group module.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	groupModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/group/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/group/repository"
	"github.com/DannyWilsonCodeShop/classcast-platform/pkg/joincode"
	"github.com/DannyWilsonCodeShop/classcast-platform/pkg/sanitize"
)

// maxJoinCodeAttempts bounds join code generation per CreateGroup call.
const maxJoinCodeAttempts = 10

// AssignmentReader loads assignment settings.
type AssignmentReader interface {
	GetByID(ctx context.Context, assignmentID string) (*assignmentModel.Assignment, error)
}

// Service defines the interface for group business logic operations.
type Service interface {
	// CreateGroup creates a group led by the caller.
	CreateGroup(ctx context.Context, req *groupModel.CreateGroupRequest) (*groupModel.GroupResponse, error)

	// JoinGroup adds the caller to the group behind a join code.
	JoinGroup(ctx context.Context, req *groupModel.JoinGroupRequest) (*groupModel.GroupResponse, error)

	// GetGroup resolves a join code to its group.
	GetGroup(ctx context.Context, code string) (*groupModel.GroupResponse, error)

	// ListGroups returns all groups of an assignment.
	ListGroups(ctx context.Context, assignmentID string) ([]groupModel.GroupResponse, error)

	// GetMyGroup returns the caller's group for an assignment.
	GetMyGroup(ctx context.Context, assignmentID, userID string) (*groupModel.GroupResponse, error)

	// SubmitGroup moves a group to submitted (idempotent).
	SubmitGroup(ctx context.Context, req *groupModel.SubmitGroupRequest) (*groupModel.GroupResponse, error)
}

type service struct {
	repo        repository.Repository
	assignments AssignmentReader
	db          *gorm.DB
	logger      *zap.SugaredLogger

	now     func() time.Time
	codeGen func() (string, error)
}

// New creates a new group service instance.
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
		codeGen:     joincode.Generate,
	}
}

// CreateGroup creates a group with the caller as leader and sole member.
func (s *service) CreateGroup(
	ctx context.Context,
	req *groupModel.CreateGroupRequest,
) (*groupModel.GroupResponse, error) {
	if req.AssignmentID == "" {
		return nil, groupModel.ErrInvalidAssignmentID
	}
	if req.UserID == "" {
		return nil, groupModel.ErrInvalidUserID
	}

	s.logger.Debugw("creating group", "assignment_id", req.AssignmentID, "user_id", req.UserID)

	assignment, err := s.assignments.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}
	if !assignment.GroupAssignment {
		return nil, groupModel.ErrNotGroupAssignment
	}

	if err := s.ensureNoMembership(ctx, req.AssignmentID, req.UserID, groupModel.ErrAlreadyInGroup); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxJoinCodeAttempts; attempt++ {
		code, err := s.codeGen()
		if err != nil {
			return nil, fmt.Errorf("generate join code: %w", err)
		}

		exists, err := s.repo.JoinCodeExists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check join code: %w", err)
		}
		if exists {
			s.logger.Debugw("join code collision", "attempt", attempt)
			continue
		}

		group := s.newGroup(assignment, req, code)
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return repository.New(tx).Create(ctx, group)
		})

		switch {
		case err == nil:
			s.logger.Infow("group created",
				"group_id", group.GroupID,
				"assignment_id", group.AssignmentID,
				"leader_id", group.LeaderID,
				"max_size", group.MaxSize,
			)
			return groupModel.ToResponse(group), nil
		case errors.Is(err, groupModel.ErrJoinCodeTaken):
			s.logger.Debugw("join code taken at insert", "attempt", attempt)
			continue
		case errors.Is(err, groupModel.ErrDuplicateMembership):
			return nil, groupModel.ErrAlreadyInGroup
		default:
			return nil, fmt.Errorf("create group: %w", err)
		}
	}

	s.logger.Errorw("join code attempts exhausted", "assignment_id", req.AssignmentID)
	return nil, groupModel.ErrJoinCodeExhausted
}

func (s *service) newGroup(
	assignment *assignmentModel.Assignment,
	req *groupModel.CreateGroupRequest,
	code string,
) *groupModel.Group {
	now := s.now()
	firstName := sanitize.Text(req.UserFirstName)
	lastName := sanitize.Text(req.UserLastName)

	name := sanitize.Text(req.GroupName)
	if name == "" {
		name = "Group " + code
	}

	maxSize := assignment.GroupSize()
	return &groupModel.Group{
		GroupID:      uuid.NewString(),
		AssignmentID: assignment.AssignmentID,
		JoinCode:     code,
		GroupName:    name,
		LeaderID:     req.UserID,
		LeaderName:   displayName(firstName, lastName),
		MaxSize:      maxSize,
		CurrentSize:  1,
		Status:       groupModel.StatusForSize(1, maxSize),
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
		Members: []groupModel.GroupMember{{
			UserID:    req.UserID,
			FirstName: firstName,
			LastName:  lastName,
			Role:      groupModel.RoleLeader,
			JoinedAt:  now,
		}},
	}
}

// JoinGroup runs the join checks in order, then claims a seat and records
// the membership in one transaction.
func (s *service) JoinGroup(
	ctx context.Context,
	req *groupModel.JoinGroupRequest,
) (*groupModel.GroupResponse, error) {
	if req.UserID == "" {
		return nil, groupModel.ErrInvalidUserID
	}

	code := joincode.Normalize(req.JoinCode)
	s.logger.Debugw("joining group", "join_code", code, "user_id", req.UserID)

	if !joincode.Valid(code) {
		return nil, groupModel.ErrInvalidJoinCode
	}

	group, err := s.repo.GetByJoinCode(ctx, code)
	if err != nil {
		if errors.Is(err, groupModel.ErrGroupNotFound) {
			return nil, groupModel.ErrInvalidJoinCode
		}
		return nil, fmt.Errorf("find group: %w", err)
	}

	if group.HasMember(req.UserID) {
		return nil, groupModel.ErrAlreadyMember
	}
	if group.IsFull() {
		return nil, groupModel.ErrGroupFull
	}
	if group.Status == groupModel.StatusSubmitted {
		return nil, groupModel.ErrGroupSubmitted
	}
	if err := s.ensureNoMembership(ctx, group.AssignmentID, req.UserID, groupModel.ErrInAnotherGroup); err != nil {
		return nil, err
	}

	now := s.now()
	member := &groupModel.GroupMember{
		GroupID:      group.GroupID,
		AssignmentID: group.AssignmentID,
		UserID:       req.UserID,
		FirstName:    sanitize.Text(req.UserFirstName),
		LastName:     sanitize.Text(req.UserLastName),
		Role:         groupModel.RoleMember,
		JoinedAt:     now,
	}

	var updated *groupModel.Group
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if err := txRepo.ClaimSeat(ctx, group.GroupID, now); err != nil {
			return err
		}
		if err := txRepo.AddMember(ctx, member); err != nil {
			return err
		}

		var err error
		updated, err = txRepo.GetByID(ctx, group.GroupID)
		return err
	})

	switch {
	case err == nil:
	case errors.Is(err, groupModel.ErrSeatUnavailable):
		return nil, s.seatConflict(ctx, group.GroupID)
	case errors.Is(err, groupModel.ErrDuplicateMembership):
		return nil, s.membershipConflict(ctx, group.AssignmentID, group.GroupID, req.UserID)
	default:
		return nil, fmt.Errorf("join group: %w", err)
	}

	s.logger.Infow("member joined",
		"group_id", updated.GroupID,
		"user_id", req.UserID,
		"current_size", updated.CurrentSize,
		"status", updated.Status,
	)
	return groupModel.ToResponse(updated), nil
}

// seatConflict explains a lost seat claim from the group's current state.
func (s *service) seatConflict(ctx context.Context, groupID string) error {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return fmt.Errorf("reload group: %w", err)
	}
	if !group.IsFull() && group.Status == groupModel.StatusSubmitted {
		return groupModel.ErrGroupSubmitted
	}
	return groupModel.ErrGroupFull
}

// membershipConflict explains a membership insert lost to a concurrent
// request of the same user.
func (s *service) membershipConflict(ctx context.Context, assignmentID, groupID, userID string) error {
	member, err := s.repo.FindMembership(ctx, assignmentID, userID)
	if err != nil {
		if errors.Is(err, groupModel.ErrMembershipNotFound) {
			return groupModel.ErrInAnotherGroup
		}
		return fmt.Errorf("reload membership: %w", err)
	}
	if member.GroupID == groupID {
		return groupModel.ErrAlreadyMember
	}
	return groupModel.ErrInAnotherGroup
}

// ensureNoMembership returns conflict if the user already has a group for the assignment.
func (s *service) ensureNoMembership(ctx context.Context, assignmentID, userID string, conflict error) error {
	_, err := s.repo.FindMembership(ctx, assignmentID, userID)
	switch {
	case err == nil:
		return conflict
	case errors.Is(err, groupModel.ErrMembershipNotFound):
		return nil
	default:
		return fmt.Errorf("find membership: %w", err)
	}
}

// GetGroup resolves a join code to its group.
func (s *service) GetGroup(ctx context.Context, code string) (*groupModel.GroupResponse, error) {
	group, err := s.repo.GetByJoinCode(ctx, joincode.Normalize(code))
	if err != nil {
		if errors.Is(err, groupModel.ErrGroupNotFound) {
			return nil, groupModel.ErrInvalidJoinCode
		}
		return nil, err
	}
	return groupModel.ToResponse(group), nil
}

// ListGroups returns all groups of an assignment.
func (s *service) ListGroups(ctx context.Context, assignmentID string) ([]groupModel.GroupResponse, error) {
	if assignmentID == "" {
		return nil, groupModel.ErrInvalidAssignmentID
	}

	groups, err := s.repo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	result := make([]groupModel.GroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *groupModel.ToResponse(&groups[i]))
	}
	return result, nil
}

// GetMyGroup returns the caller's group for an assignment.
func (s *service) GetMyGroup(ctx context.Context, assignmentID, userID string) (*groupModel.GroupResponse, error) {
	if assignmentID == "" {
		return nil, groupModel.ErrInvalidAssignmentID
	}
	if userID == "" {
		return nil, groupModel.ErrInvalidUserID
	}

	member, err := s.repo.FindMembership(ctx, assignmentID, userID)
	if err != nil {
		if errors.Is(err, groupModel.ErrMembershipNotFound) {
			return nil, groupModel.ErrGroupNotFound
		}
		return nil, err
	}

	group, err := s.repo.GetByID(ctx, member.GroupID)
	if err != nil {
		return nil, err
	}
	return groupModel.ToResponse(group), nil
}

// SubmitGroup moves a group to submitted. Only a member may do it; an
// already submitted group is returned unchanged.
func (s *service) SubmitGroup(
	ctx context.Context,
	req *groupModel.SubmitGroupRequest,
) (*groupModel.GroupResponse, error) {
	if req.GroupID == "" {
		return nil, groupModel.ErrInvalidGroupID
	}
	if req.UserID == "" {
		return nil, groupModel.ErrInvalidUserID
	}

	group, err := s.repo.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(req.UserID) {
		return nil, groupModel.ErrNotMember
	}
	if group.Status == groupModel.StatusSubmitted {
		return groupModel.ToResponse(group), nil
	}

	changed, err := s.repo.MarkSubmitted(ctx, group.GroupID, s.now())
	if err != nil {
		return nil, fmt.Errorf("submit group: %w", err)
	}
	if changed {
		s.logger.Infow("group submitted", "group_id", group.GroupID, "user_id", req.UserID)
	}

	group, err = s.repo.GetByID(ctx, group.GroupID)
	if err != nil {
		return nil, err
	}
	return groupModel.ToResponse(group), nil
}

func displayName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
