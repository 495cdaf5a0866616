// Package repository provides data access layer for group module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	groupModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/group/model"
)

// Repository defines the interface for group data access operations.
type Repository interface {
	// Create inserts a group and its initial memberships.
	Create(ctx context.Context, group *groupModel.Group) error

	// GetByID finds a group by group_id with members in join order.
	GetByID(ctx context.Context, groupID string) (*groupModel.Group, error)

	// GetByJoinCode finds a group by join_code with members in join order.
	GetByJoinCode(ctx context.Context, joinCode string) (*groupModel.Group, error)

	// JoinCodeExists reports whether a group already uses joinCode.
	JoinCodeExists(ctx context.Context, joinCode string) (bool, error)

	// ListByAssignment returns the groups of an assignment, oldest first.
	ListByAssignment(ctx context.Context, assignmentID string) ([]groupModel.Group, error)

	// FindMembership returns the user's membership for an assignment.
	FindMembership(ctx context.Context, assignmentID, userID string) (*groupModel.GroupMember, error)

	// ClaimSeat takes one seat if the group is neither full nor submitted.
	ClaimSeat(ctx context.Context, groupID string, now time.Time) error

	// AddMember inserts a membership row.
	AddMember(ctx context.Context, member *groupModel.GroupMember) error

	// MarkSubmitted moves the group to submitted. It reports false when the
	// group was already submitted or does not exist.
	MarkSubmitted(ctx context.Context, groupID string, now time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new group repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

func orderedMembers(db *gorm.DB) *gorm.DB {
	return db.Order("joined_at ASC, id ASC")
}

// Create inserts the group row, then each membership. Associations are
// written explicitly so unique violations on members are not swallowed.
func (r *repository) Create(ctx context.Context, group *groupModel.Group) error {
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(group).Error; err != nil {
		if isDuplicateError(err) {
			return groupModel.ErrJoinCodeTaken
		}
		return err
	}

	for i := range group.Members {
		group.Members[i].GroupID = group.GroupID
		group.Members[i].AssignmentID = group.AssignmentID
		if err := r.AddMember(ctx, &group.Members[i]); err != nil {
			return err
		}
	}

	return nil
}

// GetByID finds a group by group_id with members in join order.
func (r *repository) GetByID(ctx context.Context, groupID string) (*groupModel.Group, error) {
	return r.first(ctx, "group_id = ?", groupID)
}

// GetByJoinCode finds a group by join_code with members in join order.
func (r *repository) GetByJoinCode(ctx context.Context, joinCode string) (*groupModel.Group, error) {
	return r.first(ctx, "join_code = ?", joinCode)
}

func (r *repository) first(ctx context.Context, query string, arg string) (*groupModel.Group, error) {
	var group groupModel.Group
	err := r.db.WithContext(ctx).
		Preload("Members", orderedMembers).
		Where(query, arg).
		First(&group).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupModel.ErrGroupNotFound
		}
		return nil, err
	}

	return &group, nil
}

// JoinCodeExists reports whether a group already uses joinCode.
func (r *repository) JoinCodeExists(ctx context.Context, joinCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&groupModel.Group{}).
		Where("join_code = ?", joinCode).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByAssignment returns the groups of an assignment, oldest first.
func (r *repository) ListByAssignment(ctx context.Context, assignmentID string) ([]groupModel.Group, error) {
	var groups []groupModel.Group
	err := r.db.WithContext(ctx).
		Preload("Members", orderedMembers).
		Where("assignment_id = ?", assignmentID).
		Order("created_at ASC, group_id ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}

	if groups == nil {
		return []groupModel.Group{}, nil
	}
	return groups, nil
}

// FindMembership returns the user's membership for an assignment.
func (r *repository) FindMembership(
	ctx context.Context,
	assignmentID, userID string,
) (*groupModel.GroupMember, error) {
	var member groupModel.GroupMember
	err := r.db.WithContext(ctx).
		Where("assignment_id = ? AND user_id = ?", assignmentID, userID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupModel.ErrMembershipNotFound
		}
		return nil, err
	}

	return &member, nil
}

// ClaimSeat takes one seat with a single conditional update, so concurrent
// joiners can never push current_size past max_size.
func (r *repository) ClaimSeat(ctx context.Context, groupID string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&groupModel.Group{}).
		Where("group_id = ? AND current_size < max_size AND status <> ?", groupID, groupModel.StatusSubmitted).
		Updates(map[string]interface{}{
			"current_size": gorm.Expr("current_size + 1"),
			"status": gorm.Expr("CASE WHEN current_size + 1 >= max_size THEN ? ELSE ? END",
				groupModel.StatusReady, groupModel.StatusForming),
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return groupModel.ErrSeatUnavailable
	}
	return nil
}

// AddMember inserts a membership row.
func (r *repository) AddMember(ctx context.Context, member *groupModel.GroupMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if isDuplicateError(err) {
			return groupModel.ErrDuplicateMembership
		}
		return err
	}
	return nil
}

// MarkSubmitted moves the group to submitted.
func (r *repository) MarkSubmitted(ctx context.Context, groupID string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&groupModel.Group{}).
		Where("group_id = ? AND status <> ?", groupID, groupModel.StatusSubmitted).
		Updates(map[string]interface{}{
			"status":     groupModel.StatusSubmitted,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
