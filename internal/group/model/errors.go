package model

import "errors"

var (
	// ErrNotGroupAssignment indicates groups cannot be formed for the assignment.
	ErrNotGroupAssignment = errors.New("not a group assignment")
	// ErrAlreadyInGroup indicates the creator already belongs to a group of the assignment.
	ErrAlreadyInGroup = errors.New("user already in a group for this assignment")
	// ErrInvalidJoinCode indicates the join code does not resolve to a group.
	ErrInvalidJoinCode = errors.New("invalid join code")
	// ErrAlreadyMember indicates the user is already a member of the group being joined.
	ErrAlreadyMember = errors.New("user already in this group")
	// ErrGroupFull indicates there is no free seat.
	ErrGroupFull = errors.New("group is full")
	// ErrGroupSubmitted indicates the group is closed to new members.
	ErrGroupSubmitted = errors.New("group already submitted")
	// ErrInAnotherGroup indicates the user belongs to a different group of the same assignment.
	ErrInAnotherGroup = errors.New("user already in another group for this assignment")
	// ErrGroupNotFound indicates that the requested group does not exist.
	ErrGroupNotFound = errors.New("group not found")
	// ErrNotMember indicates a non-member tried to act on the group.
	ErrNotMember = errors.New("user is not a member of the group")
	// ErrJoinCodeExhausted indicates no unused join code was found within the attempt budget.
	ErrJoinCodeExhausted = errors.New("could not generate a unique join code")

	// ErrInvalidAssignmentID indicates a missing assignment id.
	ErrInvalidAssignmentID = errors.New("assignmentId is required")
	// ErrInvalidUserID indicates a missing user id.
	ErrInvalidUserID = errors.New("userId is required")
	// ErrInvalidGroupID indicates a missing group id.
	ErrInvalidGroupID = errors.New("groupId is required")

	// ErrMembershipNotFound indicates the user has no group for the assignment.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrDuplicateMembership indicates the (assignment, user) unique index rejected a membership.
	ErrDuplicateMembership = errors.New("duplicate membership")
	// ErrJoinCodeTaken indicates the join code unique index rejected a new group.
	ErrJoinCodeTaken = errors.New("join code already in use")
	// ErrSeatUnavailable indicates the conditional seat claim matched no row.
	ErrSeatUnavailable = errors.New("no seat available")
)
