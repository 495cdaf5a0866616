package model

import "time"

// CreateGroupRequest represents the request to create a group led by the caller.
type CreateGroupRequest struct {
	AssignmentID  string `json:"assignmentId" binding:"required,max=255"`
	UserID        string `json:"userId" binding:"required,max=255"`
	GroupName     string `json:"groupName" binding:"max=255"`
	UserFirstName string `json:"userFirstName" binding:"max=255"`
	UserLastName  string `json:"userLastName" binding:"max=255"`
}

// JoinGroupRequest represents the request to join a group by its code.
// The code format is checked by the service so malformed codes read as invalid ones.
type JoinGroupRequest struct {
	JoinCode      string `json:"joinCode" binding:"required"`
	UserID        string `json:"userId" binding:"required,max=255"`
	UserFirstName string `json:"userFirstName" binding:"max=255"`
	UserLastName  string `json:"userLastName" binding:"max=255"`
}

// SubmitGroupRequest represents the request to mark a group submitted.
type SubmitGroupRequest struct {
	GroupID string `json:"groupId" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}

// GetGroupQuery is the query of GET /groups/get.
type GetGroupQuery struct {
	JoinCode string `form:"joinCode" binding:"required,joincode"`
}

// MyGroupQuery is the query of GET /groups/mine.
type MyGroupQuery struct {
	AssignmentID string `form:"assignmentId" binding:"required"`
	UserID       string `form:"userId" binding:"required"`
}

// MemberResponse represents a membership in API responses.
type MemberResponse struct {
	UserID    string    `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// GroupResponse represents a group summary in API responses.
type GroupResponse struct {
	GroupID      string           `json:"groupId"`
	AssignmentID string           `json:"assignmentId"`
	GroupName    string           `json:"groupName"`
	JoinCode     string           `json:"joinCode"`
	LeaderID     string           `json:"leaderId"`
	LeaderName   string           `json:"leaderName"`
	MemberIDs    []string         `json:"memberIds"`
	Members      []MemberResponse `json:"members"`
	CurrentSize  int              `json:"currentSize"`
	MaxSize      int              `json:"maxSize"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ToResponse converts a group with loaded members into its API form.
func ToResponse(g *Group) *GroupResponse {
	members := make([]MemberResponse, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, MemberResponse{
			UserID:    m.UserID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Role:      m.Role,
			JoinedAt:  m.JoinedAt,
		})
	}

	return &GroupResponse{
		GroupID:      g.GroupID,
		AssignmentID: g.AssignmentID,
		GroupName:    g.GroupName,
		JoinCode:     g.JoinCode,
		LeaderID:     g.LeaderID,
		LeaderName:   g.LeaderName,
		MemberIDs:    g.MemberIDs(),
		Members:      members,
		CurrentSize:  g.CurrentSize,
		MaxSize:      g.MaxSize,
		Status:       g.Status,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}
