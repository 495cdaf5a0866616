// Package model provides domain models and DTOs for group module.
package model

import "time"

// Group statuses. forming -> ready when the last seat is taken;
// forming|ready -> submitted when the group hands in its work.
const (
	StatusForming   = "forming"
	StatusReady     = "ready"
	StatusSubmitted = "submitted"
)

// Member roles.
const (
	RoleLeader = "leader"
	RoleMember = "member"
)

// Group is a fixed-capacity set of students working on one assignment.
// Matches the groups table schema.
type Group struct {
	GroupID      string    `gorm:"primaryKey;column:group_id;type:varchar(36)"`
	AssignmentID string    `gorm:"column:assignment_id;type:varchar(255);not null;index"`
	JoinCode     string    `gorm:"column:join_code;type:varchar(6);not null;uniqueIndex:idx_groups_join_code"`
	GroupName    string    `gorm:"column:group_name;type:varchar(255);not null"`
	LeaderID     string    `gorm:"column:leader_id;type:varchar(255);not null"`
	LeaderName   string    `gorm:"column:leader_name;type:varchar(255);not null"`
	MaxSize      int       `gorm:"column:max_size;not null"`
	CurrentSize  int       `gorm:"column:current_size;not null"`
	Status       string    `gorm:"column:status;type:varchar(16);not null"`
	Version      int       `gorm:"column:version;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`

	Members []GroupMember `gorm:"foreignKey:GroupID;references:GroupID"`
}

// TableName specifies the table name for GORM.
func (Group) TableName() string {
	return "groups"
}

// GroupMember is one student's membership. The (assignment_id, user_id)
// unique index keeps a student in at most one group per assignment.
type GroupMember struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id"`
	GroupID      string    `gorm:"column:group_id;type:varchar(36);not null;index"`
	AssignmentID string    `gorm:"column:assignment_id;type:varchar(255);not null;uniqueIndex:idx_group_members_assignment_user,priority:1"`
	UserID       string    `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:idx_group_members_assignment_user,priority:2"`
	FirstName    string    `gorm:"column:first_name;type:varchar(255);not null"`
	LastName     string    `gorm:"column:last_name;type:varchar(255);not null"`
	Role         string    `gorm:"column:role;type:varchar(16);not null"`
	JoinedAt     time.Time `gorm:"column:joined_at;not null"`
}

// TableName specifies the table name for GORM.
func (GroupMember) TableName() string {
	return "group_members"
}

// MemberIDs returns member user ids in join order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether every seat is taken.
func (g *Group) IsFull() bool {
	return g.CurrentSize >= g.MaxSize
}

// StatusForSize returns the status a non-submitted group has at the given size.
func StatusForSize(currentSize, maxSize int) string {
	if currentSize >= maxSize {
		return StatusReady
	}
	return StatusForming
}
