package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	groupModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/group/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&groupModel.Group{}, &groupModel.GroupMember{}))
	return db
}

func newGroup(id, assignmentID, code string, maxSize int, leader string) *groupModel.Group {
	now := time.Now().UTC()
	return &groupModel.Group{
		GroupID:      id,
		AssignmentID: assignmentID,
		JoinCode:     code,
		GroupName:    "Group " + code,
		LeaderID:     leader,
		MaxSize:      maxSize,
		CurrentSize:  1,
		Status:       groupModel.StatusForSize(1, maxSize),
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
		Members: []groupModel.GroupMember{
			{UserID: leader, Role: groupModel.RoleLeader, JoinedAt: now},
		},
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := New(setupTestDB(t))

		err := repo.Create(ctx, newGroup("g1", "a1", "ABC234", 4, "u1"))
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "ABC234", got.JoinCode)
		assert.Equal(t, []string{"u1"}, got.MemberIDs())
		assert.Equal(t, "a1", got.Members[0].AssignmentID)
	})

	t.Run("duplicate join code", func(t *testing.T) {
		repo := New(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, newGroup("g1", "a1", "ABC234", 4, "u1")))

		err := repo.Create(ctx, newGroup("g2", "a1", "ABC234", 4, "u2"))

		assert.ErrorIs(t, err, groupModel.ErrJoinCodeTaken)
	})

	t.Run("leader already in a group of the assignment", func(t *testing.T) {
		repo := New(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, newGroup("g1", "a1", "ABC234", 4, "u1")))

		err := repo.Create(ctx, newGroup("g2", "a1", "XYZ789", 4, "u1"))

		assert.ErrorIs(t, err, groupModel.ErrDuplicateMembership)
	})

	t.Run("same user in another assignment", func(t *testing.T) {
		repo := New(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, newGroup("g1", "a1", "ABC234", 4, "u1")))

		assert.NoError(t, repo.Create(ctx, newGroup("g2", "a2", "XYZ789", 4, "u1")))
	})
}

func TestRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))
	require.NoError(t, repo.Create(ctx, newGroup("g1", "a1", "ABC234", 4, "u1")))
	require.NoError(t, repo.Create(ctx, newGroup("g2", "a1", "XYZ789", 4, "u2")))
	require.NoError(t, repo.Create(ctx, newGroup("g3", "a2", "MNP456", 4, "u3")))

	t.Run("by join code", func(t *testing.T) {
		g, err := repo.GetByJoinCode(ctx, "XYZ789")
		require.NoError(t, err)
		assert.Equal(t, "g2", g.GroupID)

		_, err = repo.GetByJoinCode(ctx, "QQQQQQ")
		assert.ErrorIs(t, err, groupModel.ErrGroupNotFound)
	})

	t.Run("join code exists", func(t *testing.T) {
		exists, err := repo.JoinCodeExists(ctx, "ABC234")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.JoinCodeExists(ctx, "QQQQQQ")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("list by assignment", func(t *testing.T) {
		groups, err := repo.ListByAssignment(ctx, "a1")
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Len(t, groups[0].Members, 1)

		groups, err = repo.ListByAssignment(ctx, "none")
		require.NoError(t, err)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})

	t.Run("membership", func(t *testing.T) {
		m, err := repo.FindMembership(ctx, "a1", "u2")
		require.NoError(t, err)
		assert.Equal(t, "g2", m.GroupID)

		_, err = repo.FindMembership(ctx, "a2", "u1")
		assert.ErrorIs(t, err, groupModel.ErrMembershipNotFound)
	})
}

func TestRepository_ClaimSeat(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("fills to capacity then refuses", func(t *testing.T) {
		repo := New(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, newGroup("g1", "a1", "ABC234", 3, "u1")))

		require.NoError(t, repo.ClaimSeat(ctx, "g1", now))
		g, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, 2, g.CurrentSize)
		assert.Equal(t, groupModel.StatusForming, g.Status)
		assert.Equal(t, 2, g.Version)

		require.NoError(t, repo.ClaimSeat(ctx, "g1", now))
		g, err = repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, 3, g.CurrentSize)
		assert.Equal(t, groupModel.StatusReady, g.Status)

		assert.ErrorIs(t, repo.ClaimSeat(ctx, "g1", now), groupModel.ErrSeatUnavailable)
		g, err = repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, 3, g.CurrentSize)
	})

	t.Run("submitted group refuses", func(t *testing.T) {
		repo := New(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, newGroup("g1", "a1", "ABC234", 4, "u1")))
		changed, err := repo.MarkSubmitted(ctx, "g1", now)
		require.NoError(t, err)
		require.True(t, changed)

		assert.ErrorIs(t, repo.ClaimSeat(ctx, "g1", now), groupModel.ErrSeatUnavailable)
	})

	t.Run("unknown group", func(t *testing.T) {
		repo := New(setupTestDB(t))
		assert.ErrorIs(t, repo.ClaimSeat(ctx, "nope", now), groupModel.ErrSeatUnavailable)
	})
}

func TestRepository_AddMember(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))
	require.NoError(t, repo.Create(ctx, newGroup("g1", "a1", "ABC234", 4, "u1")))
	require.NoError(t, repo.Create(ctx, newGroup("g2", "a1", "XYZ789", 4, "u2")))

	err := repo.AddMember(ctx, &groupModel.GroupMember{
		GroupID: "g1", AssignmentID: "a1", UserID: "u3", Role: groupModel.RoleMember, JoinedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	err = repo.AddMember(ctx, &groupModel.GroupMember{
		GroupID: "g2", AssignmentID: "a1", UserID: "u3", Role: groupModel.RoleMember, JoinedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, groupModel.ErrDuplicateMembership)
}

func TestRepository_MarkSubmitted(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))
	require.NoError(t, repo.Create(ctx, newGroup("g1", "a1", "ABC234", 4, "u1")))

	changed, err := repo.MarkSubmitted(ctx, "g1", time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkSubmitted(ctx, "g1", time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, changed)

	g, err := repo.GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, groupModel.StatusSubmitted, g.Status)
	assert.Equal(t, 2, g.Version)
}
