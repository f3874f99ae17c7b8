package repository

import (
	"context"
	"testing"

	"telx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UpsertByTelegramID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{TelegramID: 42, Username: "alice", FirstName: "Alice"}
	require.NoError(t, repo.Upsert(ctx, first))

	// Same telegram_id with refreshed profile fields updates in place.
	again := &models.User{TelegramID: 42, Username: "alice_new", FirstName: "Alice", LastName: "Smith", Bio: "ignored"}
	require.NoError(t, repo.Upsert(ctx, again))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := repo.GetByTelegramID(ctx, 42, 0)
	require.NoError(t, err)
	assert.Equal(t, "alice_new", got.Username)
	assert.Equal(t, "Smith", got.LastName)
	assert.Empty(t, got.Bio, "upsert must not touch bio")
}

func TestUserRepository_DerivedCounts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	target := createTestUser(t, db, 100, "target")
	fan := createTestUser(t, db, 200, "fan")
	other := createTestUser(t, db, 300, "other")

	createTestPost(t, db, target.ID, "post one")
	createTestPost(t, db, target.ID, "post two")
	require.NoError(t, follows.Follow(ctx, fan.ID, target.ID))
	require.NoError(t, follows.Follow(ctx, target.ID, other.ID))

	got, err := users.GetByID(ctx, target.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FollowersCount)
	assert.Equal(t, int64(1), got.FollowingCount)
	assert.Equal(t, int64(2), got.PostsCount)
	assert.True(t, got.IsFollowing)

	// The counts are live: unfollow and read again.
	require.NoError(t, follows.Unfollow(ctx, fan.ID, target.ID))
	got, err = users.GetByID(ctx, target.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.FollowersCount)
	assert.False(t, got.IsFollowing)
}

func TestUserRepository_HandleFallback(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &models.User{TelegramID: 777, FirstName: "NoName"}
	require.NoError(t, repo.Upsert(ctx, u))

	got, err := repo.GetByTelegramID(ctx, 777, 0)
	require.NoError(t, err)
	assert.Equal(t, "@user777", got.Handle)
	assert.Equal(t, "NoName", got.FullName)
}

func TestUserRepository_Discover(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	viewer := createTestUser(t, db, 100, "viewer")
	followed := createTestUser(t, db, 200, "followed")
	fresh := createTestUser(t, db, 300, "fresh")

	require.NoError(t, follows.Follow(ctx, viewer.ID, followed.ID))

	got, err := users.Discover(ctx, viewer.ID, 20)
	require.NoError(t, err)
	require.Len(t, got, 1, "viewer and already-followed users are excluded")
	assert.Equal(t, fresh.ID, got[0].ID)
	assert.False(t, got[0].IsFollowing)
}

func TestUserRepository_UpdateBio(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, 100, "writer")
	require.NoError(t, repo.UpdateBio(ctx, u.ID, "building things"))

	got, err := repo.GetByID(ctx, u.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "building things", got.Bio)
}
