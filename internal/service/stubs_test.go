package service

import (
	"context"
	"errors"
	"testing"

	"telx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint, uint) (*models.Post, error)
	listLatestFn     func(context.Context, int, int, uint) ([]*models.Post, error)
	listByUserIDFn   func(context.Context, uint, uint) ([]*models.Post, error)
	listFollowingFn  func(context.Context, uint, int, int) ([]*models.Post, error)
	listTrendingFn   func(context.Context, int, int, uint) ([]*models.Post, error)
	countAllFn       func(context.Context) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
	countTrendingFn  func(context.Context) (int64, error)
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	likeFn           func(context.Context, uint, uint) error
	unlikeFn         func(context.Context, uint, uint) error
	likesCountFn     func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) ListLatest(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Post, error) {
	return s.listLatestFn(ctx, limit, offset, viewerID)
}
func (s *postRepoStub) ListByUserID(ctx context.Context, userID, viewerID uint) ([]*models.Post, error) {
	return s.listByUserIDFn(ctx, userID, viewerID)
}
func (s *postRepoStub) ListFollowing(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	return s.listFollowingFn(ctx, viewerID, limit, offset)
}
func (s *postRepoStub) ListTrending(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Post, error) {
	return s.listTrendingFn(ctx, limit, offset, viewerID)
}
func (s *postRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}
func (s *postRepoStub) CountFollowing(ctx context.Context, viewerID uint) (int64, error) {
	return s.countFollowingFn(ctx, viewerID)
}
func (s *postRepoStub) CountTrending(ctx context.Context) (int64, error) {
	return s.countTrendingFn(ctx)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) LikesCount(ctx context.Context, postID uint) (int64, error) {
	return s.likesCountFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:         func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:        func(_ context.Context, id, _ uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listLatestFn:     func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listByUserIDFn:   func(_ context.Context, _, _ uint) ([]*models.Post, error) { return nil, nil },
		listFollowingFn:  func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		listTrendingFn:   func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		countAllFn:       func(_ context.Context) (int64, error) { return 0, nil },
		countFollowingFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countTrendingFn:  func(_ context.Context) (int64, error) { return 0, nil },
		isLikedFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likeFn:           func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:         func(_ context.Context, _, _ uint) error { return nil },
		likesCountFn:     func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	upsertFn          func(context.Context, *models.User) error
	getByIDFn         func(context.Context, uint, uint) (*models.User, error)
	getByTelegramIDFn func(context.Context, int64, uint) (*models.User, error)
	updateBioFn       func(context.Context, uint, string) error
	discoverFn        func(context.Context, uint, int) ([]*models.User, error)
}

func (s *userRepoStub) Upsert(ctx context.Context, user *models.User) error {
	return s.upsertFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.User, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *userRepoStub) GetByTelegramID(ctx context.Context, telegramID int64, viewerID uint) (*models.User, error) {
	return s.getByTelegramIDFn(ctx, telegramID, viewerID)
}
func (s *userRepoStub) UpdateBio(ctx context.Context, id uint, bio string) error {
	return s.updateBioFn(ctx, id, bio)
}
func (s *userRepoStub) Discover(ctx context.Context, viewerID uint, limit int) ([]*models.User, error) {
	return s.discoverFn(ctx, viewerID, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		upsertFn:          func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:         func(_ context.Context, id, _ uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByTelegramIDFn: func(_ context.Context, tid int64, _ uint) (*models.User, error) { return &models.User{TelegramID: tid}, nil },
		updateBioFn:       func(_ context.Context, _ uint, _ string) error { return nil },
		discoverFn:        func(_ context.Context, _ uint, _ int) ([]*models.User, error) { return nil, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	isFollowingFn func(context.Context, uint, uint) (bool, error)
	followFn      func(context.Context, uint, uint) error
	unfollowFn    func(context.Context, uint, uint) error
}

func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.unfollowFn(ctx, followerID, followingID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		isFollowingFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		followFn:      func(_ context.Context, _, _ uint) error { return nil },
		unfollowFn:    func(_ context.Context, _, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint, uint) (*models.Comment, error)
	listByPostIDFn func(context.Context, uint, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *commentRepoStub) ListByPostID(ctx context.Context, postID, viewerID uint) ([]*models.Comment, error) {
	return s.listByPostIDFn(ctx, postID, viewerID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:      func(_ context.Context, id, _ uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostIDFn: func(_ context.Context, _, _ uint) ([]*models.Comment, error) { return nil, nil },
	}
}

// assertAppErrorCode asserts that err is an AppError with the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
