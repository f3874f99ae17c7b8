// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"telx/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64, viewerID uint) (*models.User, error)
	UpdateBio(ctx context.Context, id uint, bio string) error
	Discover(ctx context.Context, viewerID uint, limit int) ([]*models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert creates the user keyed by telegram_id, or refreshes the mutable
// profile fields if the user already exists. Bio is owned by the profile
// endpoint and is never touched here.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "telegram_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "first_name", "last_name", "language_code", "photo_url", "updated_at",
		}),
	}).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.User, error) {
	var user models.User
	err := applyUserDetails(r.db.WithContext(ctx), viewerID).
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64, viewerID uint) (*models.User, error) {
	var user models.User
	err := applyUserDetails(r.db.WithContext(ctx), viewerID).
		Where("telegram_id = ?", telegramID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateBio(ctx context.Context, id uint, bio string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("bio", bio).Error
}

// Discover returns users the viewer does not follow yet, excluding the viewer,
// newest first.
func (r *userRepository) Discover(ctx context.Context, viewerID uint, limit int) ([]*models.User, error) {
	var users []*models.User
	err := applyUserDetails(r.db.WithContext(ctx), viewerID).
		Where("users.id <> ?", viewerID).
		Where("users.id NOT IN (SELECT following_id FROM follows WHERE follower_id = ?)", viewerID).
		Order("users.created_at DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// applyUserDetails adds subqueries to fetch follower/following/post counts and
// the viewer's follow status in a single query.
func applyUserDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "users.*, " +
		"(SELECT COUNT(*) FROM follows WHERE follows.following_id = users.id) AS followers_count, " +
		"(SELECT COUNT(*) FROM follows WHERE follows.follower_id = users.id) AS following_count, " +
		"(SELECT COUNT(*) FROM posts WHERE posts.user_id = users.id) AS posts_count"

	if viewerID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM follows WHERE follows.following_id = users.id AND follows.follower_id = ?) AS is_following", viewerID)
	}

	return db.Select(selectQuery + ", false AS is_following")
}
