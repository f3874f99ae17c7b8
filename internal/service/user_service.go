// Package service contains the application's business logic.
package service

import (
	"context"
	"errors"

	"telx/internal/models"
	"telx/internal/repository"
	"telx/internal/telegram"

	"gorm.io/gorm"
)

// DiscoverLimit caps the number of suggestions on the discovery list.
const DiscoverLimit = 20

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID uint
	Bio    string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ResolveIdentity maps a verified init data identity onto a local user row,
// creating it on first contact and refreshing the Telegram-owned profile
// fields on every subsequent login. Returns the full user view.
func (s *UserService) ResolveIdentity(ctx context.Context, identity *telegram.Identity) (*models.User, error) {
	user := &models.User{
		TelegramID:   identity.ID,
		Username:     identity.Username,
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		LanguageCode: identity.LanguageCode,
		PhotoURL:     identity.PhotoURL,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}

	// Re-read so the response carries the stable row ID and derived fields.
	resolved, err := s.userRepo.GetByTelegramID(ctx, identity.ID, 0)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return resolved, nil
}

// GetProfile returns a user's view as seen by the viewer.
func (s *UserService) GetProfile(ctx context.Context, userID, viewerID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// UpdateProfile sets the viewer's bio. The text is stored as sent; overlong
// input is truncated to the column limit rather than rejected.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	bio := in.Bio
	if runes := []rune(bio); len(runes) > models.BioMaxLen {
		bio = string(runes[:models.BioMaxLen])
	}

	if err := s.userRepo.UpdateBio(ctx, in.UserID, bio); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.GetProfile(ctx, in.UserID, in.UserID)
}

// Discover lists users the viewer may want to follow: everyone except the
// viewer and accounts they already follow, newest first.
func (s *UserService) Discover(ctx context.Context, viewerID uint) ([]*models.User, error) {
	users, err := s.userRepo.Discover(ctx, viewerID, DiscoverLimit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
