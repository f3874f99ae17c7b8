package service

import (
	"context"
	"errors"

	"telx/internal/models"
	"telx/internal/repository"

	"gorm.io/gorm"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// FollowResult reports the outcome of a follow toggle along with the target's
// refreshed view for the follower.
type FollowResult struct {
	Action string       `json:"action"`
	User   *models.User `json:"user"`
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// ToggleFollow flips the follower's edge to the target. Following yourself is
// rejected before any lookups.
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, targetID uint) (*FollowResult, error) {
	if followerID == targetID {
		return nil, models.NewSelfFollowError()
	}

	if _, err := s.userRepo.GetByID(ctx, targetID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", targetID)
		}
		return nil, models.NewInternalError(err)
	}

	following, err := s.followRepo.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	action := "followed"
	if following {
		action = "unfollowed"
		err = s.followRepo.Unfollow(ctx, followerID, targetID)
	} else {
		err = s.followRepo.Follow(ctx, followerID, targetID)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user, err := s.userRepo.GetByID(ctx, targetID, followerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &FollowResult{Action: action, User: user}, nil
}
