package server

import (
	"telx/internal/models"
	"telx/internal/observability"
	"telx/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	Bio string `json:"bio"`
}

// GetUserProfile returns a user's view as seen by the caller, along with the
// user's posts newest first.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}
	viewerID, _ := s.callerID(c)

	user, err := s.userService.GetProfile(c.UserContext(), userID, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	posts, err := s.postService.ListByAuthor(c.UserContext(), userID, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  user,
		"posts": posts,
	})
}

// DiscoverUsers suggests accounts the caller does not follow yet. Anonymous
// callers get the unfiltered newest accounts.
func (s *Server) DiscoverUsers(c *fiber.Ctx) error {
	viewerID, _ := s.callerID(c)

	users, err := s.userService.Discover(c.UserContext(), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// UpdateProfile sets the caller's bio and returns the refreshed profile.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID: userID,
		Bio:    req.Bio,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// ToggleFollow flips the caller's follow on another user.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	followerID := c.Locals("userID").(uint)
	targetID, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	result, err := s.followService.ToggleFollow(c.UserContext(), followerID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if observability.ToggleOps != nil {
		observability.ToggleOps.WithLabelValues("follow", result.Action).Inc()
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
