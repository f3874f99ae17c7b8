package server

import (
	"telx/internal/models"
	"telx/internal/observability"
	"telx/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// GetFeed returns one page of the requested feed. The filter query param
// selects latest, following or trending; anonymous viewers get an empty
// following feed.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	viewerID, _ := s.callerID(c)
	page, perPage := parsePagination(c)
	filter := c.Query("filter", service.FilterLatest)

	if observability.FeedRequests != nil {
		observability.FeedRequests.WithLabelValues(filter).Inc()
	}

	result, err := s.postService.Feed(c.UserContext(), service.FeedInput{
		Filter:   filter,
		Page:     page,
		PerPage:  perPage,
		ViewerID: viewerID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// GetPost returns a single post view.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}
	viewerID, _ := s.callerID(c)

	post, err := s.postService.GetPost(c.UserContext(), postID, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// CreatePost stores a new post for the caller.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:   userID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleLike flips the caller's like on a post.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	result, err := s.postService.ToggleLike(c.UserContext(), userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if observability.ToggleOps != nil {
		observability.ToggleOps.WithLabelValues("like", result.Action).Inc()
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
