package server

import (
	"telx/internal/models"
	"telx/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

// GetComments returns a post together with its comments newest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}
	viewerID, _ := s.callerID(c)

	post, err := s.postService.GetPost(c.UserContext(), postID, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	comments, err := s.commentService.ListComments(c.UserContext(), postID, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// CreateComment stores a new comment on a post for the caller.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
