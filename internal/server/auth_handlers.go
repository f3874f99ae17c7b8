package server

import (
	"telx/internal/models"
	"telx/internal/observability"
	"telx/internal/telegram"

	"github.com/gofiber/fiber/v2"
)

type authRequest struct {
	InitData string `json:"init_data"`
	// Mini-app clients send the camelCase key.
	InitDataCamel string `json:"initData"`
}

func (r authRequest) initData() string {
	if r.InitData != "" {
		return r.InitData
	}
	return r.InitDataCamel
}

// Authenticate verifies Telegram init data, resolves the identity to a local
// account and issues a session token. Every verification failure maps to the
// same 401 so callers learn nothing about which check tripped.
func (s *Server) Authenticate(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	identity, err := telegram.VerifyInitData(req.initData(), s.config.BotToken)
	if err != nil {
		if observability.AuthAttempts != nil {
			observability.AuthAttempts.WithLabelValues("rejected").Inc()
		}
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewAuthFailedError())
	}

	user, err := s.userService.ResolveIdentity(c.UserContext(), identity)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.issueSessionToken(user.ID)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}

	if observability.AuthAttempts != nil {
		observability.AuthAttempts.WithLabelValues("ok").Inc()
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
