package server

import (
	"errors"
	"strconv"

	"telx/internal/models"
	"telx/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a numeric path parameter into a uint.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// parsePagination reads 1-indexed page and per_page query params. Bounds are
// normalized by the service layer.
func parsePagination(c *fiber.Ctx) (page, perPage int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	perPage, _ = strconv.Atoi(c.Query("per_page", strconv.Itoa(service.DefaultPerPage)))
	return page, perPage
}

// respondServiceError maps an application error to its HTTP status.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case "NOT_FOUND":
		status = fiber.StatusNotFound
	case "VALIDATION_ERROR", "EMPTY_CONTENT", "CONTENT_TOO_LONG", "SELF_FOLLOW_NOT_ALLOWED":
		status = fiber.StatusBadRequest
	case "UNAUTHENTICATED", "AUTH_FAILED":
		status = fiber.StatusUnauthorized
	}
	return models.RespondWithError(c, status, appErr)
}
