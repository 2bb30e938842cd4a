package handlers

import (
	"errors"
	"log/slog"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// fail maps service errors onto HTTP statuses and the {success:false}
// envelope. Unclassified errors become a generic 500; the detail goes to the
// log, never to the client.
func fail(c *fiber.Ctx, err error) error {
	var ve services.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(ve.Error()))
	}

	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error(err.Error()))

	case errors.Is(err, services.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("Access denied"))

	case errors.Is(err, services.ErrEntryNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrReportNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(err.Error()))

	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrCategoryCodeTaken),
		errors.Is(err, services.ErrCategoryInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.Error(err.Error()))
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal server error"))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Error(message))
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
}
