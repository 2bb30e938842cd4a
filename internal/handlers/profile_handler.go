package handlers

import (
	"github.com/artatlas/atlas-api/internal/auth"
	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	profile, err := h.profileService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "profile": profile})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	actor := auth.CurrentActor(c)
	if actor == nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.profileService.Update(&req, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Profile updated successfully"})
}
