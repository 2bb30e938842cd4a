package handlers

import (
	"github.com/artatlas/atlas-api/internal/auth"
	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// Logout always reports success so the client clears its state even when
// token revocation fails server-side.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	_ = c.BodyParser(&req)
	h.authService.Logout(&req)
	return c.JSON(fiber.Map{"success": true, "message": "Logout successful!"})
}

// Me returns the current session's user, re-read from storage so role or
// status changes made after token issuance are visible.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := auth.CurrentActor(c)
	if actor == nil {
		return unauthorized(c)
	}

	user, err := h.authService.GetUser(actor.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "user": services.UserToResponse(user)})
}
