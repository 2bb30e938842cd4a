package handlers

import (
	"strconv"

	"github.com/artatlas/atlas-api/internal/auth"
	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EntryHandler struct {
	entryService *services.EntryService
}

func NewEntryHandler(entryService *services.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

func (h *EntryHandler) Create(c *fiber.Ctx) error {
	actor := auth.CurrentActor(c)
	if actor == nil {
		return unauthorized(c)
	}

	var req dto.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.entryService.Create(&req, actor)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Art entry created successfully!",
		"entry_id": entry.ID,
		"status":   entry.Status,
	})
}

func (h *EntryHandler) List(c *fiber.Ctx) error {
	viewer := auth.CurrentActor(c)

	filters := dto.EntryFilters{
		Status:  c.Query("status"),
		ArtType: c.Query("art_type"),
	}
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid user_id")
		}
		filters.UserID = uint(id)
	}

	entries, err := h.entryService.List(filters, viewer)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
		"count":   len(entries),
	})
}

func (h *EntryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid entry ID")
	}

	entry, err := h.entryService.Get(id, auth.CurrentActor(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "entry": entry})
}

func (h *EntryHandler) Update(c *fiber.Ctx) error {
	actor := auth.CurrentActor(c)
	if actor == nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid entry ID")
	}

	var req dto.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.entryService.Update(id, &req, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Art entry updated successfully!"})
}

func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	actor := auth.CurrentActor(c)
	if actor == nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid entry ID")
	}

	if err := h.entryService.Delete(id, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Art entry deleted successfully!"})
}

func (h *EntryHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid entry ID")
	}

	if err := h.entryService.Approve(id, auth.CurrentActor(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Art entry approved successfully!"})
}

func (h *EntryHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid entry ID")
	}

	var req dto.RejectEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.entryService.Reject(id, req.Reason, auth.CurrentActor(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Art entry rejected."})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
