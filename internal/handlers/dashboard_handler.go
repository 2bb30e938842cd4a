package handlers

import (
	"strconv"

	"github.com/artatlas/atlas-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin dashboard widgets.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "statistics": stats})
}

func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	activities, err := h.dashboardService.RecentActivity(limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "activities": activities})
}
