package middleware

import (
	"strings"

	"github.com/artatlas/atlas-api/internal/auth"
	"github.com/artatlas/atlas-api/internal/config"
	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired checks, in order: the operator admin token header, the
// config-based admin email list, the role claim, and finally the role stored
// on the user row (in case the role changed after the token was issued).
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		actor := auth.CurrentActor(c)
		if actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
		}

		if actor.IsAdmin() {
			return c.Next()
		}
		if email := auth.CurrentEmail(c); email != "" && contains(adminEmails, email) {
			return c.Next()
		}

		var user models.User
		if err := db.First(&user, actor.ID).Error; err == nil && user.Role == models.RoleAdmin {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.Error("Admin access required"))
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
