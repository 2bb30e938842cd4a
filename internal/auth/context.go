// Package auth extracts the authenticated caller from request context.
package auth

import (
	"strconv"

	"github.com/artatlas/atlas-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// CurrentActor resolves the caller from the parsed JWT in context locals.
// Returns nil for anonymous requests.
func CurrentActor(c *fiber.Ctx) *services.Actor {
	claims := tokenClaims(c)
	if claims == nil {
		return nil
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return nil
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &services.Actor{
		ID:       uint(id),
		Username: username,
		Role:     role,
	}
}

// CurrentEmail returns the email claim of the caller, or "".
func CurrentEmail(c *fiber.Ctx) string {
	claims := tokenClaims(c)
	if claims == nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

func tokenClaims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}
