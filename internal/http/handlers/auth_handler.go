package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mobilehut/internal/log"
	"mobilehut/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// GET /jwt?email=
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	email := c.Query("email")
	tok, err := h.Auth.IssueToken(c.UserContext(), email)
	if errors.Is(err, services.ErrUnknownUser) {
		c.Status(fiber.StatusForbidden)
		log.Security(c, "auth.token.denied", map[string]any{"email": email})
		return c.JSON(fiber.Map{"accessToken": ""})
	}
	if err != nil {
		return fail(c, "auth.token.fail", err, map[string]any{"email": email})
	}
	return c.JSON(fiber.Map{"accessToken": tok})
}
