package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "mobilehut/internal/log"
	"mobilehut/internal/services"
)

// VerifyToken checks the bearer token. A missing header is 401, a bad or
// expired token is 403. Decoded claims land in Locals("decoded").
func VerifyToken(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get(fiber.HeaderAuthorization)
		if h == "" {
			c.Status(fiber.StatusUnauthorized)
			applog.Security(c, "access.denied.missing_token", nil)
			return c.SendString("unauthorized access")
		}
		_, tok, _ := strings.Cut(h, " ")
		claims, err := auth.Verify(tok)
		if err != nil {
			c.Status(fiber.StatusForbidden)
			applog.Security(c, "access.denied.token", map[string]any{"reason": err.Error()})
			return c.JSON(fiber.Map{"message": "forbidden access"})
		}
		c.Locals("decoded", claims)
		return c.Next()
	}
}

// Claims returns the decoded token claims, or nil on unguarded routes.
func Claims(c *fiber.Ctx) *services.Claims {
	cl, _ := c.Locals("decoded").(*services.Claims)
	return cl
}

// actor names the token holder for audit lines; "anonymous" when the gate is off.
func actor(c *fiber.Ctx) string {
	if cl := Claims(c); cl != nil && cl.Email != "" {
		return cl.Email
	}
	return "anonymous"
}

// StoreTimeout bounds every downstream call made with c.UserContext().
func StoreTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
