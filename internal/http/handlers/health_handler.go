package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mobilehut/internal/docstore"
	applog "mobilehut/internal/log"
)

type HealthHandler struct {
	Store docstore.Store
}

// GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Mobile hut server is running")
}

// GET /healthz
func (h *HealthHandler) Healthz(c *fiber.Ctx) error {
	if err := h.Store.Ping(c.UserContext()); err != nil {
		c.Status(fiber.StatusServiceUnavailable)
		applog.Error(c, "health.store.fail", err, nil)
		return c.JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true})
}
