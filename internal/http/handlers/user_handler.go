package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mobilehut/internal/log"
	"mobilehut/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

// POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	doc, err := bodyDoc(c)
	if err != nil {
		return err
	}
	ack, err := h.Users.Create(c.UserContext(), doc)
	if err != nil {
		return fail(c, "users.create.fail", err, nil)
	}
	return c.JSON(ack)
}

// GET /users?buyer=&seller=
func (h *UserHandler) Split(c *fiber.Ctx) error {
	buyer, seller := c.Query("buyer"), c.Query("seller")
	out, err := h.Users.Split(c.UserContext(), buyer, seller)
	if err != nil {
		return fail(c, "users.split.fail", err, map[string]any{"buyer": buyer, "seller": seller})
	}
	return c.JSON(out)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	res, err := h.Users.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, "users.delete.fail", err, map[string]any{"user_id": id})
	}
	if res.DeletedCount > 0 {
		applog.Audit(c, "users.delete", map[string]any{"user_id": id, "by": actor(c)})
	}
	return c.JSON(res)
}

// PUT /users/verify/:id
func (h *UserHandler) Verify(c *fiber.Ctx) error {
	id := c.Params("id")
	res, err := h.Users.Verify(c.UserContext(), id)
	if err != nil {
		return fail(c, "users.verify.fail", err, map[string]any{"user_id": id})
	}
	applog.Audit(c, "users.verify", map[string]any{"user_id": id, "by": actor(c), "upserted": res.UpsertedID != nil})
	return c.JSON(res)
}

// RoleCheck answers {key: bool} for GET /users/{admin,seller,buyer}/:email.
func (h *UserHandler) RoleCheck(role, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Params("email")
		ok, err := h.Users.HasRole(c.UserContext(), email, role)
		if err != nil {
			return fail(c, "users.role.fail", err, map[string]any{"email": email, "role": role})
		}
		return c.JSON(fiber.Map{key: ok})
	}
}
