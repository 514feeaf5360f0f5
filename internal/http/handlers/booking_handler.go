package handlers

import (
	"mobilehut/internal/services"

	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Bookings *services.BookingService
}

// POST /bookings
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	doc, err := bodyDoc(c)
	if err != nil {
		return err
	}
	ack, err := h.Bookings.Create(c.UserContext(), doc)
	if err != nil {
		return fail(c, "bookings.create.fail", err, nil)
	}
	return c.JSON(ack)
}

// GET /bookings?email= (buyer side)
func (h *BookingHandler) ByBuyer(c *fiber.Ctx) error {
	email := c.Query("email")
	out, err := h.Bookings.ByBuyer(c.UserContext(), email)
	if err != nil {
		return fail(c, "bookings.buyer.fail", err, map[string]any{"email": email})
	}
	return c.JSON(out)
}

// GET /bookings/seller?email=
func (h *BookingHandler) BySeller(c *fiber.Ctx) error {
	email := c.Query("email")
	out, err := h.Bookings.BySeller(c.UserContext(), email)
	if err != nil {
		return fail(c, "bookings.seller.fail", err, map[string]any{"email": email})
	}
	return c.JSON(out)
}

// GET /bookings/:id answers null for an unknown id.
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := h.Bookings.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "bookings.get.fail", err, map[string]any{"booking_id": id})
	}
	if doc == nil {
		return c.JSON(nil)
	}
	return c.JSON(doc)
}
