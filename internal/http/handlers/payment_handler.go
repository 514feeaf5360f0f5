package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mobilehut/internal/log"
	"mobilehut/internal/services"
)

type PaymentHandler struct {
	Payments *services.PaymentService
}

type intentRequest struct {
	Price float64 `json:"price"`
}

// POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var in intentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid json body")
		}
	}
	secret, err := h.Payments.CreateIntent(c.UserContext(), in.Price)
	if err != nil {
		return fail(c, "payments.intent.fail", err, map[string]any{"price": in.Price})
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}

// POST /payments stores the payment and settles booking and product. Only
// the insert can fail the request; cascade failures are logged.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	doc, err := bodyDoc(c)
	if err != nil {
		return err
	}
	ack, cs, err := h.Payments.Record(c.UserContext(), doc)
	if err != nil {
		return fail(c, "payments.record.fail", err, nil)
	}
	if cs.BookingErr != nil {
		applog.Error(c, "payments.cascade.booking.fail", cs.BookingErr, map[string]any{"booking_id": cs.BookingID, "payment_id": ack.InsertedID})
	}
	if cs.ProductErr != nil {
		applog.Error(c, "payments.cascade.product.fail", cs.ProductErr, map[string]any{"product_id": cs.ProductID, "payment_id": ack.InsertedID})
	}
	if cs.PublishErr != nil {
		applog.Error(c, "payments.event.fail", cs.PublishErr, map[string]any{"payment_id": ack.InsertedID})
	}
	return c.JSON(ack)
}

// GET /payments?email= (seller side)
func (h *PaymentHandler) BySeller(c *fiber.Ctx) error {
	email := c.Query("email")
	out, err := h.Payments.Payments.ListBySeller(c.UserContext(), email)
	if err != nil {
		return fail(c, "payments.seller.fail", err, map[string]any{"email": email})
	}
	return c.JSON(out)
}
