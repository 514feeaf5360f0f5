package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mobilehut/internal/domain"
)

// Register mounts every route. With requireAuth the token gate guards the
// routes that write; otherwise the whole surface is open.
func Register(r fiber.Router, d *Deps, requireAuth bool) {
	guard := func(c *fiber.Ctx) error { return c.Next() }
	if requireAuth {
		guard = VerifyToken(d.Auth)
	}

	r.Get("/", d.HealthHandler.Root)
	r.Get("/healthz", d.HealthHandler.Healthz)
	r.Get("/jwt", d.AuthHandler.Token)

	// Catalog
	r.Get("/category", d.CategoryHandler.List)
	r.Get("/category/:id", d.CategoryHandler.Products)
	r.Get("/product", d.ProductHandler.BySeller)
	r.Post("/product", guard, d.ProductHandler.Create)
	r.Put("/product/:id", guard, d.ProductHandler.Advertise)
	r.Delete("/product/:id", guard, d.ProductHandler.Delete)
	r.Get("/advertise", d.ProductHandler.Advertised)
	r.Post("/advertise", guard, d.ProductHandler.CreateAdvertisement)

	// Bookings
	r.Post("/bookings", guard, d.BookingHandler.Create)
	r.Get("/bookings", d.BookingHandler.ByBuyer)
	r.Get("/bookings/seller", d.BookingHandler.BySeller)
	r.Get("/bookings/:id", d.BookingHandler.Get)

	// Payments
	r.Post("/create-payment-intent", guard, d.PaymentHandler.CreateIntent)
	r.Post("/payments", guard, d.PaymentHandler.Record)
	r.Get("/payments", d.PaymentHandler.BySeller)

	// Users (sign-up stays open)
	r.Post("/users", d.UserHandler.Create)
	r.Get("/users", d.UserHandler.Split)
	r.Delete("/users/:id", guard, d.UserHandler.Delete)
	r.Put("/users/verify/:id", guard, d.UserHandler.Verify)
	r.Get("/users/admin/:email", d.UserHandler.RoleCheck(domain.RoleAdmin, "isAdmin"))
	r.Get("/users/seller/:email", d.UserHandler.RoleCheck(domain.RoleSeller, "isSeller"))
	r.Get("/users/buyer/:email", d.UserHandler.RoleCheck(domain.RoleBuyer, "isBuyer"))
}
