package handlers

import (
	applog "mobilehut/internal/log"
	"mobilehut/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /product?email=
func (h *ProductHandler) BySeller(c *fiber.Ctx) error {
	email := c.Query("email")
	products, err := h.Catalog.ProductsBySeller(c.UserContext(), email)
	if err != nil {
		return fail(c, "products.seller.fail", err, map[string]any{"email": email})
	}
	return c.JSON(products)
}

// POST /product
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	doc, err := bodyDoc(c)
	if err != nil {
		return err
	}
	ack, err := h.Catalog.CreateProduct(c.UserContext(), doc)
	if err != nil {
		return fail(c, "products.create.fail", err, nil)
	}
	return c.JSON(ack)
}

// PUT /product/:id flags the product for advertising.
func (h *ProductHandler) Advertise(c *fiber.Ctx) error {
	id := c.Params("id")
	res, err := h.Catalog.AdvertiseProduct(c.UserContext(), id)
	if err != nil {
		return fail(c, "products.advertise.fail", err, map[string]any{"product_id": id})
	}
	return c.JSON(res)
}

// DELETE /product/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	res, err := h.Catalog.DeleteProduct(c.UserContext(), id)
	if err != nil {
		return fail(c, "products.delete.fail", err, map[string]any{"product_id": id})
	}
	if res.DeletedCount == 0 {
		applog.Info(c, "products.delete.miss", map[string]any{"product_id": id})
	} else {
		applog.Audit(c, "products.delete", map[string]any{"product_id": id, "by": actor(c)})
	}
	return c.JSON(res)
}

// GET /advertise lists advertised products awaiting payment.
func (h *ProductHandler) Advertised(c *fiber.Ctx) error {
	products, err := h.Catalog.AdvertisedProducts(c.UserContext())
	if err != nil {
		return fail(c, "products.advertised.fail", err, nil)
	}
	return c.JSON(products)
}

// POST /advertise
func (h *ProductHandler) CreateAdvertisement(c *fiber.Ctx) error {
	doc, err := bodyDoc(c)
	if err != nil {
		return err
	}
	ack, err := h.Catalog.CreateAdvertisement(c.UserContext(), doc)
	if err != nil {
		return fail(c, "advertise.create.fail", err, nil)
	}
	return c.JSON(ack)
}
