package handlers

import (
	"mobilehut/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// GET /category
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories(c.UserContext())
	if err != nil {
		return fail(c, "category.list.fail", err, nil)
	}
	return c.JSON(cats)
}

// GET /category/:id lists the products filed under the category.
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	catID := c.Params("id")
	products, err := h.Catalog.ProductsByCategory(c.UserContext(), catID)
	if err != nil {
		return fail(c, "category.products.fail", err, map[string]any{"category_id": catID})
	}
	return c.JSON(products)
}
