package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"mobilehut/internal/docstore"
	applog "mobilehut/internal/log"
)

const internalMessage = "internal server error"

// fail logs the failure under action and sends the uniform 500 body.
func fail(c *fiber.Ctx, action string, err error, fields map[string]any) error {
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, action, err, fields)
	return c.JSON(fiber.Map{"message": internalMessage})
}

// ErrorHandler keeps fiber.Error codes (404, 413, ...) and turns anything else
// into a 500 without leaking the cause.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, "server.error", err, nil)
	return c.JSON(fiber.Map{"message": internalMessage})
}

// bodyDoc decodes the JSON body as a schemaless document. Numbers stay
// json.Number so integers are stored as integers. An empty body is an empty
// document. Bodies that are not a JSON object are rejected.
func bodyDoc(c *fiber.Ctx) (docstore.Document, error) {
	doc := docstore.Document{}
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return doc, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil || doc == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid json body")
	}
	return doc, nil
}

// NotFound is the catch-all mounted after every route.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
}
