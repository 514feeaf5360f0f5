package handlers_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"mobilehut/internal/http/handlers"
)

// Internal failures surface as a fixed JSON message.
func TestErrorHandlerHidesInternals(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())
	app.Get("/err", func(c *fiber.Ctx) error {
		return errors.New("db timeout: secret trace")
	})
	app.Get("/fiber500", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "pool exhausted: secret")
	})

	for _, path := range []string{"/err", "/fiber500"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("test request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusInternalServerError {
			t.Fatalf("%s: expected 500, got %d", path, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		s := string(body)
		if !strings.Contains(s, "internal server error") {
			t.Fatalf("%s: generic message missing; body=%s", path, s)
		}
		if strings.Contains(s, "secret") {
			t.Fatalf("%s: internal details leaked; body=%s", path, s)
		}
	}
}

func TestErrorHandlerKeepsClientCodes(t *testing.T) {
	env := newTestApp(t, false)
	code, body := env.do(t, "GET", "/no/such/route", nil)
	mustStatus(t, code, 404, body)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTeapot {
		t.Fatalf("expected 418, got %d", resp.StatusCode)
	}
}

func TestProviderFailureIs500(t *testing.T) {
	env := newTestApp(t, false)
	env.provider.err = errors.New("stripe: api key sk_live_secret invalid")
	code, body := env.do(t, "POST", "/create-payment-intent", map[string]any{"price": 10})
	mustStatus(t, code, 500, body)
	if strings.Contains(string(body), "sk_live") {
		t.Fatalf("provider error leaked: %s", body)
	}
}

func TestHealth(t *testing.T) {
	env := newTestApp(t, false)
	code, body := env.do(t, "GET", "/", nil)
	mustStatus(t, code, 200, body)
	if string(body) != "Mobile hut server is running" {
		t.Fatalf("unexpected root body: %q", body)
	}
	code, body = env.do(t, "GET", "/healthz", nil)
	mustStatus(t, code, 200, body)
	if got := decode[map[string]bool](t, body); !got["ok"] {
		t.Fatalf("want ok, got %s", body)
	}
}
