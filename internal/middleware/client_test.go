package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newClientIDApp() *fiber.App {
	app := fiber.New()
	app.Use(EnsureClientID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("clientID").(string))
	})
	return app
}

func TestEnsureClientIDMintsID(t *testing.T) {
	app := newClientIDApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	clientID := resp.Header.Get("X-Client-ID")
	if clientID == "" {
		t.Fatalf("expected a minted client ID header")
	}
	if _, err := uuid.Parse(clientID); err != nil {
		t.Fatalf("minted client ID %q is not a UUID: %v", clientID, err)
	}
}

func TestEnsureClientIDKeepsPresentedID(t *testing.T) {
	app := newClientIDApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Client-ID", "client-42")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Client-ID"); got != "client-42" {
		t.Fatalf("expected presented ID to be kept, got %q", got)
	}
}
