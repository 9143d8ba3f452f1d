package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureClientID makes sure every request carries a client ID. Clients
// may present one via the X-Client-ID header or the clientId query
// parameter; otherwise one is minted for them and echoed back in the
// response so the client can reuse it. The ID keys the WebSocket
// registry; it carries no session state.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		}

		c.Locals("clientID", clientID)
		c.Set("X-Client-ID", clientID)
		return c.Next()
	}
}
