package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid
// WebSocket connection attempts and stashes the client ID where the
// post-upgrade handler can reach it. The connection context after the
// upgrade is different from the upgrade context, so Locals set by
// earlier middleware must be re-stored under a ws-specific key.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		clientID, _ := c.Locals("clientID").(string)
		if clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "client ID is required",
			})
		}
		c.Locals("wsClientID", clientID)

		return c.Next()
	}
}
