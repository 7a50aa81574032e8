package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/handlers"
	"github.com/stepsync/dance_marketplace/middleware"
)

// MessagingRoutes mounts the REST thread endpoints, and the websocket
// endpoint only when the brand has chat enabled.
func MessagingRoutes(app *fiber.App, h *handlers.MessageHandler, chatEnabled bool) {
	api := app.Group("/api/v1")

	conversations := api.Group("/conversations", middleware.Protected())
	conversations.Get("", h.GetConversations)
	conversations.Get("/:userId/messages", h.GetConversationMessages)

	api.Post("/messages", middleware.Protected(), h.SendMessage)

	if !chatEnabled {
		return
	}
	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(h.ServeWs))
}
