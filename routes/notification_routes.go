package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/handlers"
	"github.com/stepsync/dance_marketplace/middleware"
)

func NotificationRoutes(app *fiber.App, h *handlers.NotificationHandler) {
	api := app.Group("/api/v1")

	notifs := api.Group("/notifications", middleware.Protected())
	notifs.Get("", h.ListNotifications)
	notifs.Post("/read-all", h.MarkAllAsRead)
	notifs.Post("/:notificationId/read", h.MarkAsRead)
}
