package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/handlers"
	"github.com/stepsync/dance_marketplace/middleware"
)

func ProfileRoutes(app *fiber.App, h *handlers.ProfileHandler) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", h.GetProfile)
	profile.Put("", h.UpdateProfile)
	profile.Put("/currency", middleware.InstructorRequired(), h.UpdateCurrency)
	profile.Post("/avatar", h.UploadAvatar)
}
