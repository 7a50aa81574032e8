package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/configs"
)

func PublicRoutes(app *fiber.App, brand configs.BrandConfig) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/api/v1/brand", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":         brand.Name,
			"display_name": brand.DisplayName,
			"features": fiber.Map{
				"chat":          brand.Features.Chat,
				"notifications": brand.Features.Notifications,
			},
		})
	})
}
