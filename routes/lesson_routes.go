package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/handlers"
	"github.com/stepsync/dance_marketplace/middleware"
)

func LessonRoutes(app *fiber.App, h *handlers.LessonHandler) {
	api := app.Group("/api/v1")

	lessons := api.Group("/lessons")
	lessons.Get("", h.ListLessons)
	lessons.Get("/categories", h.ListCategories)
	lessons.Get("/favorites", middleware.Protected(), h.ListFavorites)
	lessons.Post("/refresh", middleware.Protected(), h.RefreshLessons)
	lessons.Get("/:lessonId", h.GetLesson)
	lessons.Post("/:lessonId/favorite", middleware.Protected(), h.ToggleFavorite)

	api.Get("/instructors", h.ListInstructors)
}
