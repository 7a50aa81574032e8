package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/stores"
)

type LessonHandler struct {
	lessons *stores.LessonStore
	ds      *dataset.Dataset
}

func NewLessonHandler(lessons *stores.LessonStore, ds *dataset.Dataset) *LessonHandler {
	return &LessonHandler{lessons: lessons, ds: ds}
}

// ListLessons filters the catalogue by the optional category and q query
// parameters. The parameters go straight into the filter call; nothing is
// staged in shared store state.
func (h *LessonHandler) ListLessons(c *fiber.Ctx) error {
	category := models.LessonCategory(c.Query("category"))
	if category != "" && !category.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown category"})
	}
	return c.JSON(h.lessons.Filter(category, c.Query("q")))
}

func (h *LessonHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(models.LessonCategories())
}

func (h *LessonHandler) GetLesson(c *fiber.Ctx) error {
	lesson := h.ds.LessonByID(c.Params("lessonId"))
	if lesson == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	return c.JSON(fiber.Map{
		"lesson":     lesson,
		"instructor": h.ds.UserByID(lesson.InstructorID),
		"reviews":    h.ds.ReviewsByLesson(lesson.ID),
	})
}

func (h *LessonHandler) ToggleFavorite(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	if h.ds.LessonByID(lessonID) == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	userID := currentUserID(c)
	h.lessons.ToggleFavorite(userID, lessonID)
	return c.JSON(fiber.Map{
		"favorited": h.lessons.IsFavorite(userID, lessonID),
		"favorites": h.lessons.FavoriteIDs(userID),
	})
}

func (h *LessonHandler) ListFavorites(c *fiber.Ctx) error {
	return c.JSON(h.lessons.FavoriteLessons(currentUserID(c)))
}

func (h *LessonHandler) RefreshLessons(c *fiber.Ctx) error {
	h.lessons.RefreshLessons()
	return c.JSON(h.lessons.Lessons())
}

func (h *LessonHandler) ListInstructors(c *fiber.Ctx) error {
	return c.JSON(h.ds.Instructors())
}
