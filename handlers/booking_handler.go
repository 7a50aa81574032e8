package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/stores"
)

type BookingHandler struct {
	bookings *stores.BookingStore
}

func NewBookingHandler(bookings *stores.BookingStore) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type CreateBookingRequest struct {
	LessonID string  `json:"lesson_id" validate:"required"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string  `json:"time" validate:"required,datetime=15:04"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

func (h *BookingHandler) GetMyBookings(c *fiber.Ctx) error {
	return c.JSON(h.bookings.UserBookings(currentUserID(c)))
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := h.bookings.CreateBooking(currentUserID(c), req.LessonID, req.Date, req.Time, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotAuthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		case errors.Is(err, stores.ErrNotStudent):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only students can book lessons"})
		case errors.Is(err, stores.ErrLessonNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
		case errors.Is(err, stores.ErrPriceMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking := h.bookings.BookingByID(bookingID)
	if booking == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if !isParticipant(booking, currentUserID(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your booking"})
	}
	h.bookings.UpdateBookingStatus(bookingID, models.BookingStatus(req.Status))
	return c.JSON(h.bookings.BookingByID(bookingID))
}

func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	booking := h.bookings.BookingByID(c.Params("bookingId"))
	if booking == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if !isParticipant(booking, currentUserID(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your booking"})
	}
	h.bookings.SetSelectedBooking(booking)
	return c.JSON(booking)
}

// isParticipant reports whether the user is either side of the booking.
func isParticipant(b *models.Booking, userID string) bool {
	return userID != "" && (b.StudentID == userID || b.InstructorID == userID)
}
