package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/backend"
	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/notifications"
	"github.com/stepsync/dance_marketplace/stores"
)

type PaymentHandler struct {
	backend  backend.Backend
	bookings *stores.BookingStore
	ds       *dataset.Dataset
	notifier notifications.Repository
}

func NewPaymentHandler(be backend.Backend, bookings *stores.BookingStore, ds *dataset.Dataset, notifier notifications.Repository) *PaymentHandler {
	return &PaymentHandler{backend: be, bookings: bookings, ds: ds, notifier: notifier}
}

type ProcessPaymentRequest struct {
	BookingID       string `json:"booking_id" validate:"required"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// ProcessPayment charges the booking's snapshotted price. A successful
// charge confirms the booking and notifies the student.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	var req ProcessPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking := h.bookings.BookingByID(req.BookingID)
	if booking == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.StudentID != currentUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your booking"})
	}
	if booking.PaymentStatus == models.PaymentPaid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking is already paid"})
	}

	currency := models.DefaultCurrency
	if instructor := h.ds.UserByID(booking.InstructorID); instructor != nil && instructor.Currency != "" {
		currency = instructor.Currency
	}

	result, err := h.backend.Payments().ProcessPayment(c.Context(), booking.Price, currency, req.PaymentMethodID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment could not be processed"})
	}
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": result.Error})
	}

	h.bookings.UpdatePaymentStatus(booking.ID, models.PaymentPaid)
	h.bookings.UpdateBookingStatus(booking.ID, models.BookingConfirmed)

	if h.notifier != nil {
		h.notifier.Create(models.Notification{
			UserID:    booking.StudentID,
			Title:     "Payment received",
			Message:   fmt.Sprintf("We received your payment of %.2f %s.", booking.Price, currency),
			Type:      models.NotificationPayment,
			BookingID: booking.ID,
		})
	}

	return c.JSON(fiber.Map{
		"result":  result,
		"booking": h.bookings.BookingByID(booking.ID),
	})
}
