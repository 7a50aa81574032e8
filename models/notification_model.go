package models

import (
	"time"
)

type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingReminder  NotificationType = "booking_reminder"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationNewBooking       NotificationType = "new_booking"
	NotificationNewMessage       NotificationType = "new_message"
	NotificationPayment          NotificationType = "payment"
	NotificationSystem           NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
	LessonID  string           `json:"lessonId,omitempty"`
	BookingID string           `json:"bookingId,omitempty"`
	ActionURL string           `json:"actionUrl,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
