package models

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking records a student's reservation of a lesson slot. Date is an ISO
// calendar date ("2025-01-10") and Time a 24h clock string ("18:00"),
// matching the bundled dataset format. Price is a snapshot taken at booking
// time and is not re-derived when the lesson's price changes later.
type Booking struct {
	ID            string        `json:"id"`
	LessonID      string        `json:"lessonId"`
	StudentID     string        `json:"studentId"`
	InstructorID  string        `json:"instructorId"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Status        BookingStatus `json:"status"`
	Price         float64       `json:"price"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// StartsAt combines Date and Time into a wall-clock instant in the local
// zone. Returns an error when either field is malformed.
func (b *Booking) StartsAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, time.Local)
}
