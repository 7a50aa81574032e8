package stores

import (
	"time"

	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
)

// fixtureDataset is the small deterministic world most store tests run in:
// one student, two instructors (one missing currency and avatar), three
// lessons and a seeded booking.
func fixtureDataset() *dataset.Dataset {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return dataset.New(
		[]models.User{
			{ID: "S1", Name: "Student One", Email: "s1@example.com", Role: models.RoleStudent, Avatar: "https://img/s1.png", CreatedAt: created},
			{ID: "I1", Name: "Instructor One", Email: "i1@example.com", Role: models.RoleInstructor, Avatar: "", CreatedAt: created},
			{ID: "I2", Name: "Instructor Two", Email: "i2@example.com", Role: models.RoleInstructor, Avatar: "https://img/i2.png", Currency: "EUR", CreatedAt: created},
		},
		[]models.Lesson{
			{ID: "L1", Title: "Beginner Salsa Night", Description: "First steps on the social floor.", Category: models.CategorySalsa, InstructorID: "I1", Price: 150, Duration: 60, IsActive: true, CreatedAt: created},
			{ID: "L2", Title: "Salsa Shines Lab", Description: "Footwork drills for improvers.", Category: models.CategorySalsa, InstructorID: "I1", Price: 180, Duration: 90, IsActive: true, CreatedAt: created},
			{ID: "L3", Title: "Ballet Stretch", Description: "Beginner flexibility for dancers.", Category: models.CategoryBallet, InstructorID: "I2", Price: 100, Duration: 45, IsActive: false, CreatedAt: created},
		},
		nil,
		[]models.Booking{
			{ID: "B1", LessonID: "L2", StudentID: "S1", InstructorID: "I1", Date: "2025-02-01", Time: "19:00", Status: models.BookingConfirmed, Price: 180, PaymentStatus: models.PaymentPaid, CreatedAt: created},
		},
		nil,
		[]models.Notification{
			{ID: "N1", UserID: "S1", Title: "Welcome", Message: "Hi!", Type: models.NotificationSystem, IsRead: false, CreatedAt: created},
			{ID: "N2", UserID: "S1", Title: "Booking confirmed", Message: "See you there", Type: models.NotificationBookingConfirmed, IsRead: false, CreatedAt: created.Add(time.Hour)},
			{ID: "N3", UserID: "I1", Title: "New booking", Message: "S1 booked L2", Type: models.NotificationNewBooking, IsRead: true, CreatedAt: created},
		},
	)
}
