package stores

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/notifications"
	"github.com/stepsync/dance_marketplace/utils"
)

var (
	ErrNotAuthenticated = errors.New("no authenticated user")
	ErrNotStudent       = errors.New("only students can book lessons")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrPriceMismatch    = errors.New("quoted price does not match the lesson price")
)

// BookingStore owns the booking list, seeded from the dataset. Callers pass
// the acting user id per call; the store never reads session state.
type BookingStore struct {
	mu       sync.RWMutex
	ds       *dataset.Dataset
	notifier notifications.Repository
	bookings []models.Booking
	selected *models.Booking
}

func NewBookingStore(ds *dataset.Dataset, notifier notifications.Repository) *BookingStore {
	return &BookingStore{
		ds:       ds,
		notifier: notifier,
		bookings: ds.Bookings(),
	}
}

// UserBookings returns the bookings visible to the given user: a student
// sees bookings they made, an instructor sees bookings on their lessons.
// Unknown users see nothing.
func (s *BookingStore) UserBookings(userID string) []models.Booking {
	user := s.ds.UserByID(userID)
	if user == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if user.IsInstructor() && b.InstructorID == user.ID {
			out = append(out, b)
		} else if !user.IsInstructor() && b.StudentID == user.ID {
			out = append(out, b)
		}
	}
	return out
}

// CreateBooking books a lesson slot for the student. The quoted price must
// equal the lesson's current price; the matching value is then snapshotted
// onto the booking so later lesson price edits do not rewrite history.
// There is no idempotency key: submitting twice books twice.
func (s *BookingStore) CreateBooking(studentID, lessonID, date, timeOfDay string, price float64) (models.Booking, error) {
	student := s.ds.UserByID(studentID)
	if student == nil {
		return models.Booking{}, ErrNotAuthenticated
	}
	if student.IsInstructor() {
		return models.Booking{}, ErrNotStudent
	}
	lesson := s.ds.LessonByID(lessonID)
	if lesson == nil {
		return models.Booking{}, ErrLessonNotFound
	}
	if price != lesson.Price {
		return models.Booking{}, fmt.Errorf("%w: quoted %.2f, lesson is %.2f", ErrPriceMismatch, price, lesson.Price)
	}

	booking := models.Booking{
		ID:            utils.GenerateBookingID(),
		LessonID:      lesson.ID,
		StudentID:     student.ID,
		InstructorID:  lesson.InstructorID,
		Date:          date,
		Time:          timeOfDay,
		Status:        models.BookingPending,
		Price:         price,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now(),
	}

	s.mu.Lock()
	s.bookings = append(s.bookings, booking)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Create(models.Notification{
			UserID:    lesson.InstructorID,
			Title:     "New booking request",
			Message:   fmt.Sprintf("%s booked %s.", student.Name, lesson.Title),
			Type:      models.NotificationNewBooking,
			LessonID:  lesson.ID,
			BookingID: booking.ID,
		})
	}
	return booking, nil
}

// UpdateBookingStatus replaces the status on the matching booking. A silent
// no-op when the id is unknown.
func (s *BookingStore) UpdateBookingStatus(id string, status models.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return
		}
	}
}

// UpdatePaymentStatus flips the payment flag on the matching booking, same
// silent-no-op contract as UpdateBookingStatus.
func (s *BookingStore) UpdatePaymentStatus(id string, status models.PaymentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].PaymentStatus = status
			return
		}
	}
}

func (s *BookingStore) BookingByID(id string) *models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b
		}
	}
	return nil
}

func (s *BookingStore) All() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingStore) SetSelectedBooking(b *models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b == nil {
		s.selected = nil
		return
	}
	selected := *b
	s.selected = &selected
}

func (s *BookingStore) SelectedBooking() *models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	b := *s.selected
	return &b
}
