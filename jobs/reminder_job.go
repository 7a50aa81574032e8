package jobs

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/notifications"
	"github.com/stepsync/dance_marketplace/stores"
)

// ReminderJob creates a booking_reminder notification for students whose
// confirmed booking starts within the next hour. Each booking is reminded
// at most once per process lifetime.
type ReminderJob struct {
	bookings *stores.BookingStore
	ds       *dataset.Dataset
	notifier notifications.Repository

	mu       sync.Mutex
	reminded map[string]struct{}
}

func NewReminderJob(bookings *stores.BookingStore, ds *dataset.Dataset, notifier notifications.Repository) *ReminderJob {
	return &ReminderJob{
		bookings: bookings,
		ds:       ds,
		notifier: notifier,
		reminded: make(map[string]struct{}),
	}
}

func (j *ReminderJob) SendLessonReminders() {
	j.remindWindow(time.Now())
}

func (j *ReminderJob) remindWindow(now time.Time) {
	upper := now.Add(time.Hour)

	for _, booking := range j.bookings.All() {
		if booking.Status != models.BookingConfirmed {
			continue
		}
		startsAt, err := booking.StartsAt()
		if err != nil {
			log.Printf("Skipping reminder for booking %s: bad date/time: %v", booking.ID, err)
			continue
		}
		if startsAt.Before(now) || startsAt.After(upper) {
			continue
		}

		j.mu.Lock()
		_, seen := j.reminded[booking.ID]
		if !seen {
			j.reminded[booking.ID] = struct{}{}
		}
		j.mu.Unlock()
		if seen {
			continue
		}

		title := "Your lesson starts soon"
		body := fmt.Sprintf("Your lesson at %s is coming up.", booking.Time)
		if lesson := j.ds.LessonByID(booking.LessonID); lesson != nil {
			body = fmt.Sprintf("%s starts at %s.", lesson.Title, booking.Time)
		}
		j.notifier.Create(models.Notification{
			UserID:    booking.StudentID,
			Title:     title,
			Message:   body,
			Type:      models.NotificationBookingReminder,
			LessonID:  booking.LessonID,
			BookingID: booking.ID,
		})
		log.Printf("Sent lesson reminder for booking %s", booking.ID)
	}
}
