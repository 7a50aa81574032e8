package dataset

import (
	"sort"
	"strings"

	"github.com/stepsync/dance_marketplace/models"
)

// Lookups return nil (or an empty slice) when nothing matches; a missing id
// is not an error at this layer and callers are expected to nil-check.

func (d *Dataset) UserByID(id string) *models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.users {
		if d.users[i].ID == id {
			u := d.users[i]
			return &u
		}
	}
	return nil
}

func (d *Dataset) UserByEmail(email string) *models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.users {
		if d.users[i].Email == email {
			u := d.users[i]
			return &u
		}
	}
	return nil
}

func (d *Dataset) Users() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

func (d *Dataset) Instructors() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.User
	for _, u := range d.users {
		if u.Role == models.RoleInstructor {
			out = append(out, u)
		}
	}
	return out
}

func (d *Dataset) LessonByID(id string) *models.Lesson {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.lessons {
		if d.lessons[i].ID == id {
			l := d.lessons[i]
			return &l
		}
	}
	return nil
}

func (d *Dataset) ActiveLessons() []models.Lesson {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Lesson
	for _, l := range d.lessons {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out
}

func (d *Dataset) LessonsByInstructor(instructorID string) []models.Lesson {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Lesson
	for _, l := range d.lessons {
		if l.InstructorID == instructorID {
			out = append(out, l)
		}
	}
	return out
}

// SearchLessons matches the query as a case-insensitive substring of the
// title, description or category. An empty query matches everything.
func (d *Dataset) SearchLessons(query string) []models.Lesson {
	d.mu.RLock()
	defer d.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Lesson
	for _, l := range d.lessons {
		if q == "" || lessonMatches(l, q) {
			out = append(out, l)
		}
	}
	return out
}

func lessonMatches(l models.Lesson, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(l.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(l.Description), loweredQuery) ||
		strings.Contains(strings.ToLower(string(l.Category)), loweredQuery)
}

func (d *Dataset) ReviewsByLesson(lessonID string) []models.Review {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Review
	for _, r := range d.reviews {
		if r.LessonID == lessonID {
			out = append(out, r)
		}
	}
	return out
}

func (d *Dataset) Bookings() []models.Booking {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Booking, len(d.bookings))
	copy(out, d.bookings)
	return out
}

func (d *Dataset) BookingsByStudent(studentID string) []models.Booking {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Booking
	for _, b := range d.bookings {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out
}

func (d *Dataset) BookingsByInstructor(instructorID string) []models.Booking {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Booking
	for _, b := range d.bookings {
		if b.InstructorID == instructorID {
			out = append(out, b)
		}
	}
	return out
}

// MessagesBetween returns both directions of a two-party thread, oldest
// first. The sort is stable so same-timestamp messages keep dataset order.
func (d *Dataset) MessagesBetween(userA, userB string) []models.Message {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Message
	for _, m := range d.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (d *Dataset) MarkMessagesRead(senderID, receiverID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.messages {
		if d.messages[i].SenderID == senderID && d.messages[i].ReceiverID == receiverID {
			d.messages[i].IsRead = true
		}
	}
}
