package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/stepsync/dance_marketplace/models"
)

//go:embed seed/*.json
var seedFS embed.FS

// Dataset is the bundled seed data loaded once at process start. Runtime
// mutations (registered users, sent messages) live only in memory and are
// lost on restart.
type Dataset struct {
	mu sync.RWMutex

	users         []models.User
	lessons       []models.Lesson
	reviews       []models.Review
	bookings      []models.Booking
	messages      []models.Message
	notifications []models.Notification
}

// Load decodes every seed collection into a fresh Dataset. Each caller gets
// an independent instance, so tests never share state.
func Load() (*Dataset, error) {
	d := &Dataset{}
	for name, target := range map[string]any{
		"users":         &d.users,
		"lessons":       &d.lessons,
		"reviews":       &d.reviews,
		"bookings":      &d.bookings,
		"messages":      &d.messages,
		"notifications": &d.notifications,
	} {
		raw, err := seedFS.ReadFile("seed/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("read seed collection %s: %w", name, err)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("decode seed collection %s: %w", name, err)
		}
	}
	return d, nil
}

// New builds a Dataset from explicit collections. Used by tests that need a
// small deterministic fixture instead of the bundled seed.
func New(users []models.User, lessons []models.Lesson, reviews []models.Review,
	bookings []models.Booking, messages []models.Message, notifications []models.Notification) *Dataset {
	return &Dataset{
		users:         users,
		lessons:       lessons,
		reviews:       reviews,
		bookings:      bookings,
		messages:      messages,
		notifications: notifications,
	}
}

func (d *Dataset) AddUser(u models.User) models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, u)
	return u
}

func (d *Dataset) AddMessage(m models.Message) models.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, m)
	return m
}

// ReplaceUser swaps the stored record matching u's id. Used when session
// defaulting (currency, avatar) or a profile edit changes the record.
func (d *Dataset) ReplaceUser(u models.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.users {
		if d.users[i].ID == u.ID {
			d.users[i] = u
			return
		}
	}
}

// Notifications hands the seeded notification collection to the repository
// that owns notification read-state. The dataset keeps no query path over
// notifications so there is exactly one copy of that fact.
func (d *Dataset) Notifications() []models.Notification {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Notification, len(d.notifications))
	copy(out, d.notifications)
	return out
}
