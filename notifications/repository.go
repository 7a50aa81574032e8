package notifications

import (
	"sort"
	"sync"
	"time"

	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/utils"
)

// Repository is the single owner of notification records. Every read and
// every read-state flip goes through it, so there is no second copy to
// drift out of sync.
type Repository interface {
	ForUser(userID string) []models.Notification
	MarkRead(id string) bool
	MarkAllRead(userID string) int
	Create(n models.Notification) models.Notification
}

// InMemoryRepository holds the notification collection seeded from the
// bundled dataset. The only production implementation.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []models.Notification
}

func NewInMemoryRepository(ds *dataset.Dataset) *InMemoryRepository {
	return &InMemoryRepository{items: ds.Notifications()}
}

// ForUser returns the user's notifications, newest first.
func (r *InMemoryRepository) ForUser(userID string) []models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *InMemoryRepository) MarkRead(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].IsRead = true
			return true
		}
	}
	return false
}

// MarkAllRead flips every unread notification for the user and reports how
// many changed. Calling it again is a harmless no-op.
func (r *InMemoryRepository) MarkAllRead(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := 0
	for i := range r.items {
		if r.items[i].UserID == userID && !r.items[i].IsRead {
			r.items[i].IsRead = true
			changed++
		}
	}
	return changed
}

func (r *InMemoryRepository) Create(n models.Notification) models.Notification {
	if n.ID == "" {
		n.ID = utils.GenerateNotificationID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	return n
}
