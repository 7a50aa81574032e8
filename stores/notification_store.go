package stores

import (
	"sync"

	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/notifications"
)

// NotificationStore presents one user's notifications. It never mutates a
// private copy: every write goes through the repository and the visible
// list is re-read from it, so the repository stays the single source of
// truth for read-state.
type NotificationStore struct {
	mu     sync.RWMutex
	repo   notifications.Repository
	userID string
	items  []models.Notification
	unread int
}

func NewNotificationStore(repo notifications.Repository) *NotificationStore {
	return &NotificationStore{repo: repo}
}

// LoadNotifications selects the user whose notifications the store shows.
// Loading is explicit; the store does not observe repository writes made
// after the load.
func (s *NotificationStore) LoadNotifications(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.reload()
}

func (s *NotificationStore) reload() {
	s.items = s.repo.ForUser(s.userID)
	s.unread = 0
	for _, n := range s.items {
		if !n.IsRead {
			s.unread++
		}
	}
}

func (s *NotificationStore) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *NotificationStore) Unread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

func (s *NotificationStore) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo.MarkRead(id)
	s.reload()
}

// MarkAllAsRead is idempotent: a second call finds nothing unread and
// leaves the count at zero.
func (s *NotificationStore) MarkAllAsRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo.MarkAllRead(userID)
	if s.userID == "" {
		s.userID = userID
	}
	s.reload()
}
