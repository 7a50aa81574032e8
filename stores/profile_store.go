package stores

import (
	"strings"
	"sync"

	"github.com/stepsync/dance_marketplace/utils"
)

// ProfileStore is an edit buffer: name and avatar are staged here while the
// user edits, decoupled from the session until ApplyChanges commits them.
// No validation and no conflict detection.
type ProfileStore struct {
	mu         sync.Mutex
	auth       *AuthStore
	tempName   string
	tempAvatar string
}

func NewProfileStore(auth *AuthStore) *ProfileStore {
	return &ProfileStore{auth: auth}
}

// LoadFromUser snapshots the current user's name and avatar into the
// buffer, substituting the default avatar when theirs is blank. A no-op
// when signed out.
func (s *ProfileStore) LoadFromUser() {
	user := s.auth.CurrentUser()
	if user == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempName = user.Name
	if strings.TrimSpace(user.Avatar) == "" {
		s.tempAvatar = utils.DefaultAvatar()
	} else {
		s.tempAvatar = user.Avatar
	}
}

func (s *ProfileStore) SetTempName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempName = name
}

func (s *ProfileStore) SetTempAvatar(avatar string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempAvatar = avatar
}

func (s *ProfileStore) TempName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tempName
}

func (s *ProfileStore) TempAvatar() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tempAvatar
}

// ApplyChanges writes the buffer back into the session via SetUser, which
// re-applies the usual defaulting. Returns ErrNotAuthenticated when there
// is no user to write to.
func (s *ProfileStore) ApplyChanges() error {
	user := s.auth.CurrentUser()
	if user == nil {
		return ErrNotAuthenticated
	}
	s.mu.Lock()
	updated := *user
	updated.Name = s.tempName
	updated.Avatar = s.tempAvatar
	s.mu.Unlock()
	s.auth.SetUser(&updated)
	return nil
}
