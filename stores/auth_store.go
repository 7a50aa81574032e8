package stores

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/utils"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("email already registered")

// AuthStore holds the signed-in session. Constructed once at startup and
// injected wherever identity is needed; tests build their own instance.
type AuthStore struct {
	mu   sync.RWMutex
	ds   *dataset.Dataset
	user *models.User
}

func NewAuthStore(ds *dataset.Dataset) *AuthStore {
	return &AuthStore{ds: ds}
}

// Login looks the account up by exact email. The password is accepted but
// not verified against anything; the mock auth contract succeeds for any
// known email.
func (s *AuthStore) Login(email, _ string) bool {
	u := s.ds.UserByEmail(email)
	if u == nil {
		return false
	}
	s.SetUser(u)
	return true
}

// Register creates a student account and signs it in. The password is
// bcrypt-hashed onto the record even though Login never checks it.
func (s *AuthStore) Register(name, email, password string) (*models.User, error) {
	if existing := s.ds.UserByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := s.ds.AddUser(models.User{
		ID:        utils.GenerateUserID(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Role:      models.RoleStudent,
		CreatedAt: time.Now(),
	})
	s.SetUser(&u)
	return s.CurrentUser(), nil
}

func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// SetUser installs u as the current session, applying the same defaulting
// as Login: instructors without a currency get USD, and a blank avatar gets
// the first default placeholder. The defaulted record is written back to
// the dataset so later lookups agree with the session.
func (s *AuthStore) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	applied := *u
	if applied.IsInstructor() && applied.Currency == "" {
		applied.Currency = models.DefaultCurrency
	}
	if strings.TrimSpace(applied.Avatar) == "" {
		applied.Avatar = utils.DefaultAvatar()
	}
	s.ds.ReplaceUser(applied)
	s.user = &applied
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// UpdateCurrency replaces the instructor's payout currency. A no-op when
// signed out or when the current user is a student.
func (s *AuthStore) UpdateCurrency(currency string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || !s.user.IsInstructor() {
		return
	}
	s.user.Currency = currency
	s.ds.ReplaceUser(*s.user)
}
