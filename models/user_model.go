package models

import (
	"time"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// DefaultCurrency is backfilled onto instructor accounts that were created
// before per-instructor currencies existed.
const DefaultCurrency = "USD"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio"`
	Rating       float64   `json:"rating"`
	TotalLessons int       `json:"totalLessons"`
	Currency     string    `json:"currency,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) IsInstructor() bool {
	return u.Role == RoleInstructor
}
