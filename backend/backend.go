package backend

import (
	"context"
	"fmt"

	"github.com/stepsync/dance_marketplace/configs"
	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/stores"
)

// Backend is the boundary a real server would stand behind. The mock
// implementation in this package is the only production one; additional
// implementations (Firebase auth, Stripe payments) plug in by satisfying
// these interfaces and extending New.
type Backend interface {
	Auth() AuthService
	Data() DataService
	Payments() PaymentService
	Storage() StorageService
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
}

type DataService interface {
	GetLessons(ctx context.Context) ([]models.Lesson, error)
	GetUsers(ctx context.Context) ([]models.User, error)
}

type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Error         string `json:"error,omitempty"`
}

type PaymentService interface {
	ProcessPayment(ctx context.Context, amount float64, currency, paymentMethodID string) (PaymentResult, error)
}

type StorageService interface {
	UploadImage(ctx context.Context, uri, path string) (string, error)
}

// New selects the backend for the brand. Integration flags are validated up
// front: a brand asking for an integration nobody has built fails fast at
// startup instead of hiding dead branches in the request path.
func New(brand configs.BrandConfig, auth *stores.AuthStore, ds *dataset.Dataset) (Backend, error) {
	if brand.Integrations.Firebase {
		return nil, fmt.Errorf("brand %q requests the firebase backend, which is not implemented", brand.Name)
	}
	if brand.Integrations.Stripe {
		return nil, fmt.Errorf("brand %q requests the stripe backend, which is not implemented", brand.Name)
	}
	return NewMock(auth, ds), nil
}
