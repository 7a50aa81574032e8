package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/stores"
	"github.com/stepsync/dance_marketplace/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Mock serves everything from the bundled dataset. Writes always succeed
// and vanish on restart.
type Mock struct {
	auth *stores.AuthStore
	ds   *dataset.Dataset
}

func NewMock(auth *stores.AuthStore, ds *dataset.Dataset) *Mock {
	return &Mock{auth: auth, ds: ds}
}

func (m *Mock) Auth() AuthService { return (*mockAuth)(m) }

func (m *Mock) Data() DataService { return (*mockData)(m) }

func (m *Mock) Payments() PaymentService { return (*mockPayments)(m) }

func (m *Mock) Storage() StorageService { return (*mockStorage)(m) }

type mockAuth Mock

func (a *mockAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	if !a.auth.Login(email, password) {
		return nil, ErrInvalidCredentials
	}
	return a.auth.CurrentUser(), nil
}

func (a *mockAuth) Register(_ context.Context, name, email, password string) (*models.User, error) {
	return a.auth.Register(name, email, password)
}

func (a *mockAuth) Logout(_ context.Context) error {
	a.auth.Logout()
	return nil
}

type mockData Mock

func (d *mockData) GetLessons(_ context.Context) ([]models.Lesson, error) {
	return d.ds.ActiveLessons(), nil
}

func (d *mockData) GetUsers(_ context.Context) ([]models.User, error) {
	return d.ds.Users(), nil
}

type mockPayments Mock

// ProcessPayment approves every well-formed charge with a synthetic
// transaction id. Rejections are reported in the result, not as an error:
// the error return is reserved for transport failures a real provider
// client would surface.
func (p *mockPayments) ProcessPayment(_ context.Context, amount float64, currency, paymentMethodID string) (PaymentResult, error) {
	if amount <= 0 {
		return PaymentResult{Success: false, Error: "amount must be positive"}, nil
	}
	if paymentMethodID == "" {
		return PaymentResult{Success: false, Error: "missing payment method"}, nil
	}
	return PaymentResult{Success: true, TransactionID: utils.GenerateTransactionID()}, nil
}

type mockStorage Mock

// UploadImage never touches the uri; it returns the deterministic URL the
// asset would have after a real upload.
func (s *mockStorage) UploadImage(_ context.Context, _ string, path string) (string, error) {
	if path == "" {
		return "", errors.New("upload path is required")
	}
	return fmt.Sprintf("https://storage.stepsync.app/%s", path), nil
}
