package services

import (
	"context"
	"io"

	"activity-booking-platform/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockBookingAPI mocks the upstream API client for service tests
type MockBookingAPI struct {
	mock.Mock
}

func (m *MockBookingAPI) GetCart(ctx context.Context) ([]*models.CartItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.CartItem), args.Error(1)
}

func (m *MockBookingAPI) AddToCart(ctx context.Context, activityID string, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, activityID, quantity)
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockBookingAPI) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, itemID, quantity)
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockBookingAPI) DeleteCartItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockBookingAPI) ListPromos(ctx context.Context) ([]*models.Promo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Promo), args.Error(1)
}

func (m *MockBookingAPI) CreateTransaction(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockBookingAPI) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockBookingAPI) ListMyTransactions(ctx context.Context) ([]*models.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockBookingAPI) ListAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockBookingAPI) CancelTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockBookingAPI) SubmitProof(ctx context.Context, id, proofURL string) (*models.Transaction, error) {
	args := m.Called(ctx, id, proofURL)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockBookingAPI) UpdateTransactionStatus(ctx context.Context, id, status string) (*models.Transaction, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockBookingAPI) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	args := m.Called(ctx, file, filename)
	return args.String(0), args.Error(1)
}

func (m *MockBookingAPI) ListActivities(ctx context.Context) ([]*models.Activity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Activity), args.Error(1)
}

func (m *MockBookingAPI) GetActivity(ctx context.Context, id string) (*models.Activity, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockBookingAPI) ListActivitiesByCategory(ctx context.Context, categoryID string) ([]*models.Activity, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]*models.Activity), args.Error(1)
}

func (m *MockBookingAPI) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockBookingAPI) ListBanners(ctx context.Context) ([]*models.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Banner), args.Error(1)
}

func (m *MockBookingAPI) ListPaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.PaymentMethod), args.Error(1)
}
