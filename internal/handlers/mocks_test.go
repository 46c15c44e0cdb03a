package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"activity-booking-platform/internal/api"
	"activity-booking-platform/internal/models"
	"activity-booking-platform/internal/services"
)

// MockCartService is a mock implementation of services.CartServiceInterface
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Snapshot(ctx context.Context, sel models.CartSelection) (*services.CartView, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CartView), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, activityID string, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, activityID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartService) SetQuantity(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartService) RemoveItems(ctx context.Context, itemIDs []string) services.BulkRemoveResult {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).(services.BulkRemoveResult)
}

func (m *MockCartService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// MockTransactionService is a mock implementation of
// services.TransactionServiceInterface
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListMine(ctx context.Context) ([]*services.TransactionView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.TransactionView), args.Error(1)
}

func (m *MockTransactionService) ListAll(ctx context.Context, statusFilter string) ([]*services.TransactionView, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.TransactionView), args.Error(1)
}

func (m *MockTransactionService) Detail(ctx context.Context, id string) (*services.TransactionView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TransactionView), args.Error(1)
}

func (m *MockTransactionService) Cancel(ctx context.Context, id string) (*services.TransactionView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TransactionView), args.Error(1)
}

func (m *MockTransactionService) SubmitProof(ctx context.Context, id string, file io.Reader, filename string) (*services.TransactionView, error) {
	args := m.Called(ctx, id, file, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TransactionView), args.Error(1)
}

func (m *MockTransactionService) UpdateStatus(ctx context.Context, id, status string) (*services.TransactionView, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TransactionView), args.Error(1)
}

// MockCatalogService is a mock implementation of
// services.CatalogServiceInterface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) BrowseActivities(ctx context.Context, filters services.ActivityFilters) (*services.ActivityPage, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ActivityPage), args.Error(1)
}

func (m *MockCatalogService) GetActivity(ctx context.Context, id string) (*models.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCatalogService) Banners(ctx context.Context) ([]*models.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Banner), args.Error(1)
}

func (m *MockCatalogService) Promos(ctx context.Context) ([]*models.Promo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Promo), args.Error(1)
}

func (m *MockCatalogService) PaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PaymentMethod), args.Error(1)
}

// MockAuthAPI is a mock implementation of AuthAPI
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, req *models.LoginRequest) (*api.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.LoginResult), args.Error(1)
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAdminAPI is a mock implementation of AdminAPI
type MockAdminAPI struct {
	mock.Mock
}

func (m *MockAdminAPI) CreateActivity(ctx context.Context, req *models.ActivityUpsertRequest) (*models.Activity, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockAdminAPI) UpdateActivity(ctx context.Context, id string, req *models.ActivityUpsertRequest) (*models.Activity, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockAdminAPI) DeleteActivity(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminAPI) CreateCategory(ctx context.Context, req *models.CategoryUpsertRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockAdminAPI) UpdateCategory(ctx context.Context, id string, req *models.CategoryUpsertRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockAdminAPI) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminAPI) CreateBanner(ctx context.Context, req *models.BannerUpsertRequest) (*models.Banner, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Banner), args.Error(1)
}

func (m *MockAdminAPI) UpdateBanner(ctx context.Context, id string, req *models.BannerUpsertRequest) (*models.Banner, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Banner), args.Error(1)
}

func (m *MockAdminAPI) DeleteBanner(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminAPI) CreatePromo(ctx context.Context, req *models.PromoUpsertRequest) (*models.Promo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promo), args.Error(1)
}

func (m *MockAdminAPI) UpdatePromo(ctx context.Context, id string, req *models.PromoUpsertRequest) (*models.Promo, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promo), args.Error(1)
}

func (m *MockAdminAPI) DeletePromo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
