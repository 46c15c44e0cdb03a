package services

import (
	"context"
	"io"

	"activity-booking-platform/internal/models"
)

// CartAPI is the slice of the upstream API the cart service depends on
type CartAPI interface {
	GetCart(ctx context.Context) ([]*models.CartItem, error)
	AddToCart(ctx context.Context, activityID string, quantity int) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartItem, error)
	DeleteCartItem(ctx context.Context, itemID string) error
	ListPromos(ctx context.Context) ([]*models.Promo, error)
	CreateTransaction(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error)
}

// TransactionAPI is the slice of the upstream API the transaction service
// depends on
type TransactionAPI interface {
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListMyTransactions(ctx context.Context) ([]*models.Transaction, error)
	ListAllTransactions(ctx context.Context) ([]*models.Transaction, error)
	CancelTransaction(ctx context.Context, id string) (*models.Transaction, error)
	SubmitProof(ctx context.Context, id, proofURL string) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id, status string) (*models.Transaction, error)
	ListPromos(ctx context.Context) ([]*models.Promo, error)
	UploadImage(ctx context.Context, file io.Reader, filename string) (string, error)
}

// CatalogAPI is the slice of the upstream API the catalog service depends on
type CatalogAPI interface {
	ListActivities(ctx context.Context) ([]*models.Activity, error)
	GetActivity(ctx context.Context, id string) (*models.Activity, error)
	ListActivitiesByCategory(ctx context.Context, categoryID string) ([]*models.Activity, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListBanners(ctx context.Context) ([]*models.Banner, error)
	ListPromos(ctx context.Context) ([]*models.Promo, error)
	ListPaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error)
}

// CartServiceInterface defines the interface for cart operations consumed by
// the handlers
type CartServiceInterface interface {
	Snapshot(ctx context.Context, sel models.CartSelection) (*CartView, error)
	AddItem(ctx context.Context, activityID string, quantity int) (*models.CartItem, error)
	SetQuantity(ctx context.Context, itemID string, quantity int) (*models.CartItem, error)
	RemoveItems(ctx context.Context, itemIDs []string) BulkRemoveResult
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error)
}

// TransactionServiceInterface defines the interface for transaction
// operations consumed by the handlers
type TransactionServiceInterface interface {
	ListMine(ctx context.Context) ([]*TransactionView, error)
	ListAll(ctx context.Context, statusFilter string) ([]*TransactionView, error)
	Detail(ctx context.Context, id string) (*TransactionView, error)
	Cancel(ctx context.Context, id string) (*TransactionView, error)
	SubmitProof(ctx context.Context, id string, file io.Reader, filename string) (*TransactionView, error)
	UpdateStatus(ctx context.Context, id, status string) (*TransactionView, error)
}

// CatalogServiceInterface defines the interface for browse operations
// consumed by the handlers
type CatalogServiceInterface interface {
	BrowseActivities(ctx context.Context, filters ActivityFilters) (*ActivityPage, error)
	GetActivity(ctx context.Context, id string) (*models.Activity, error)
	Categories(ctx context.Context) ([]*models.Category, error)
	Banners(ctx context.Context) ([]*models.Banner, error)
	Promos(ctx context.Context) ([]*models.Promo, error)
	PaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error)
}
