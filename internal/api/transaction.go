package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"activity-booking-platform/internal/models"
)

// CreateTransaction creates a transaction from the selected cart items. The
// returned transaction id is used for the post-checkout redirect.
func (c *Client) CreateTransaction(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", req, &tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &tx, nil
}

// ListMyTransactions returns the current user's transactions
func (c *Client) ListMyTransactions(ctx context.Context) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	if err := c.do(ctx, http.MethodGet, "/my-transactions", nil, &txs); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// ListAllTransactions returns every transaction in the system (admin only)
func (c *Client) ListAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	if err := c.do(ctx, http.MethodGet, "/all-transactions", nil, &txs); err != nil {
		return nil, fmt.Errorf("failed to list all transactions: %w", err)
	}
	return txs, nil
}

// GetTransaction returns a single transaction by id
func (c *Client) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/"+id, nil, &tx); err != nil {
		if IsNotFound(err) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// CancelTransaction cancels a pending transaction
func (c *Client) CancelTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions/"+id+"/cancel", nil, &tx); err != nil {
		if IsNotFound(err) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to cancel transaction: %w", err)
	}
	return &tx, nil
}

// SubmitProof attaches a proof-of-payment image URL to a transaction
func (c *Client) SubmitProof(ctx context.Context, id, proofURL string) (*models.Transaction, error) {
	body := models.ProofPaymentRequest{ProofPaymentURL: proofURL}

	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions/"+id+"/proof", body, &tx); err != nil {
		if IsNotFound(err) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to submit proof of payment: %w", err)
	}
	return &tx, nil
}

// UpdateTransactionStatus sets a transaction's status (admin only)
func (c *Client) UpdateTransactionStatus(ctx context.Context, id, status string) (*models.Transaction, error) {
	body := models.StatusUpdateRequest{Status: status}

	var tx models.Transaction
	if err := c.do(ctx, http.MethodPatch, "/transactions/"+id+"/status", body, &tx); err != nil {
		if IsNotFound(err) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return &tx, nil
}

// uploadResult is the upstream response for an image upload
type uploadResult struct {
	ImageURL string `json:"imageUrl"`
	URL      string `json:"url"`
}

// UploadImage uploads an image file and returns its public URL
func (c *Client) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	var result uploadResult
	if err := c.doMultipart(ctx, "/upload-image", "image", filename, file, &result); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if result.ImageURL != "" {
		return result.ImageURL, nil
	}
	return result.URL, nil
}
