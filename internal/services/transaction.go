package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"activity-booking-platform/internal/models"
)

// TransactionService builds the user-facing view of transactions: derived
// display status, totals reconciled from line items, and the payment
// countdown. Derivation is reapplied on every read so the view can never
// drift from the authoritative record.
type TransactionService struct {
	api    TransactionAPI
	images *ImageService
	now    func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(api TransactionAPI, images *ImageService) *TransactionService {
	return &TransactionService{
		api:    api,
		images: images,
		now:    time.Now,
	}
}

// TransactionView is a transaction together with everything derived from it
type TransactionView struct {
	Transaction *models.Transaction      `json:"transaction"`
	Display     models.DisplayStatus     `json:"display"`
	Totals      models.TransactionTotals `json:"totals"`

	SubtotalDisplay   string `json:"subtotal_display"`
	DiscountDisplay   string `json:"discount_display"`
	GrandTotalDisplay string `json:"grand_total_display"`

	// Countdown is present only while the transaction waits for payment
	// without a submitted proof
	Countdown *CountdownSnapshot `json:"countdown,omitempty"`
}

func (s *TransactionService) buildView(tx *models.Transaction, promos []*models.Promo) *TransactionView {
	totals := models.ReconcileTotals(tx, promos)
	display := tx.DisplayStatus()

	view := &TransactionView{
		Transaction:       tx,
		Display:           display,
		Totals:            totals,
		SubtotalDisplay:   models.FormatRupiah(totals.Subtotal),
		DiscountDisplay:   models.FormatRupiah(totals.Discount),
		GrandTotalDisplay: models.FormatRupiah(totals.GrandTotal),
	}

	if display.CanUploadProof && tx.ExpiredDate != nil {
		snap := CountdownAt(*tx.ExpiredDate, s.now())
		view.Countdown = &snap
	}

	return view
}

// loadPromos fetches the promo list used to resolve promoId references. A
// failure degrades to zero discount rather than failing the page: the list
// is advisory for display, not authoritative for billing.
func (s *TransactionService) loadPromos(ctx context.Context) []*models.Promo {
	promos, err := s.api.ListPromos(ctx)
	if err != nil {
		return nil
	}
	return promos
}

// ListMine returns the current user's transactions with derived state
func (s *TransactionService) ListMine(ctx context.Context) ([]*TransactionView, error) {
	txs, err := s.api.ListMyTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	promos := s.loadPromos(ctx)

	views := make([]*TransactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, s.buildView(tx, promos))
	}
	return views, nil
}

// ListAll returns every transaction (admin), optionally filtered by status.
// The "confirmation" filter selects pending transactions that have a proof
// attached; it is derived, not a stored status value.
func (s *TransactionService) ListAll(ctx context.Context, statusFilter string) ([]*TransactionView, error) {
	txs, err := s.api.ListAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	promos := s.loadPromos(ctx)
	filter := strings.ToLower(strings.TrimSpace(statusFilter))

	views := make([]*TransactionView, 0, len(txs))
	for _, tx := range txs {
		view := s.buildView(tx, promos)
		if filter != "" && string(view.Display.Category) != filter {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// Detail returns one transaction with derived state
func (s *TransactionService) Detail(ctx context.Context, id string) (*TransactionView, error) {
	tx, err := s.api.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.buildView(tx, s.loadPromos(ctx)), nil
}

// Cancel cancels a transaction. Allowed only while the derived status
// enables it; terminal transactions are immutable.
func (s *TransactionService) Cancel(ctx context.Context, id string) (*TransactionView, error) {
	tx, err := s.api.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if !tx.DisplayStatus().CanCancel {
		return nil, models.ErrActionNotAllowed
	}

	if _, err := s.api.CancelTransaction(ctx, id); err != nil {
		return nil, err
	}

	// Rebuild from a fresh fetch rather than patching the local copy
	return s.Detail(ctx, id)
}

// SubmitProof validates and uploads a proof-of-payment image, then attaches
// its URL to the transaction. Allowed only while the derived status enables
// uploading.
func (s *TransactionService) SubmitProof(ctx context.Context, id string, file io.Reader, filename string) (*TransactionView, error) {
	tx, err := s.api.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if !tx.DisplayStatus().CanUploadProof {
		return nil, models.ErrActionNotAllowed
	}

	prepared, uploadName, err := s.images.PrepareProofImage(file, filename)
	if err != nil {
		return nil, fmt.Errorf("invalid proof image: %w", err)
	}

	proofURL, err := s.api.UploadImage(ctx, prepared, uploadName)
	if err != nil {
		return nil, err
	}

	if _, err := s.api.SubmitProof(ctx, id, proofURL); err != nil {
		return nil, err
	}

	return s.Detail(ctx, id)
}

// UpdateStatus sets a transaction's stored status (admin only)
func (s *TransactionService) UpdateStatus(ctx context.Context, id, status string) (*TransactionView, error) {
	req := models.StatusUpdateRequest{Status: status}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.api.UpdateTransactionStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.Detail(ctx, id)
}
