package models

import (
	"fmt"
	"strings"
	"time"
)

// TransactionStatus represents the authoritative status of a transaction as
// stored upstream
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionSuccess   TransactionStatus = "success"
	TransactionPaid      TransactionStatus = "paid"
	TransactionCancelled TransactionStatus = "cancelled"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction represents a checkout order tracked by the user
type Transaction struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	InvoiceID        string            `json:"invoiceId"`
	Status           string            `json:"status"`
	TotalAmount      float64           `json:"totalAmount"`
	ProofPaymentURL  string            `json:"proofPaymentUrl"`
	OrderDate        *time.Time        `json:"orderDate"`
	ExpiredDate      *time.Time        `json:"expiredDate"`
	PromoID          string            `json:"promoId"`
	PaymentMethod    *PaymentMethod    `json:"payment_method"`
	TransactionItems []TransactionItem `json:"transaction_items"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

// TransactionItem is a line item captured at checkout time
type TransactionItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	ImageURLs []string `json:"imageUrls"`
}

// Subtotal returns the line total for this item
func (ti *TransactionItem) Subtotal() float64 {
	return ti.Price * float64(ti.Quantity)
}

// HasProof reports whether a proof of payment has been submitted
func (t *Transaction) HasProof() bool {
	return strings.TrimSpace(t.ProofPaymentURL) != ""
}

// StatusCategory classifies a derived display status for icon/badge selection
type StatusCategory string

const (
	StatusCategoryPending      StatusCategory = "pending"
	StatusCategoryConfirmation StatusCategory = "confirmation"
	StatusCategorySuccess      StatusCategory = "success"
	StatusCategoryCancelled    StatusCategory = "cancelled"
	StatusCategoryFailed       StatusCategory = "failed"
	StatusCategoryUnknown      StatusCategory = "unknown"
)

// DisplayStatus is the human-facing view of a transaction status together
// with the actions it enables
type DisplayStatus struct {
	Label          string         `json:"label"`
	Category       StatusCategory `json:"category"`
	CanUploadProof bool           `json:"can_upload_proof"`
	CanCancel      bool           `json:"can_cancel"`
	Terminal       bool           `json:"terminal"`
}

// DeriveStatus maps the authoritative (status, proofPaymentUrl) pair into the
// label shown to the user and the actions enabled on the transaction. It is
// total over its inputs and recomputed on every read; the derived state is
// never stored, so it can never disagree with the authoritative record.
//
// "Waiting for Confirmation" is derived from a pending transaction that has a
// proof attached; it is not an upstream status value.
func DeriveStatus(status, proofPaymentURL string) DisplayStatus {
	hasProof := strings.TrimSpace(proofPaymentURL) != ""

	switch strings.ToLower(strings.TrimSpace(status)) {
	case string(TransactionPending):
		if hasProof {
			return DisplayStatus{
				Label:    "Waiting for Confirmation",
				Category: StatusCategoryConfirmation,
			}
		}
		return DisplayStatus{
			Label:          "Waiting for Payment",
			Category:       StatusCategoryPending,
			CanUploadProof: true,
			CanCancel:      true,
		}
	case string(TransactionSuccess), string(TransactionPaid):
		return DisplayStatus{
			Label:    "Payment Successful",
			Category: StatusCategorySuccess,
			Terminal: true,
		}
	case string(TransactionCancelled):
		return DisplayStatus{
			Label:    "Cancelled",
			Category: StatusCategoryCancelled,
			Terminal: true,
		}
	case string(TransactionFailed):
		return DisplayStatus{
			Label:    "Failed",
			Category: StatusCategoryFailed,
			Terminal: true,
		}
	default:
		// Unknown statuses pass through verbatim, view only
		return DisplayStatus{
			Label:    status,
			Category: StatusCategoryUnknown,
		}
	}
}

// DisplayStatus returns the derived display status for this transaction
func (t *Transaction) DisplayStatus() DisplayStatus {
	return DeriveStatus(t.Status, t.ProofPaymentURL)
}

// TransactionTotals holds amounts recomputed from line items rather than read
// from the stored total
type TransactionTotals struct {
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grand_total"`
}

// ReconcileTotals independently recomputes a transaction's amounts from its
// line items and promo reference. The stored totalAmount may be stale, so the
// displayed total is always derived from the items actually on the order.
func ReconcileTotals(t *Transaction, promos []*Promo) TransactionTotals {
	var subtotal float64
	for i := range t.TransactionItems {
		subtotal += t.TransactionItems[i].Subtotal()
	}

	var discount float64
	if promo := FindPromoByID(promos, t.PromoID); promo != nil {
		discount = promo.PromoDiscountPrice
	}

	return TransactionTotals{
		Subtotal:   subtotal,
		Discount:   discount,
		GrandTotal: GrandTotal(subtotal, discount),
	}
}

// ValidateTransactionStatus validates a status value for an admin update
func ValidateTransactionStatus(status string) error {
	switch TransactionStatus(strings.ToLower(strings.TrimSpace(status))) {
	case TransactionPending, TransactionSuccess, TransactionPaid, TransactionCancelled, TransactionFailed:
		return nil
	default:
		return fmt.Errorf("%w: unknown transaction status %q", ErrInvalidInput, status)
	}
}
