package services

import (
	"context"
	"fmt"
	"sync"

	"activity-booking-platform/internal/models"
)

// CartService mediates the session cart: pricing, selection, quantity and
// promo handling. The upstream API owns the cart contents; this service owns
// the derived amounts and the UI-side selection state.
type CartService struct {
	api CartAPI
}

// NewCartService creates a new cart service
func NewCartService(api CartAPI) *CartService {
	return &CartService{api: api}
}

// CartView is everything a cart page shows: the items, the reconciled
// selection and the amounts derived from it
type CartView struct {
	Items       []*models.CartItem   `json:"items"`
	Selection   models.CartSelection `json:"selection"`
	AllSelected bool                 `json:"all_selected"`

	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grand_total"`

	SubtotalDisplay   string `json:"subtotal_display"`
	DiscountDisplay   string `json:"discount_display"`
	GrandTotalDisplay string `json:"grand_total_display"`

	AppliedPromo *models.Promo `json:"applied_promo,omitempty"`
	// PromoError carries the user-facing reason the typed code did not
	// apply. It never fails the snapshot; the cart stays usable.
	PromoError string `json:"promo_error,omitempty"`
}

// Snapshot fetches the cart and derives the complete view for the given
// selection state. Amounts are recomputed from scratch on every call, never
// cached between fetches.
func (s *CartService) Snapshot(ctx context.Context, sel models.CartSelection) (*CartView, error) {
	items, err := s.api.GetCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	// A changed item list resets the selection to all items
	sel.Reconcile(items)

	subtotal := models.ComputeSubtotal(items, sel.SelectedSet())

	view := &CartView{
		Items:       items,
		Selection:   sel,
		AllSelected: sel.AllSelected(items),
		Subtotal:    subtotal,
	}

	if sel.PromoCode != "" {
		promos, err := s.api.ListPromos(ctx)
		if err != nil {
			// Promo lookup failing must not take the cart down
			view.PromoError = "Could not check promo code, please try again."
		} else {
			discount, promo, promoErr := models.ApplyPromo(subtotal, sel.PromoCode, promos)
			view.Discount = discount
			view.AppliedPromo = promo
			if promoErr != nil {
				view.PromoError = promoErr.Error()
			}
		}
	}

	view.GrandTotal = models.GrandTotal(view.Subtotal, view.Discount)
	view.SubtotalDisplay = models.FormatRupiah(view.Subtotal)
	view.DiscountDisplay = models.FormatRupiah(view.Discount)
	view.GrandTotalDisplay = models.FormatRupiah(view.GrandTotal)

	return view, nil
}

// AddItem adds an activity to the cart
func (s *CartService) AddItem(ctx context.Context, activityID string, quantity int) (*models.CartItem, error) {
	req := models.AddToCartRequest{ActivityID: activityID}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}

	return s.api.AddToCart(ctx, activityID, quantity)
}

// SetQuantity changes a cart item's quantity. Values below 1 are rejected
// before any network call; the caller's displayed quantity stands.
func (s *CartService) SetQuantity(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}

	return s.api.UpdateCartItem(ctx, itemID, quantity)
}

// BulkRemoveResult tracks per-item outcomes of a bulk removal. A failed
// removal leaves that item in the cart.
type BulkRemoveResult struct {
	Removed []string         `json:"removed"`
	Failed  map[string]error `json:"-"`
}

// FailedIDs returns the ids whose removal failed
func (r BulkRemoveResult) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for id := range r.Failed {
		ids = append(ids, id)
	}
	return ids
}

// Summary renders the per-item outcomes as a single user-facing line,
// reflecting both successes and failures, never a single pass/fail verdict
func (r BulkRemoveResult) Summary() string {
	removed := fmt.Sprintf("%d item removed", len(r.Removed))
	if len(r.Removed) != 1 {
		removed = fmt.Sprintf("%d items removed", len(r.Removed))
	}

	if len(r.Failed) == 0 {
		return removed
	}
	return fmt.Sprintf("%s, %d failed", removed, len(r.Failed))
}

// RemoveItems requests deletion of each item independently and concurrently.
// Outcomes are tracked per id with no ordering guarantees between requests.
func (s *CartService) RemoveItems(ctx context.Context, itemIDs []string) BulkRemoveResult {
	result := BulkRemoveResult{Failed: make(map[string]error)}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, id := range itemIDs {
		wg.Add(1)
		go func(itemID string) {
			defer wg.Done()

			err := s.api.DeleteCartItem(ctx, itemID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed[itemID] = err
				return
			}
			result.Removed = append(result.Removed, itemID)
		}(id)
	}

	wg.Wait()
	return result
}

// Checkout creates a transaction from the selected cart items and returns it;
// the caller redirects to the transaction's detail using its id
func (s *CartService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.api.CreateTransaction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	return tx, nil
}
