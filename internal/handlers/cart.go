package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"activity-booking-platform/internal/middleware"
	"activity-booking-platform/internal/models"
	"activity-booking-platform/internal/services"
)

const selectionSessionKey = "cart_selection"

// CartHandlers serves the cart and checkout endpoints. The selection and the
// typed promo code live in the session; the cart contents live upstream.
type CartHandlers struct {
	cartService services.CartServiceInterface
	sessions    *middleware.SessionManager
}

// NewCartHandlers creates new cart handlers
func NewCartHandlers(cartService services.CartServiceInterface, sessions *middleware.SessionManager) *CartHandlers {
	return &CartHandlers{
		cartService: cartService,
		sessions:    sessions,
	}
}

// loadSelection reads the cart selection from the session. A missing or
// corrupt value yields the zero selection, which Snapshot resets to all items.
func (h *CartHandlers) loadSelection(r *http.Request) models.CartSelection {
	var sel models.CartSelection

	session, err := h.sessions.Session(r)
	if err != nil {
		return sel
	}

	raw, ok := session.Values[selectionSessionKey].(string)
	if !ok || raw == "" {
		return sel
	}

	_ = json.Unmarshal([]byte(raw), &sel)
	return sel
}

// saveSelection persists the cart selection back into the session
func (h *CartHandlers) saveSelection(w http.ResponseWriter, r *http.Request, sel models.CartSelection) {
	session, err := h.sessions.Session(r)
	if err != nil {
		return
	}

	raw, err := json.Marshal(sel)
	if err != nil {
		return
	}

	session.Values[selectionSessionKey] = string(raw)
	_ = session.Save(r, w)
}

// snapshot derives the cart view for the given selection and persists the
// reconciled selection so the next request starts from it
func (h *CartHandlers) snapshot(w http.ResponseWriter, r *http.Request, sel models.CartSelection) {
	view, err := h.cartService.Snapshot(r.Context(), sel)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.saveSelection(w, r, view.Selection)
	respondJSON(w, http.StatusOK, view)
}

// GetCart handles GET /api/cart
func (h *CartHandlers) GetCart(w http.ResponseWriter, r *http.Request) {
	h.snapshot(w, r, h.loadSelection(r))
}

// AddItem handles POST /api/cart
func (h *CartHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActivityID string `json:"activityId"`
		Quantity   int    `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.cartService.AddItem(r.Context(), req.ActivityID, req.Quantity); err != nil {
		respondServiceError(w, err)
		return
	}

	h.snapshot(w, r, h.loadSelection(r))
}

// UpdateQuantity handles PATCH /api/cart/{id}
func (h *CartHandlers) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.cartService.SetQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity); err != nil {
		respondServiceError(w, err)
		return
	}

	h.snapshot(w, r, h.loadSelection(r))
}

// RemoveItem handles DELETE /api/cart/{id}
func (h *CartHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	result := h.cartService.RemoveItems(r.Context(), []string{itemID})
	if err, ok := result.Failed[itemID]; ok {
		respondServiceError(w, err)
		return
	}

	h.snapshot(w, r, h.loadSelection(r))
}

// BulkRemove handles POST /api/cart/bulk-delete. Each removal is attempted
// independently; the response reports both successes and failures.
func (h *CartHandlers) BulkRemove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.IDs) == 0 {
		respondError(w, http.StatusBadRequest, models.ErrNothingSelected.Error())
		return
	}

	result := h.cartService.RemoveItems(r.Context(), req.IDs)

	view, err := h.cartService.Snapshot(r.Context(), h.loadSelection(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.saveSelection(w, r, view.Selection)

	respondJSON(w, http.StatusOK, map[string]any{
		"summary": result.Summary(),
		"removed": result.Removed,
		"failed":  result.FailedIDs(),
		"cart":    view,
	})
}

// ToggleSelect handles POST /api/cart/{id}/select. Flipping an item in or out
// of the selection only changes session state, never the cart upstream.
func (h *CartHandlers) ToggleSelect(w http.ResponseWriter, r *http.Request) {
	sel := h.loadSelection(r)
	sel.Toggle(chi.URLParam(r, "id"))
	h.snapshot(w, r, sel)
}

// ToggleSelectAll handles POST /api/cart/select-all. When every item is
// already selected this clears the selection; otherwise it selects all.
func (h *CartHandlers) ToggleSelectAll(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartService.Snapshot(r.Context(), h.loadSelection(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sel := view.Selection
	sel.ToggleAll(view.Items)
	h.snapshot(w, r, sel)
}

// ApplyPromo handles POST /api/cart/promo. An ineligible or unknown code is
// reported in the snapshot's promo_error, never as a request failure.
func (h *CartHandlers) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sel := h.loadSelection(r)
	sel.PromoCode = req.Code
	h.snapshot(w, r, sel)
}

// RemovePromo handles DELETE /api/cart/promo
func (h *CartHandlers) RemovePromo(w http.ResponseWriter, r *http.Request) {
	sel := h.loadSelection(r)
	sel.PromoCode = ""
	h.snapshot(w, r, sel)
}

// Checkout handles POST /api/checkout. The transaction is created from the
// current selection; a promo only counts when it actually applied.
func (h *CartHandlers) Checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethodID string `json:"paymentMethodId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.cartService.Snapshot(r.Context(), h.loadSelection(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	checkout := &models.CheckoutRequest{
		CartIDs:         view.Selection.SelectedIDs,
		PaymentMethodID: req.PaymentMethodID,
	}
	if view.AppliedPromo != nil {
		checkout.PromoID = view.AppliedPromo.ID
	}

	tx, err := h.cartService.Checkout(r.Context(), checkout)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// The checked-out items leave the cart; drop the stale selection
	h.saveSelection(w, r, models.CartSelection{})

	respondJSON(w, http.StatusCreated, tx)
}
