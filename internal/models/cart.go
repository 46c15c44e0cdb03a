package models

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// CartItem represents an item in the session cart. The activity reference may
// be dangling when the activity was removed upstream; pricing skips such items.
type CartItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ActivityID string    `json:"activityId"`
	Quantity   int       `json:"quantity"`
	Activity   *Activity `json:"activity"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

// Subtotal returns the line total for this item, zero when the activity
// reference is dangling
func (ci *CartItem) Subtotal() float64 {
	if ci.Activity == nil {
		return 0
	}
	return ci.Activity.EffectivePrice() * float64(ci.Quantity)
}

// CartSelection tracks which cart items are selected for checkout, plus the
// promo code the user typed. It is UI state mirrored into the session, never
// stored upstream.
type CartSelection struct {
	SelectedIDs []string `json:"selected_ids"`
	PromoCode   string   `json:"promo_code"`
	// Fingerprint identifies the item list the selection was made against.
	// When the list changes identity the selection resets to all items.
	Fingerprint string `json:"fingerprint"`
}

// SelectedSet returns the selection as a membership set
func (s *CartSelection) SelectedSet() map[string]bool {
	set := make(map[string]bool, len(s.SelectedIDs))
	for _, id := range s.SelectedIDs {
		set[id] = true
	}
	return set
}

// IsSelected reports whether the item id is in the selection
func (s *CartSelection) IsSelected(id string) bool {
	for _, sel := range s.SelectedIDs {
		if sel == id {
			return true
		}
	}
	return false
}

// Toggle flips membership of the item id in the selection
func (s *CartSelection) Toggle(id string) {
	for i, sel := range s.SelectedIDs {
		if sel == id {
			s.SelectedIDs = append(s.SelectedIDs[:i], s.SelectedIDs[i+1:]...)
			return
		}
	}
	s.SelectedIDs = append(s.SelectedIDs, id)
}

// ToggleAll selects every item, unless all items are already selected, in
// which case it clears the selection. It is a toggle, not an idempotent
// select.
func (s *CartSelection) ToggleAll(items []*CartItem) {
	if s.AllSelected(items) && len(items) > 0 {
		s.SelectedIDs = nil
		return
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	s.SelectedIDs = ids
}

// AllSelected reports whether every item in the list is selected
func (s *CartSelection) AllSelected(items []*CartItem) bool {
	if len(items) == 0 {
		return false
	}

	set := s.SelectedSet()
	for _, item := range items {
		if !set[item.ID] {
			return false
		}
	}
	return true
}

// Reconcile realigns the selection with the current item list. A changed list
// identity resets the selection to all items (the default on load); otherwise
// ids no longer present are dropped.
func (s *CartSelection) Reconcile(items []*CartItem) {
	fp := CartFingerprint(items)
	if fp != s.Fingerprint {
		s.Fingerprint = fp
		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		s.SelectedIDs = ids
		return
	}

	present := make(map[string]bool, len(items))
	for _, item := range items {
		present[item.ID] = true
	}

	kept := s.SelectedIDs[:0]
	for _, id := range s.SelectedIDs {
		if present[id] {
			kept = append(kept, id)
		}
	}
	s.SelectedIDs = kept
}

// CartFingerprint identifies a cart item list by its membership, independent
// of ordering and of quantity changes
func CartFingerprint(items []*CartItem) string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	sort.Strings(ids)

	sum := sha256.Sum256([]byte(strings.Join(ids, "|")))
	return hex.EncodeToString(sum[:8])
}

// ComputeSubtotal sums effective price times quantity over the selected items.
// Items with a dangling activity reference are skipped, not errored.
func ComputeSubtotal(items []*CartItem, selected map[string]bool) float64 {
	var subtotal float64
	for _, item := range items {
		if item == nil || item.Activity == nil {
			continue
		}
		if !selected[item.ID] {
			continue
		}
		subtotal += item.Subtotal()
	}
	return subtotal
}

// GrandTotal returns the subtotal less the discount, floored at zero
func GrandTotal(subtotal, discount float64) float64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
