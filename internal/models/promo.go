package models

import (
	"errors"
	"fmt"
	"strings"
)

// Promo represents a discount code reducing a cart subtotal by a fixed amount,
// gated by a minimum purchase threshold
type Promo struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ImageURL           string  `json:"imageUrl"`
	TermsCondition     string  `json:"terms_condition"`
	PromoCode          string  `json:"promo_code"`
	PromoDiscountPrice float64 `json:"promo_discount_price"`
	MinimumClaimPrice  float64 `json:"minimum_claim_price"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// AppliesTo reports whether the promo can be claimed against the given subtotal
func (p *Promo) AppliesTo(subtotal float64) bool {
	return subtotal >= p.MinimumClaimPrice
}

// Validate validates the promo data
func (p *Promo) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("promo title is required")
	}

	if strings.TrimSpace(p.PromoCode) == "" {
		return errors.New("promo code is required")
	}

	if p.PromoDiscountPrice < 0 {
		return errors.New("discount price cannot be negative")
	}

	if p.MinimumClaimPrice < 0 {
		return errors.New("minimum claim price cannot be negative")
	}

	return nil
}

// FindPromoByCode looks up a promo by case-insensitive exact match on its code,
// trimmed of surrounding whitespace. Returns nil when no promo matches.
func FindPromoByCode(promos []*Promo, code string) *Promo {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}

	for _, p := range promos {
		if p == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(p.PromoCode), code) {
			return p
		}
	}

	return nil
}

// ApplyPromo resolves a typed promo code against the loaded promo list and
// returns the discount it grants on the given subtotal.
//
// An empty code means no promo: zero discount, no error. An unknown code or a
// subtotal below the promo's minimum yields zero discount and a user-facing
// error; the promo is not applied in either case.
func ApplyPromo(subtotal float64, code string, promos []*Promo) (float64, *Promo, error) {
	if strings.TrimSpace(code) == "" {
		return 0, nil, nil
	}

	promo := FindPromoByCode(promos, code)
	if promo == nil {
		return 0, nil, ErrPromoNotFound
	}

	if !promo.AppliesTo(subtotal) {
		return 0, nil, fmt.Errorf("a minimum purchase of %s is required to use this promo", FormatRupiah(promo.MinimumClaimPrice))
	}

	return promo.PromoDiscountPrice, promo, nil
}

// FindPromoByID looks up a promo by id. Returns nil when the id is empty or
// does not resolve against the list.
func FindPromoByID(promos []*Promo, id string) *Promo {
	if id == "" {
		return nil
	}

	for _, p := range promos {
		if p != nil && p.ID == id {
			return p
		}
	}

	return nil
}
