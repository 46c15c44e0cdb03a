package models

import (
	"errors"
	"strings"
)

// AddToCartRequest represents the data needed to add an activity to the cart
type AddToCartRequest struct {
	ActivityID string `json:"activityId"`
}

// Validate validates the add-to-cart data
func (req *AddToCartRequest) Validate() error {
	if req.ActivityID == "" {
		return errors.New("activity id is required")
	}
	return nil
}

// UpdateQuantityRequest represents a cart item quantity change
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Validate validates the quantity change before any network call is made
func (req *UpdateQuantityRequest) Validate() error {
	if req.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// CheckoutRequest represents the data needed to create a transaction from
// the selected cart items
type CheckoutRequest struct {
	CartIDs         []string `json:"cartIds"`
	PaymentMethodID string   `json:"paymentMethodId"`
	PromoID         string   `json:"promoId,omitempty"`
}

// Validate validates the checkout data
func (req *CheckoutRequest) Validate() error {
	if len(req.CartIDs) == 0 {
		return ErrNothingSelected
	}

	if req.PaymentMethodID == "" {
		return errors.New("payment method is required")
	}

	return nil
}

// ProofPaymentRequest represents a proof-of-payment submission
type ProofPaymentRequest struct {
	ProofPaymentURL string `json:"proofPaymentUrl"`
}

// Validate validates the proof submission
func (req *ProofPaymentRequest) Validate() error {
	if strings.TrimSpace(req.ProofPaymentURL) == "" {
		return errors.New("proof payment url is required")
	}
	return nil
}

// StatusUpdateRequest represents an admin status change on a transaction
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// Validate validates the status update
func (req *StatusUpdateRequest) Validate() error {
	return ValidateTransactionStatus(req.Status)
}

// ActivityUpsertRequest represents admin create/update data for an activity
type ActivityUpsertRequest struct {
	CategoryID    string   `json:"categoryId"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ImageURLs     []string `json:"imageUrls"`
	Price         float64  `json:"price"`
	PriceDiscount float64  `json:"price_discount"`
	Rating        float64  `json:"rating"`
	TotalReviews  int      `json:"total_reviews"`
	Facilities    string   `json:"facilities"`
	Address       string   `json:"address"`
	Province      string   `json:"province"`
	City          string   `json:"city"`
	LocationMaps  string   `json:"location_maps"`
}

// Validate validates the activity payload
func (req *ActivityUpsertRequest) Validate() error {
	a := Activity{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Price:         req.Price,
		PriceDiscount: req.PriceDiscount,
	}
	return a.Validate()
}

// CategoryUpsertRequest represents admin create/update data for a category
type CategoryUpsertRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Validate validates the category payload
func (req *CategoryUpsertRequest) Validate() error {
	c := Category{Name: req.Name}
	return c.Validate()
}

// BannerUpsertRequest represents admin create/update data for a banner
type BannerUpsertRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Validate validates the banner payload
func (req *BannerUpsertRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("banner name is required")
	}
	return nil
}

// PromoUpsertRequest represents admin create/update data for a promo
type PromoUpsertRequest struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ImageURL           string  `json:"imageUrl"`
	TermsCondition     string  `json:"terms_condition"`
	PromoCode          string  `json:"promo_code"`
	PromoDiscountPrice float64 `json:"promo_discount_price"`
	MinimumClaimPrice  float64 `json:"minimum_claim_price"`
}

// Validate validates the promo payload
func (req *PromoUpsertRequest) Validate() error {
	p := Promo{
		Title:              req.Title,
		PromoCode:          req.PromoCode,
		PromoDiscountPrice: req.PromoDiscountPrice,
		MinimumClaimPrice:  req.MinimumClaimPrice,
	}
	return p.Validate()
}
