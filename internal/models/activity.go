package models

import (
	"errors"
	"strings"
)

// Activity represents a bookable experience listed for purchase
type Activity struct {
	ID            string   `json:"id"`
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
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// HasActiveDiscount returns true when the discounted price actually undercuts
// the listed price. A zero or out-of-range discount is treated as absent.
func (a *Activity) HasActiveDiscount() bool {
	return a.PriceDiscount > 0 && a.PriceDiscount < a.Price
}

// EffectivePrice returns the price a buyer pays for one unit
func (a *Activity) EffectivePrice() float64 {
	if a.HasActiveDiscount() {
		return a.PriceDiscount
	}
	return a.Price
}

// PrimaryImageURL returns the first usable image URL, or empty
func (a *Activity) PrimaryImageURL() string {
	for _, u := range a.ImageURLs {
		if strings.TrimSpace(u) != "" {
			return u
		}
	}
	return ""
}

// Validate validates the activity data
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("activity title is required")
	}

	if a.CategoryID == "" {
		return errors.New("activity category is required")
	}

	if a.Price < 0 {
		return errors.New("price cannot be negative")
	}

	if a.PriceDiscount < 0 {
		return errors.New("discount price cannot be negative")
	}

	return nil
}
