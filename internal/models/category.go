package models

import (
	"errors"
	"strings"
)

// Category represents a grouping of activities
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Validate validates the category data
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("category name is required")
	}

	return nil
}

// Banner represents a promotional banner shown on the landing surface
type Banner struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// PaymentMethod represents a payment channel offered at checkout
type PaymentMethod struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	ImageURL             string `json:"imageUrl"`
	VirtualAccountNumber string `json:"virtual_account_number"`
	VirtualAccountName   string `json:"virtual_account_name"`
}
