package models

import "errors"

// Common errors used throughout the application
var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPromoNotFound       = errors.New("Invalid promo code.")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrNothingSelected     = errors.New("no cart items selected")
	ErrUnauthorized        = errors.New("unauthorized access")
	ErrActionNotAllowed    = errors.New("action not allowed for current status")
	ErrInvalidInput        = errors.New("invalid input")
)
