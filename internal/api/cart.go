package api

import (
	"context"
	"fmt"
	"net/http"

	"activity-booking-platform/internal/models"
)

// GetCart returns the current user's cart items
func (c *Client) GetCart(ctx context.Context) ([]*models.CartItem, error) {
	var items []*models.CartItem
	if err := c.do(ctx, http.MethodGet, "/carts", nil, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return items, nil
}

// AddToCart adds an activity to the current user's cart
func (c *Client) AddToCart(ctx context.Context, activityID string, quantity int) (*models.CartItem, error) {
	body := map[string]any{
		"activityId": activityID,
		"quantity":   quantity,
	}

	var item models.CartItem
	if err := c.do(ctx, http.MethodPost, "/carts", body, &item); err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}
	return &item, nil
}

// UpdateCartItem changes the quantity of a cart item
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	body := map[string]any{"quantity": quantity}

	var item models.CartItem
	if err := c.do(ctx, http.MethodPatch, "/carts/"+itemID, body, &item); err != nil {
		if IsNotFound(err) {
			return nil, models.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return &item, nil
}

// DeleteCartItem removes a single item from the cart
func (c *Client) DeleteCartItem(ctx context.Context, itemID string) error {
	if err := c.do(ctx, http.MethodDelete, "/carts/"+itemID, nil, nil); err != nil {
		if IsNotFound(err) {
			return models.ErrCartItemNotFound
		}
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}
