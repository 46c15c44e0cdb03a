package api

import (
	"context"
	"fmt"
	"net/http"

	"activity-booking-platform/internal/models"
)

// ListActivities returns every activity listed upstream
func (c *Client) ListActivities(ctx context.Context) ([]*models.Activity, error) {
	var activities []*models.Activity
	if err := c.do(ctx, http.MethodGet, "/activities", nil, &activities); err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// GetActivity returns a single activity by id
func (c *Client) GetActivity(ctx context.Context, id string) (*models.Activity, error) {
	var activity models.Activity
	if err := c.do(ctx, http.MethodGet, "/activities/"+id, nil, &activity); err != nil {
		if IsNotFound(err) {
			return nil, models.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return &activity, nil
}

// ListActivitiesByCategory returns the activities under a category
func (c *Client) ListActivitiesByCategory(ctx context.Context, categoryID string) ([]*models.Activity, error) {
	var activities []*models.Activity
	if err := c.do(ctx, http.MethodGet, "/activities-by-category/"+categoryID, nil, &activities); err != nil {
		return nil, fmt.Errorf("failed to list activities by category: %w", err)
	}
	return activities, nil
}

// ListCategories returns all activity categories
func (c *Client) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListBanners returns all promotional banners
func (c *Client) ListBanners(ctx context.Context) ([]*models.Banner, error) {
	var banners []*models.Banner
	if err := c.do(ctx, http.MethodGet, "/banners", nil, &banners); err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

// ListPromos returns all promos; used for both promo lookup and
// transaction-total reconciliation
func (c *Client) ListPromos(ctx context.Context) ([]*models.Promo, error) {
	var promos []*models.Promo
	if err := c.do(ctx, http.MethodGet, "/promos", nil, &promos); err != nil {
		return nil, fmt.Errorf("failed to list promos: %w", err)
	}
	return promos, nil
}

// GetPromo returns a single promo by id
func (c *Client) GetPromo(ctx context.Context, id string) (*models.Promo, error) {
	var promo models.Promo
	if err := c.do(ctx, http.MethodGet, "/promos/"+id, nil, &promo); err != nil {
		if IsNotFound(err) {
			return nil, models.ErrPromoNotFound
		}
		return nil, fmt.Errorf("failed to get promo: %w", err)
	}
	return &promo, nil
}

// ListPaymentMethods returns the payment channels offered at checkout
func (c *Client) ListPaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	var methods []*models.PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/payment-methods", nil, &methods); err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}
