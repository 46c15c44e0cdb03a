package api

import (
	"context"
	"fmt"
	"net/http"

	"activity-booking-platform/internal/models"
)

// Admin CRUD proxies. The upstream API owns validation and persistence; these
// methods only relay the back-office payloads.

// CreateActivity creates a new activity
func (c *Client) CreateActivity(ctx context.Context, req *models.ActivityUpsertRequest) (*models.Activity, error) {
	var activity models.Activity
	if err := c.do(ctx, http.MethodPost, "/activities", req, &activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return &activity, nil
}

// UpdateActivity updates an existing activity
func (c *Client) UpdateActivity(ctx context.Context, id string, req *models.ActivityUpsertRequest) (*models.Activity, error) {
	var activity models.Activity
	if err := c.do(ctx, http.MethodPatch, "/activities/"+id, req, &activity); err != nil {
		if IsNotFound(err) {
			return nil, models.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return &activity, nil
}

// DeleteActivity removes an activity
func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/activities/"+id, nil, nil); err != nil {
		if IsNotFound(err) {
			return models.ErrActivityNotFound
		}
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// CreateCategory creates a new category
func (c *Client) CreateCategory(ctx context.Context, req *models.CategoryUpsertRequest) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", req, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory updates an existing category
func (c *Client) UpdateCategory(ctx context.Context, id string, req *models.CategoryUpsertRequest) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPatch, "/categories/"+id, req, &category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

// DeleteCategory removes a category
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// CreateBanner creates a new banner
func (c *Client) CreateBanner(ctx context.Context, req *models.BannerUpsertRequest) (*models.Banner, error) {
	var banner models.Banner
	if err := c.do(ctx, http.MethodPost, "/banners", req, &banner); err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}
	return &banner, nil
}

// UpdateBanner updates an existing banner
func (c *Client) UpdateBanner(ctx context.Context, id string, req *models.BannerUpsertRequest) (*models.Banner, error) {
	var banner models.Banner
	if err := c.do(ctx, http.MethodPatch, "/banners/"+id, req, &banner); err != nil {
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}
	return &banner, nil
}

// DeleteBanner removes a banner
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/banners/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	return nil
}

// CreatePromo creates a new promo
func (c *Client) CreatePromo(ctx context.Context, req *models.PromoUpsertRequest) (*models.Promo, error) {
	var promo models.Promo
	if err := c.do(ctx, http.MethodPost, "/promos", req, &promo); err != nil {
		return nil, fmt.Errorf("failed to create promo: %w", err)
	}
	return &promo, nil
}

// UpdatePromo updates an existing promo
func (c *Client) UpdatePromo(ctx context.Context, id string, req *models.PromoUpsertRequest) (*models.Promo, error) {
	var promo models.Promo
	if err := c.do(ctx, http.MethodPatch, "/promos/"+id, req, &promo); err != nil {
		return nil, fmt.Errorf("failed to update promo: %w", err)
	}
	return &promo, nil
}

// DeletePromo removes a promo
func (c *Client) DeletePromo(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/promos/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete promo: %w", err)
	}
	return nil
}
