package services

import (
	"context"
	"fmt"
	"strings"

	"activity-booking-platform/internal/models"
)

// CatalogService serves the browse surface: activities, categories, banners,
// promos and payment methods. Filtering and pagination happen over the
// fetched list; the upstream API exposes only whole collections.
type CatalogService struct {
	api CatalogAPI
}

// NewCatalogService creates a new catalog service
func NewCatalogService(api CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

// ActivityFilters narrows and pages the activity list
type ActivityFilters struct {
	CategoryID string
	Search     string
	Page       int
	PageSize   int
}

// ActivityPage is one page of the filtered activity list
type ActivityPage struct {
	Activities []*models.Activity `json:"activities"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

const defaultPageSize = 12

// BrowseActivities returns the requested page of activities, filtered by
// category and search term
func (s *CatalogService) BrowseActivities(ctx context.Context, filters ActivityFilters) (*ActivityPage, error) {
	var activities []*models.Activity
	var err error

	if filters.CategoryID != "" {
		activities, err = s.api.ListActivitiesByCategory(ctx, filters.CategoryID)
	} else {
		activities, err = s.api.ListActivities(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	if search := strings.TrimSpace(filters.Search); search != "" {
		activities = filterActivities(activities, search)
	}

	return paginateActivities(activities, filters.Page, filters.PageSize), nil
}

// filterActivities keeps activities matching the search term on title, city
// or province, case-insensitively
func filterActivities(activities []*models.Activity, search string) []*models.Activity {
	search = strings.ToLower(search)

	matched := make([]*models.Activity, 0, len(activities))
	for _, a := range activities {
		if a == nil {
			continue
		}
		if strings.Contains(strings.ToLower(a.Title), search) ||
			strings.Contains(strings.ToLower(a.City), search) ||
			strings.Contains(strings.ToLower(a.Province), search) {
			matched = append(matched, a)
		}
	}
	return matched
}

// paginateActivities slices one page out of the list, clamping the page
// number into range
func paginateActivities(activities []*models.Activity, page, pageSize int) *ActivityPage {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(activities)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ActivityPage{
		Activities: activities[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// GetActivity returns one activity by id
func (s *CatalogService) GetActivity(ctx context.Context, id string) (*models.Activity, error) {
	return s.api.GetActivity(ctx, id)
}

// Categories returns all categories
func (s *CatalogService) Categories(ctx context.Context) ([]*models.Category, error) {
	return s.api.ListCategories(ctx)
}

// Banners returns all banners
func (s *CatalogService) Banners(ctx context.Context) ([]*models.Banner, error) {
	return s.api.ListBanners(ctx)
}

// Promos returns all promos
func (s *CatalogService) Promos(ctx context.Context) ([]*models.Promo, error) {
	return s.api.ListPromos(ctx)
}

// PaymentMethods returns the payment channels offered at checkout
func (s *CatalogService) PaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	return s.api.ListPaymentMethods(ctx)
}
