package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"activity-booking-platform/internal/services"
)

// CatalogHandlers serves the public browse endpoints
type CatalogHandlers struct {
	catalogService services.CatalogServiceInterface
}

// NewCatalogHandlers creates new catalog handlers
func NewCatalogHandlers(catalogService services.CatalogServiceInterface) *CatalogHandlers {
	return &CatalogHandlers{catalogService: catalogService}
}

// ListActivities handles GET /api/activities
func (h *CatalogHandlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	filters := services.ActivityFilters{
		CategoryID: r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("q"),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		filters.Page = page
	}
	if size, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil {
		filters.PageSize = size
	}

	result, err := h.catalogService.BrowseActivities(r.Context(), filters)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetActivity handles GET /api/activities/{id}
func (h *CatalogHandlers) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.catalogService.GetActivity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, activity)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.Categories(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// ListBanners handles GET /api/banners
func (h *CatalogHandlers) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.catalogService.Banners(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, banners)
}

// ListPromos handles GET /api/promos
func (h *CatalogHandlers) ListPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.catalogService.Promos(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, promos)
}

// ListPaymentMethods handles GET /api/payment-methods
func (h *CatalogHandlers) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.catalogService.PaymentMethods(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, methods)
}
