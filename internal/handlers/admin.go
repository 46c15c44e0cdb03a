package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"activity-booking-platform/internal/models"
	"activity-booking-platform/internal/services"
)

// AdminAPI is the slice of the upstream API the back-office handlers depend on
type AdminAPI interface {
	CreateActivity(ctx context.Context, req *models.ActivityUpsertRequest) (*models.Activity, error)
	UpdateActivity(ctx context.Context, id string, req *models.ActivityUpsertRequest) (*models.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, req *models.CategoryUpsertRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.CategoryUpsertRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateBanner(ctx context.Context, req *models.BannerUpsertRequest) (*models.Banner, error)
	UpdateBanner(ctx context.Context, id string, req *models.BannerUpsertRequest) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
	CreatePromo(ctx context.Context, req *models.PromoUpsertRequest) (*models.Promo, error)
	UpdatePromo(ctx context.Context, id string, req *models.PromoUpsertRequest) (*models.Promo, error)
	DeletePromo(ctx context.Context, id string) error
}

// AdminHandlers serves the back-office endpoints: transaction management and
// catalog CRUD relayed to the upstream API
type AdminHandlers struct {
	txService services.TransactionServiceInterface
	adminAPI  AdminAPI
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(txService services.TransactionServiceInterface, adminAPI AdminAPI) *AdminHandlers {
	return &AdminHandlers{
		txService: txService,
		adminAPI:  adminAPI,
	}
}

// ListTransactions handles GET /api/admin/transactions. The status query
// filters on the derived category, so "confirmation" matches pending
// transactions whose proof has been submitted.
func (h *AdminHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	views, err := h.txService.ListAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, views)
}

// UpdateTransactionStatus handles PATCH /api/admin/transactions/{id}/status
func (h *AdminHandlers) UpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.txService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// CreateActivity handles POST /api/admin/activities
func (h *AdminHandlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req models.ActivityUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	activity, err := h.adminAPI.CreateActivity(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, activity)
}

// UpdateActivity handles PATCH /api/admin/activities/{id}
func (h *AdminHandlers) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req models.ActivityUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	activity, err := h.adminAPI.UpdateActivity(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, activity)
}

// DeleteActivity handles DELETE /api/admin/activities/{id}
func (h *AdminHandlers) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.adminAPI.DeleteActivity(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "activity deleted"})
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminHandlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.adminAPI.CreateCategory(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PATCH /api/admin/categories/{id}
func (h *AdminHandlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.adminAPI.UpdateCategory(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}
func (h *AdminHandlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.adminAPI.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

// CreateBanner handles POST /api/admin/banners
func (h *AdminHandlers) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req models.BannerUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	banner, err := h.adminAPI.CreateBanner(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, banner)
}

// UpdateBanner handles PATCH /api/admin/banners/{id}
func (h *AdminHandlers) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	var req models.BannerUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	banner, err := h.adminAPI.UpdateBanner(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, banner)
}

// DeleteBanner handles DELETE /api/admin/banners/{id}
func (h *AdminHandlers) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.adminAPI.DeleteBanner(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "banner deleted"})
}

// CreatePromo handles POST /api/admin/promos
func (h *AdminHandlers) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var req models.PromoUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	promo, err := h.adminAPI.CreatePromo(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, promo)
}

// UpdatePromo handles PATCH /api/admin/promos/{id}
func (h *AdminHandlers) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	var req models.PromoUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	promo, err := h.adminAPI.UpdatePromo(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, promo)
}

// DeletePromo handles DELETE /api/admin/promos/{id}
func (h *AdminHandlers) DeletePromo(w http.ResponseWriter, r *http.Request) {
	if err := h.adminAPI.DeletePromo(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "promo deleted"})
}
