package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"activity-booking-platform/internal/services"
)

// maxProofUploadBytes caps the multipart proof-of-payment upload
const maxProofUploadBytes = 10 << 20

// TransactionHandlers serves the user-facing transaction endpoints
type TransactionHandlers struct {
	txService services.TransactionServiceInterface
}

// NewTransactionHandlers creates new transaction handlers
func NewTransactionHandlers(txService services.TransactionServiceInterface) *TransactionHandlers {
	return &TransactionHandlers{txService: txService}
}

// ListMine handles GET /api/transactions
func (h *TransactionHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	views, err := h.txService.ListMine(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, views)
}

// Detail handles GET /api/transactions/{id}
func (h *TransactionHandlers) Detail(w http.ResponseWriter, r *http.Request) {
	view, err := h.txService.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Cancel handles POST /api/transactions/{id}/cancel
func (h *TransactionHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	view, err := h.txService.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// SubmitProof handles POST /api/transactions/{id}/proof. The multipart file
// is re-encoded and uploaded before the transaction is updated.
func (h *TransactionHandlers) SubmitProof(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProofUploadBytes)
	if err := r.ParseMultipartForm(maxProofUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid upload")
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		respondError(w, http.StatusBadRequest, "proof file is required")
		return
	}
	defer file.Close()

	view, err := h.txService.SubmitProof(r.Context(), chi.URLParam(r, "id"), file, header.Filename)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Countdown handles GET /api/transactions/{id}/countdown as a server-sent
// event stream. One snapshot per second until the payment window closes, the
// transaction stops waiting for payment, or the client disconnects.
func (h *TransactionHandlers) Countdown(w http.ResponseWriter, r *http.Request) {
	view, err := h.txService.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if view.Countdown == nil || view.Transaction.ExpiredDate == nil {
		respondError(w, http.StatusConflict, "transaction is not waiting for payment")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// When the clock hits zero, refetch once so the stream's last frame
	// carries the server's post-expiry state, then stop
	onExpire := func() {
		refreshed, err := h.txService.Detail(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			return
		}
		payload, err := json.Marshal(refreshed)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "event: expired\ndata: %s\n\n", payload)
		flusher.Flush()
	}

	countdown := services.NewCountdown(*view.Transaction.ExpiredDate, onExpire,
		services.WithTick(func(snap services.CountdownSnapshot) {
			payload, err := json.Marshal(snap)
			if err != nil {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}),
	)
	countdown.Run(r.Context())
}
