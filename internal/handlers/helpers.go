package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"activity-booking-platform/internal/api"
	"activity-booking-platform/internal/models"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service and upstream errors onto HTTP statuses.
// Sentinel errors keep their user-facing messages; unexpected errors get a
// generic body so upstream internals never leak to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrCartItemNotFound),
		errors.Is(err, models.ErrTransactionNotFound),
		errors.Is(err, models.ErrActivityNotFound),
		errors.Is(err, models.ErrPromoNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrNothingSelected),
		errors.Is(err, models.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrActionNotAllowed):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			status := apiErr.StatusCode
			if status < 400 || status > 599 {
				status = http.StatusBadGateway
			}
			respondError(w, status, apiErr.Error())
			return
		}

		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
	}
}

// decodeJSON decodes a request body, rejecting unknown fields
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}
