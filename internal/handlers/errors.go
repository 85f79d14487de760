package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/service"
)

// ErrMessageInternal is the generic message for 500 responses. Do not expose internal details to clients.
const ErrMessageInternal = "internal server error"

// ErrMessageInvalidData is the message that accompanies field-level validation errors.
const ErrMessageInvalidData = "Invalid data"

// JSONError sends a JSON error response with a single "error" field.
func JSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// JSONValidationError sends a JSON error response with "error" and optional "fields" for field-level details.
// status is typically http.StatusBadRequest (400).
func JSONValidationError(w http.ResponseWriter, message string, fields map[string]string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	out := map[string]interface{}{"error": message}
	if len(fields) > 0 {
		out["fields"] = fields
	}
	json.NewEncoder(w).Encode(out)
}

// statusFor maps a service error onto its HTTP status. nil maps to 0 so callers pick their success code.
func statusFor(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := service.IsValidation(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError sends the response for err. Internal failures are logged with the
// request id and answered with ErrMessageInternal only.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error, notFoundMsg string) {
	status := statusFor(err)
	switch status {
	case http.StatusBadRequest:
		if ve, ok := service.IsValidation(err); ok {
			JSONValidationError(w, ErrMessageInvalidData, ve.Fields, status)
			return
		}
		JSONError(w, err.Error(), status)
	case http.StatusNotFound:
		JSONError(w, notFoundMsg, status)
	case http.StatusInternalServerError:
		log.Error().Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("op", op).
			Msg("request failed")
		JSONError(w, ErrMessageInternal, status)
	default:
		JSONError(w, err.Error(), status)
	}
}
