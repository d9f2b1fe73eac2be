package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/service"
)

// writeSuccess writes a JSON envelope with success set to true plus the
// given body fields
func writeSuccess(w http.ResponseWriter, status int, body map[string]any) {
	payload := map[string]any{"success": true}
	for k, v := range body {
		payload[k] = v
	}
	writeJSON(w, status, payload)
}

// writeError maps a service error onto an HTTP status and a safe message.
// Internal errors never leak their detail to the client.
func writeError(w http.ResponseWriter, err error) {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
		logger.Error("Request failed", "error", err)
	}

	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// decodeJSON parses the request body into dst, rejecting malformed input
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.InvalidArgumentError("invalid request body")
	}
	return nil
}
