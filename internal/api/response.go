package api

import (
	"encoding/json"
	"net/http"

	"github.com/contactkeval/present-value/internal/logger"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logger.Errorf("failed to encode JSON response: %v", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string, details any) {
	respondJSON(w, status, ErrorResponse{Error: message, Details: details})
}
