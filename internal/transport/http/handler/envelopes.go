package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-crm-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TokenEnvelope wraps successful login responses.
type TokenEnvelope struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CustomerEnvelope wraps a single-customer response.
type CustomerEnvelope struct {
	Message  string           `json:"message,omitempty"`
	Customer *domain.Customer `json:"customer,omitempty"`
}

// CustomerListEnvelope wraps paginated customer list responses.
type CustomerListEnvelope struct {
	Message    string            `json:"message,omitempty"`
	Customers  []domain.Customer `json:"customers"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// statusForError maps domain sentinel errors to HTTP status codes.
// Conflicts map to 400, matching the API contract existing clients rely on.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
