package web

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"lendledger/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// writeError maps an engine error kind onto a status code. Anything that is
// not one of the known kinds is a bug and surfaces as a 500.
func writeError(w http.ResponseWriter, err error) {
	var status int
	var kind string
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrDuplicateKey):
		status, kind = http.StatusConflict, "duplicate_key"
	case errors.Is(err, domain.ErrUnavailable):
		status, kind = http.StatusConflict, "unavailable"
	case errors.Is(err, domain.ErrHasDependents):
		status, kind = http.StatusConflict, "has_dependents"
	case errors.Is(err, domain.ErrInvalidRange):
		status, kind = http.StatusBadRequest, "invalid_range"
	case errors.Is(err, domain.ErrInvalidArgument):
		status, kind = http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, domain.ErrInsufficientFunds):
		status, kind = http.StatusPaymentRequired, "insufficient_funds"
	default:
		status, kind = http.StatusInternalServerError, "internal"
	}
	writeJSON(w, status, errorResponse{Error: kind, Detail: err.Error()})
}
