package sandbox

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hance08/teller/internal/store"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr answers with the error text and a status derived from it.
func writeErr(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrAccountOpen),
		errors.Is(err, ErrNotMatured):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrWrongKind),
		errors.Is(err, ErrSameAccount),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, errBadParam),
		errors.Is(err, store.ErrConstraintViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
