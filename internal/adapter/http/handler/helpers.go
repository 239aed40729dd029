package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/goexpense/internal/adapter/http/dto"
	"github.com/iho/goexpense/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeServiceError maps err to a status code and writes it. Corrupted store
// data is reported without echoing the offending record.
func writeServiceError(w http.ResponseWriter, err error) {
	var invalid *dto.ValidationError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:  "validation failed",
			Fields: invalid.Fields,
		})
		return
	}

	var corrupted *domain.ValidationError
	if errors.As(err, &corrupted) {
		writeError(w, http.StatusInternalServerError, "data error", "stored expense data is malformed")
		return
	}

	status := mapDomainError(err)
	if status == http.StatusInternalServerError {
		writeError(w, status, "internal error", "")
		return
	}
	writeError(w, status, http.StatusText(status), err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var corrupted *domain.ValidationError
	switch {
	case errors.As(err, &corrupted):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrExpenseNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateExpense):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMalformedDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
