package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/khatadesk/khata/internal/adapter/http/dto"
	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
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

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrSupplierNotFound),
		errors.Is(err, domain.ErrWorkerNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDateUnparsable),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidWorkType),
		errors.Is(err, domain.ErrInvalidSalaryType),
		errors.Is(err, domain.ErrInvalidProfileType),
		errors.Is(err, domain.ErrInvalidRowRange),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// parseStatementQuery extracts the optional date range and row window
// from query parameters: from, to (dates) and start, end (1-indexed row
// numbers).
func parseStatementQuery(r *http.Request) (usecase.StatementQuery, error) {
	var q usecase.StatementQuery

	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := domain.ParseDate(raw)
		if err != nil {
			return q, err
		}
		q.From = t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := domain.ParseDate(raw)
		if err != nil {
			return q, err
		}
		q.To = t
	}
	if raw := r.URL.Query().Get("start"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, domain.ErrInvalidRowRange
		}
		q.Rows.Start = &n
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, domain.ErrInvalidRowRange
		}
		q.Rows.End = &n
	}
	return q, nil
}
