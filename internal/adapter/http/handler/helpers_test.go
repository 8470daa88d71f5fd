package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/khatadesk/khata/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"customer not found", domain.ErrCustomerNotFound, http.StatusNotFound},
		{"supplier not found", domain.ErrSupplierNotFound, http.StatusNotFound},
		{"worker not found", domain.ErrWorkerNotFound, http.StatusNotFound},
		{"record not found", domain.ErrRecordNotFound, http.StatusNotFound},
		{"bad date", domain.ErrDateUnparsable, http.StatusBadRequest},
		{"bad amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"bad row range", domain.ErrInvalidRowRange, http.StatusBadRequest},
		{"duplicate user", domain.ErrUserAlreadyExists, http.StatusConflict},
		{"wrong password", domain.ErrInvalidPassword, http.StatusUnauthorized},
		{"expired token", domain.ErrExpiredToken, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseStatementQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/statement?from=2024-01-01&to=2024-02-01&start=2&end=5", nil)

	q, err := parseStatementQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.From.IsZero() || q.To.IsZero() {
		t.Fatal("expected from and to to be parsed")
	}
	if q.Rows.Start == nil || *q.Rows.Start != 2 {
		t.Fatalf("expected start=2, got %v", q.Rows.Start)
	}
	if q.Rows.End == nil || *q.Rows.End != 5 {
		t.Fatalf("expected end=5, got %v", q.Rows.End)
	}
}

func TestParseStatementQuery_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/statement", nil)

	q, err := parseStatementQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.From.IsZero() || !q.To.IsZero() || q.Rows.Start != nil || q.Rows.End != nil {
		t.Fatalf("expected empty query, got %+v", q)
	}
}

func TestParseStatementQuery_BadInput(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/statement?from=garbage", nil)
	if _, err := parseStatementQuery(req); !errors.Is(err, domain.ErrDateUnparsable) {
		t.Fatalf("expected ErrDateUnparsable, got %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/statement?start=abc", nil)
	if _, err := parseStatementQuery(req); !errors.Is(err, domain.ErrInvalidRowRange) {
		t.Fatalf("expected ErrInvalidRowRange, got %v", err)
	}
}
