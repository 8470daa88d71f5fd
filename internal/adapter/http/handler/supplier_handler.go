package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khatadesk/khata/internal/adapter/http/dto"
	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// SupplierService defines the behavior needed by SupplierHandler.
type SupplierService interface {
	CreateSupplier(ctx context.Context, input usecase.CreateSupplierInput) (*domain.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}

// SupplierStatementService builds supplier/shop statements.
type SupplierStatementService interface {
	SupplierStatement(ctx context.Context, supplierID string, q usecase.StatementQuery) (*usecase.Statement, error)
}

// SupplierHandler handles supplier-related HTTP requests.
type SupplierHandler struct {
	supplierUC  SupplierService
	statementUC SupplierStatementService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierUC SupplierService, statementUC SupplierStatementService) *SupplierHandler {
	return &SupplierHandler{supplierUC: supplierUC, statementUC: statementUC}
}

// Create creates a new supplier.
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	supplier, err := h.supplierUC.CreateSupplier(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, supplier)
}

// Get retrieves a supplier by ID.
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	supplier, err := h.supplierUC.GetSupplier(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, supplier)
}

// List lists all suppliers.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.supplierUC.ListSuppliers(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list suppliers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(suppliers))
}

// Update updates a supplier.
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var supplier domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	supplier.ID = chi.URLParam(r, "id")

	updated, err := h.supplierUC.UpdateSupplier(r.Context(), &supplier)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a supplier.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.supplierUC.DeleteSupplier(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete supplier", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Statement builds the supplier's or shop's ledger statement.
func (h *SupplierHandler) Statement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q, err := parseStatementQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid statement query", err.Error())
		return
	}

	st, err := h.statementUC.SupplierStatement(r.Context(), id, q)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(st))
}
