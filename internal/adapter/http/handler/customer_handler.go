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

// CustomerService defines the behavior needed by CustomerHandler.
type CustomerService interface {
	CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// CustomerStatementService builds customer statements.
type CustomerStatementService interface {
	CustomerStatement(ctx context.Context, customerID string, q usecase.StatementQuery) (*usecase.Statement, error)
}

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	customerUC  CustomerService
	statementUC CustomerStatementService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerUC CustomerService, statementUC CustomerStatementService) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC, statementUC: statementUC}
}

// Create creates a new customer.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.CreateCustomer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create customer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// Get retrieves a customer by ID.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := h.customerUC.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// List lists all customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerUC.ListCustomers(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list customers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(customers))
}

// Update updates a customer.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	customer.ID = chi.URLParam(r, "id")

	updated, err := h.customerUC.UpdateCustomer(r.Context(), &customer)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.customerUC.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete customer", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Statement builds the customer's ledger statement.
func (h *CustomerHandler) Statement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q, err := parseStatementQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid statement query", err.Error())
		return
	}

	st, err := h.statementUC.CustomerStatement(r.Context(), id, q)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(st))
}
