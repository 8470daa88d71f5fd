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

// SaleService defines the behavior needed by SaleHandler.
type SaleService interface {
	RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*domain.Sale, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
	ListSales(ctx context.Context, customerID string) ([]domain.Sale, error)
	DeleteSale(ctx context.Context, id string) error
}

// SaleHandler handles sale-related HTTP requests.
type SaleHandler struct {
	saleUC SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleUC SaleService) *SaleHandler {
	return &SaleHandler{saleUC: saleUC}
}

// Create records a new sale.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sale, err := h.saleUC.RecordSale(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record sale", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, sale)
}

// Get retrieves a sale by ID.
func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sale, err := h.saleUC.GetSale(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get sale", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sale)
}

// List lists sales, optionally filtered by customer via ?customerId=.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")

	sales, err := h.saleUC.ListSales(r.Context(), customerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list sales", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(sales))
}

// Delete removes a sale.
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.saleUC.DeleteSale(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete sale", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
