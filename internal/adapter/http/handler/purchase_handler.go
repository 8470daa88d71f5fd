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

// PurchaseService defines the behavior needed by PurchaseHandler.
type PurchaseService interface {
	RecordPurchase(ctx context.Context, input usecase.RecordPurchaseInput) (*domain.Purchase, error)
	GetPurchase(ctx context.Context, id string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
}

// PurchaseHandler handles purchase-related HTTP requests.
type PurchaseHandler struct {
	purchaseUC PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseUC PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: purchaseUC}
}

// Create records a new purchase.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	purchase, err := h.purchaseUC.RecordPurchase(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record purchase", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, purchase)
}

// Get retrieves a purchase by ID.
func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	purchase, err := h.purchaseUC.GetPurchase(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get purchase", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, purchase)
}

// List lists purchases, optionally filtered by supplier via ?supplierId=.
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	supplierID := r.URL.Query().Get("supplierId")

	purchases, err := h.purchaseUC.ListPurchases(r.Context(), supplierID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list purchases", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(purchases))
}

// Delete removes a purchase.
func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.purchaseUC.DeletePurchase(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete purchase", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
