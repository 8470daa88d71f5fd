package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/khatadesk/khata/internal/adapter/http/dto"
	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// ProductionService defines the behavior needed by ProductionHandler.
type ProductionService interface {
	RecordBatch(ctx context.Context, input usecase.RecordBatchInput) (*domain.ProductionBatch, error)
	ListBatches(ctx context.Context) ([]domain.ProductionBatch, error)
}

// ProductionHandler handles production batch HTTP requests.
type ProductionHandler struct {
	productionUC ProductionService
}

// NewProductionHandler creates a new ProductionHandler.
func NewProductionHandler(productionUC ProductionService) *ProductionHandler {
	return &ProductionHandler{productionUC: productionUC}
}

// Create records a new production batch.
func (h *ProductionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	batch, err := h.productionUC.RecordBatch(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record batch", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, batch)
}

// List lists all production batches.
func (h *ProductionHandler) List(w http.ResponseWriter, r *http.Request) {
	batches, err := h.productionUC.ListBatches(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list batches", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(batches))
}
