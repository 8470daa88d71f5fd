package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khatadesk/khata/internal/adapter/http/dto"
	"github.com/khatadesk/khata/internal/domain"
)

// InventoryService defines the behavior needed by InventoryHandler.
type InventoryService interface {
	CreateItem(ctx context.Context, name string) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, id string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	RenameItem(ctx context.Context, id, name string) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// InventoryHandler handles inventory item HTTP requests.
type InventoryHandler struct {
	inventoryUC InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryUC InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryUC: inventoryUC}
}

// Create creates a new inventory item.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	item, err := h.inventoryUC.CreateItem(r.Context(), req.Name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create item", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Get retrieves an inventory item by ID.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.inventoryUC.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get item", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// List lists all inventory items.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUC.ListItems(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list items", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(items))
}

// Update renames an inventory item.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	item, err := h.inventoryUC.RenameItem(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to rename item", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete removes an inventory item.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.inventoryUC.DeleteItem(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete item", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
