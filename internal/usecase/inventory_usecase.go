package usecase

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
)

// InventoryUseCase handles inventory items.
type InventoryUseCase struct {
	inventory InventoryRepository
	idGen     IDGenerator
}

// NewInventoryUseCase creates a new InventoryUseCase.
func NewInventoryUseCase(inventory InventoryRepository, idGen IDGenerator) *InventoryUseCase {
	return &InventoryUseCase{inventory: inventory, idGen: idGen}
}

// CreateItem creates a named inventory item.
func (uc *InventoryUseCase) CreateItem(ctx context.Context, name string) (*domain.InventoryItem, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	item := &domain.InventoryItem{
		ID:   uc.idGen.Generate(),
		Name: name,
	}
	if err := uc.inventory.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an inventory item by ID.
func (uc *InventoryUseCase) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return uc.inventory.GetByID(ctx, id)
}

// ListItems lists all inventory items.
func (uc *InventoryUseCase) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return uc.inventory.List(ctx)
}

// RenameItem updates an item's name.
func (uc *InventoryUseCase) RenameItem(ctx context.Context, id, name string) (*domain.InventoryItem, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	item, err := uc.inventory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = name
	if err := uc.inventory.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an inventory item. Line items referencing it render
// with the raw ID from then on.
func (uc *InventoryUseCase) DeleteItem(ctx context.Context, id string) error {
	return uc.inventory.Delete(ctx, id)
}
