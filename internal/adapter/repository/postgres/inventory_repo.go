package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// InventoryRepository implements usecase.InventoryRepository on the
// inventory collection.
type InventoryRepository struct {
	store *CollectionStore
}

// NewInventoryRepository creates a new InventoryRepository.
func NewInventoryRepository(store *CollectionStore) *InventoryRepository {
	return &InventoryRepository{store: store}
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	return mutate(ctx, r.store, usecase.CollectionInventory, func(records []domain.InventoryItem) ([]domain.InventoryItem, error) {
		return append(records, *item), nil
	})
}

func (r *InventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	records, err := loadAll[domain.InventoryItem](ctx, r.store, usecase.CollectionInventory)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *InventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	return mutate(ctx, r.store, usecase.CollectionInventory, func(records []domain.InventoryItem) ([]domain.InventoryItem, error) {
		for i := range records {
			if records[i].ID == item.ID {
				records[i] = *item
				return records, nil
			}
		}
		return nil, domain.ErrRecordNotFound
	})
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionInventory, func(records []domain.InventoryItem) ([]domain.InventoryItem, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrRecordNotFound
	})
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return loadAll[domain.InventoryItem](ctx, r.store, usecase.CollectionInventory)
}
