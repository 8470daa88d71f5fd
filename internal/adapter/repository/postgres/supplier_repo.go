package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// SupplierRepository implements usecase.SupplierRepository on the
// suppliers collection.
type SupplierRepository struct {
	store *CollectionStore
}

// NewSupplierRepository creates a new SupplierRepository.
func NewSupplierRepository(store *CollectionStore) *SupplierRepository {
	return &SupplierRepository{store: store}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	return mutate(ctx, r.store, usecase.CollectionSuppliers, func(records []domain.Supplier) ([]domain.Supplier, error) {
		return append(records, *supplier), nil
	})
}

func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	records, err := loadAll[domain.Supplier](ctx, r.store, usecase.CollectionSuppliers)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrSupplierNotFound
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	return mutate(ctx, r.store, usecase.CollectionSuppliers, func(records []domain.Supplier) ([]domain.Supplier, error) {
		for i := range records {
			if records[i].ID == supplier.ID {
				records[i] = *supplier
				return records, nil
			}
		}
		return nil, domain.ErrSupplierNotFound
	})
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionSuppliers, func(records []domain.Supplier) ([]domain.Supplier, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrSupplierNotFound
	})
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	return loadAll[domain.Supplier](ctx, r.store, usecase.CollectionSuppliers)
}
