package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// PurchaseRepository implements usecase.PurchaseRepository on the
// purchases collection.
type PurchaseRepository struct {
	store *CollectionStore
}

// NewPurchaseRepository creates a new PurchaseRepository.
func NewPurchaseRepository(store *CollectionStore) *PurchaseRepository {
	return &PurchaseRepository{store: store}
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	return mutate(ctx, r.store, usecase.CollectionPurchases, func(records []domain.Purchase) ([]domain.Purchase, error) {
		return append(records, *purchase), nil
	})
}

func (r *PurchaseRepository) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	records, err := loadAll[domain.Purchase](ctx, r.store, usecase.CollectionPurchases)
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

func (r *PurchaseRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionPurchases, func(records []domain.Purchase) ([]domain.Purchase, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrRecordNotFound
	})
}

func (r *PurchaseRepository) List(ctx context.Context) ([]domain.Purchase, error) {
	return loadAll[domain.Purchase](ctx, r.store, usecase.CollectionPurchases)
}

func (r *PurchaseRepository) ListBySupplier(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	records, err := loadAll[domain.Purchase](ctx, r.store, usecase.CollectionPurchases)
	if err != nil {
		return nil, err
	}
	var out []domain.Purchase
	for _, p := range records {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}
