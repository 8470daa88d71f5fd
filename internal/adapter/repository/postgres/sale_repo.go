package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// SaleRepository implements usecase.SaleRepository on the sales
// collection.
type SaleRepository struct {
	store *CollectionStore
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(store *CollectionStore) *SaleRepository {
	return &SaleRepository{store: store}
}

func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	return mutate(ctx, r.store, usecase.CollectionSales, func(records []domain.Sale) ([]domain.Sale, error) {
		return append(records, *sale), nil
	})
}

func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	records, err := loadAll[domain.Sale](ctx, r.store, usecase.CollectionSales)
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

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionSales, func(records []domain.Sale) ([]domain.Sale, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrRecordNotFound
	})
}

func (r *SaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	return loadAll[domain.Sale](ctx, r.store, usecase.CollectionSales)
}

func (r *SaleRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Sale, error) {
	records, err := loadAll[domain.Sale](ctx, r.store, usecase.CollectionSales)
	if err != nil {
		return nil, err
	}
	var out []domain.Sale
	for _, s := range records {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}
