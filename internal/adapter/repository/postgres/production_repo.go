package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// ProductionRepository implements usecase.ProductionRepository on the
// production-history collection.
type ProductionRepository struct {
	store *CollectionStore
}

// NewProductionRepository creates a new ProductionRepository.
func NewProductionRepository(store *CollectionStore) *ProductionRepository {
	return &ProductionRepository{store: store}
}

func (r *ProductionRepository) Create(ctx context.Context, batch *domain.ProductionBatch) error {
	return mutate(ctx, r.store, usecase.CollectionProductionHistory, func(records []domain.ProductionBatch) ([]domain.ProductionBatch, error) {
		return append(records, *batch), nil
	})
}

func (r *ProductionRepository) List(ctx context.Context) ([]domain.ProductionBatch, error) {
	return loadAll[domain.ProductionBatch](ctx, r.store, usecase.CollectionProductionHistory)
}
