package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// SalaryTransactionRepository implements usecase.SalaryTransactionRepository.
type SalaryTransactionRepository struct {
	store *CollectionStore
}

// NewSalaryTransactionRepository creates a new SalaryTransactionRepository.
func NewSalaryTransactionRepository(store *CollectionStore) *SalaryTransactionRepository {
	return &SalaryTransactionRepository{store: store}
}

func (r *SalaryTransactionRepository) Create(ctx context.Context, tx *domain.SalaryTransaction) error {
	return mutate(ctx, r.store, usecase.CollectionSalaryTransactions, func(records []domain.SalaryTransaction) ([]domain.SalaryTransaction, error) {
		return append(records, *tx), nil
	})
}

func (r *SalaryTransactionRepository) List(ctx context.Context) ([]domain.SalaryTransaction, error) {
	return loadAll[domain.SalaryTransaction](ctx, r.store, usecase.CollectionSalaryTransactions)
}

func (r *SalaryTransactionRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.SalaryTransaction, error) {
	records, err := loadAll[domain.SalaryTransaction](ctx, r.store, usecase.CollectionSalaryTransactions)
	if err != nil {
		return nil, err
	}
	var out []domain.SalaryTransaction
	for _, tx := range records {
		if tx.WorkerID == workerID {
			out = append(out, tx)
		}
	}
	return out, nil
}
