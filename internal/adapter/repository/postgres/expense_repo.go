package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// ExpenseRepository implements usecase.ExpenseRepository on the expenses
// collection.
type ExpenseRepository struct {
	store *CollectionStore
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(store *CollectionStore) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	return mutate(ctx, r.store, usecase.CollectionExpenses, func(records []domain.Expense) ([]domain.Expense, error) {
		return append(records, *expense), nil
	})
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	records, err := loadAll[domain.Expense](ctx, r.store, usecase.CollectionExpenses)
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

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionExpenses, func(records []domain.Expense) ([]domain.Expense, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrRecordNotFound
	})
}

func (r *ExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	return loadAll[domain.Expense](ctx, r.store, usecase.CollectionExpenses)
}

func (r *ExpenseRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Expense, error) {
	records, err := loadAll[domain.Expense](ctx, r.store, usecase.CollectionExpenses)
	if err != nil {
		return nil, err
	}
	var out []domain.Expense
	for _, e := range records {
		if e.ShopID == shopID {
			out = append(out, e)
		}
	}
	return out, nil
}
