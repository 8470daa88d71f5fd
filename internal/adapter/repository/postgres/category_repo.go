package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// ExpenseCategoryRepository implements usecase.ExpenseCategoryRepository.
type ExpenseCategoryRepository struct {
	store *CollectionStore
}

// NewExpenseCategoryRepository creates a new ExpenseCategoryRepository.
func NewExpenseCategoryRepository(store *CollectionStore) *ExpenseCategoryRepository {
	return &ExpenseCategoryRepository{store: store}
}

func (r *ExpenseCategoryRepository) Create(ctx context.Context, category *domain.ExpenseCategory) error {
	return mutate(ctx, r.store, usecase.CollectionExpenseCategories, func(records []domain.ExpenseCategory) ([]domain.ExpenseCategory, error) {
		return append(records, *category), nil
	})
}

func (r *ExpenseCategoryRepository) Update(ctx context.Context, category *domain.ExpenseCategory) error {
	return mutate(ctx, r.store, usecase.CollectionExpenseCategories, func(records []domain.ExpenseCategory) ([]domain.ExpenseCategory, error) {
		for i := range records {
			if records[i].ID == category.ID {
				records[i] = *category
				return records, nil
			}
		}
		return nil, domain.ErrRecordNotFound
	})
}

func (r *ExpenseCategoryRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionExpenseCategories, func(records []domain.ExpenseCategory) ([]domain.ExpenseCategory, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrRecordNotFound
	})
}

func (r *ExpenseCategoryRepository) List(ctx context.Context) ([]domain.ExpenseCategory, error) {
	return loadAll[domain.ExpenseCategory](ctx, r.store, usecase.CollectionExpenseCategories)
}
