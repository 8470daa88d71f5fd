package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
)

// ExpenseUseCase handles expenses and their categories.
type ExpenseUseCase struct {
	expenses   ExpenseRepository
	categories ExpenseCategoryRepository
	suppliers  SupplierRepository
	idGen      IDGenerator
	statements *StatementInvalidator
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(expenses ExpenseRepository, categories ExpenseCategoryRepository, suppliers SupplierRepository, idGen IDGenerator, statements *StatementInvalidator) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses, categories: categories, suppliers: suppliers, idGen: idGen, statements: statements}
}

// RecordExpenseInput represents input for recording an expense.
type RecordExpenseInput struct {
	ShopID     string
	Date       string
	TotalBill  decimal.Decimal
	AmountPaid decimal.Decimal
	Notes      string
	CategoryID string
	ItemID     string
}

// RecordExpense stores an expense against an existing shop.
func (uc *ExpenseUseCase) RecordExpense(ctx context.Context, input RecordExpenseInput) (*domain.Expense, error) {
	if _, err := uc.suppliers.GetByID(ctx, input.ShopID); err != nil {
		return nil, err
	}
	if _, err := domain.ParseDate(input.Date); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.TotalBill); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.AmountPaid); err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		ID:         uc.idGen.Generate(),
		ShopID:     input.ShopID,
		Date:       input.Date,
		TotalBill:  input.TotalBill,
		AmountPaid: input.AmountPaid,
		Notes:      input.Notes,
		CategoryID: input.CategoryID,
		ItemID:     input.ItemID,
	}
	if err := uc.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	uc.statements.Invalidate(ctx)
	return expense, nil
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return uc.expenses.GetByID(ctx, id)
}

// ListExpenses lists expenses, optionally for one shop.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, shopID string) ([]domain.Expense, error) {
	if shopID != "" {
		return uc.expenses.ListByShop(ctx, shopID)
	}
	return uc.expenses.List(ctx)
}

// DeleteExpense removes an expense.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	if err := uc.expenses.Delete(ctx, id); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}

// CreateCategoryInput represents input for creating an expense category.
type CreateCategoryInput struct {
	Name  string
	Items []domain.CategoryItem
}

// CreateCategory creates an expense category. Items without an ID get one
// generated.
func (uc *ExpenseUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.ExpenseCategory, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	items := make([]domain.CategoryItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.ID == "" {
			it.ID = uc.idGen.Generate()
		}
		items = append(items, it)
	}
	category := &domain.ExpenseCategory{
		ID:    uc.idGen.Generate(),
		Name:  input.Name,
		Items: items,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.statements.Invalidate(ctx)
	return category, nil
}

// ListCategories lists all expense categories.
func (uc *ExpenseUseCase) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	return uc.categories.List(ctx)
}

// UpdateCategory replaces a category's name and items.
func (uc *ExpenseUseCase) UpdateCategory(ctx context.Context, category *domain.ExpenseCategory) error {
	if err := domain.ValidateName(category.Name); err != nil {
		return err
	}
	if err := uc.categories.Update(ctx, category); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}

// DeleteCategory removes a category. Expenses referencing it fall back to
// the generic description.
func (uc *ExpenseUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.categories.Delete(ctx, id); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}
