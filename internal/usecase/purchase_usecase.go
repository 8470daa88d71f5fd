package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
)

// PurchaseUseCase handles purchase bills.
type PurchaseUseCase struct {
	purchases  PurchaseRepository
	suppliers  SupplierRepository
	idGen      IDGenerator
	statements *StatementInvalidator
}

// NewPurchaseUseCase creates a new PurchaseUseCase.
func NewPurchaseUseCase(purchases PurchaseRepository, suppliers SupplierRepository, idGen IDGenerator, statements *StatementInvalidator) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, suppliers: suppliers, idGen: idGen, statements: statements}
}

// RecordPurchaseInput represents input for recording a purchase.
type RecordPurchaseInput struct {
	SupplierID   string
	BillNumber   string
	PurchaseDate string
	GrandTotal   decimal.Decimal
	AmountPaid   decimal.Decimal
	Items        []domain.LineItem
}

// RecordPurchase stores a purchase against an existing supplier.
func (uc *PurchaseUseCase) RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*domain.Purchase, error) {
	if _, err := uc.suppliers.GetByID(ctx, input.SupplierID); err != nil {
		return nil, err
	}
	if _, err := domain.ParseDate(input.PurchaseDate); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.GrandTotal); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.AmountPaid); err != nil {
		return nil, err
	}

	purchase := &domain.Purchase{
		ID:           uc.idGen.Generate(),
		SupplierID:   input.SupplierID,
		BillNumber:   input.BillNumber,
		PurchaseDate: input.PurchaseDate,
		GrandTotal:   input.GrandTotal,
		AmountPaid:   input.AmountPaid,
		Items:        input.Items,
	}
	if err := uc.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}
	uc.statements.Invalidate(ctx)
	return purchase, nil
}

// GetPurchase retrieves a purchase by ID.
func (uc *PurchaseUseCase) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	return uc.purchases.GetByID(ctx, id)
}

// ListPurchases lists purchases, optionally for one supplier.
func (uc *PurchaseUseCase) ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	if supplierID != "" {
		return uc.purchases.ListBySupplier(ctx, supplierID)
	}
	return uc.purchases.List(ctx)
}

// DeletePurchase removes a purchase.
func (uc *PurchaseUseCase) DeletePurchase(ctx context.Context, id string) error {
	if err := uc.purchases.Delete(ctx, id); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}
