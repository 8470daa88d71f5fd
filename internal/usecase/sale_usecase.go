package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
)

// SaleUseCase handles sales invoices.
type SaleUseCase struct {
	sales      SaleRepository
	customers  CustomerRepository
	idGen      IDGenerator
	statements *StatementInvalidator
}

// NewSaleUseCase creates a new SaleUseCase.
func NewSaleUseCase(sales SaleRepository, customers CustomerRepository, idGen IDGenerator, statements *StatementInvalidator) *SaleUseCase {
	return &SaleUseCase{sales: sales, customers: customers, idGen: idGen, statements: statements}
}

// RecordSaleInput represents input for recording a sale.
type RecordSaleInput struct {
	CustomerID     string
	InvoiceNumber  string
	InvoiceDate    string
	GrandTotal     decimal.Decimal
	AmountReceived decimal.Decimal
	Items          []domain.LineItem
}

// RecordSale stores a sale against an existing customer. Dates and
// amounts are validated at write time; a malformed record would poison
// the customer's ledger.
func (uc *SaleUseCase) RecordSale(ctx context.Context, input RecordSaleInput) (*domain.Sale, error) {
	if _, err := uc.customers.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}
	if _, err := domain.ParseDate(input.InvoiceDate); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.GrandTotal); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.AmountReceived); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ID:             uc.idGen.Generate(),
		CustomerID:     input.CustomerID,
		InvoiceNumber:  input.InvoiceNumber,
		InvoiceDate:    input.InvoiceDate,
		GrandTotal:     input.GrandTotal,
		AmountReceived: input.AmountReceived,
		Items:          input.Items,
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	uc.statements.Invalidate(ctx)
	return sale, nil
}

// GetSale retrieves a sale by ID.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	return uc.sales.GetByID(ctx, id)
}

// ListSales lists sales, optionally for one customer.
func (uc *SaleUseCase) ListSales(ctx context.Context, customerID string) ([]domain.Sale, error) {
	if customerID != "" {
		return uc.sales.ListByCustomer(ctx, customerID)
	}
	return uc.sales.List(ctx)
}

// DeleteSale removes a sale.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	if err := uc.sales.Delete(ctx, id); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}
