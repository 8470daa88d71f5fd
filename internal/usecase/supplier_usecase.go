package usecase

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
)

// SupplierUseCase handles supplier/shop management.
type SupplierUseCase struct {
	suppliers SupplierRepository
	idGen     IDGenerator
}

// NewSupplierUseCase creates a new SupplierUseCase.
func NewSupplierUseCase(suppliers SupplierRepository, idGen IDGenerator) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, idGen: idGen}
}

// CreateSupplierInput represents input for creating a supplier.
type CreateSupplierInput struct {
	Name         string
	Company      string
	Contact      string
	Whatsapp     string
	Address      string
	CNIC         string
	PaymentTerms string
	Notes        string
	TypeID       string
	Photo        string
}

// CreateSupplier creates a new supplier with an active status.
func (uc *SupplierUseCase) CreateSupplier(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	supplier := &domain.Supplier{
		ID:           uc.idGen.Generate(),
		Name:         input.Name,
		Company:      input.Company,
		Contact:      input.Contact,
		Whatsapp:     input.Whatsapp,
		Address:      input.Address,
		CNIC:         input.CNIC,
		PaymentTerms: input.PaymentTerms,
		Notes:        input.Notes,
		Status:       domain.StatusActive,
		TypeID:       input.TypeID,
		Photo:        input.Photo,
	}
	if err := uc.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID.
func (uc *SupplierUseCase) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	return uc.suppliers.GetByID(ctx, id)
}

// ListSuppliers lists all suppliers.
func (uc *SupplierUseCase) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return uc.suppliers.List(ctx)
}

// UpdateSupplier updates an existing supplier.
func (uc *SupplierUseCase) UpdateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	if err := domain.ValidateName(supplier.Name); err != nil {
		return nil, err
	}
	if err := uc.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier.
func (uc *SupplierUseCase) DeleteSupplier(ctx context.Context, id string) error {
	return uc.suppliers.Delete(ctx, id)
}
