package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
)

// CustomerUseCase handles customer management.
type CustomerUseCase struct {
	customers CustomerRepository
	idGen     IDGenerator
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customers CustomerRepository, idGen IDGenerator) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, idGen: idGen}
}

// CreateCustomerInput represents input for creating a customer.
type CreateCustomerInput struct {
	Name        string
	Company     string
	Contact     string
	Whatsapp    string
	Address     string
	CNIC        string
	CreditLimit decimal.Decimal
	Notes       string
	TypeID      string
	Photo       string
}

// CreateCustomer creates a new customer with an active status.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.CreditLimit); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:          uc.idGen.Generate(),
		Name:        input.Name,
		Company:     input.Company,
		Contact:     input.Contact,
		Whatsapp:    input.Whatsapp,
		Address:     input.Address,
		CNIC:        input.CNIC,
		CreditLimit: input.CreditLimit,
		Notes:       input.Notes,
		Status:      domain.StatusActive,
		TypeID:      input.TypeID,
		Photo:       input.Photo,
	}
	if err := uc.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.customers.GetByID(ctx, id)
}

// ListCustomers lists all customers.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return uc.customers.List(ctx)
}

// UpdateCustomer updates an existing customer.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := domain.ValidateName(customer.Name); err != nil {
		return nil, err
	}
	if err := uc.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Their sales records stay; deleting a
// counterparty never rewrites history.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	return uc.customers.Delete(ctx, id)
}
