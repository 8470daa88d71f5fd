package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// CustomerRepository implements usecase.CustomerRepository on the
// customers collection.
type CustomerRepository struct {
	store *CollectionStore
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(store *CollectionStore) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return mutate(ctx, r.store, usecase.CollectionCustomers, func(records []domain.Customer) ([]domain.Customer, error) {
		return append(records, *customer), nil
	})
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	records, err := loadAll[domain.Customer](ctx, r.store, usecase.CollectionCustomers)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return mutate(ctx, r.store, usecase.CollectionCustomers, func(records []domain.Customer) ([]domain.Customer, error) {
		for i := range records {
			if records[i].ID == customer.ID {
				records[i] = *customer
				return records, nil
			}
		}
		return nil, domain.ErrCustomerNotFound
	})
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionCustomers, func(records []domain.Customer) ([]domain.Customer, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrCustomerNotFound
	})
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	return loadAll[domain.Customer](ctx, r.store, usecase.CollectionCustomers)
}
