package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// UserRepository implements usecase.UserRepository on the users
// collection.
type UserRepository struct {
	store *CollectionStore
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store *CollectionStore) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return mutate(ctx, r.store, usecase.CollectionUsers, func(records []domain.User) ([]domain.User, error) {
		for i := range records {
			if records[i].Email == user.Email {
				return nil, domain.ErrUserAlreadyExists
			}
		}
		return append(records, *user), nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	records, err := loadAll[domain.User](ctx, r.store, usecase.CollectionUsers)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	records, err := loadAll[domain.User](ctx, r.store, usecase.CollectionUsers)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Email == email {
			return &records[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return loadAll[domain.User](ctx, r.store, usecase.CollectionUsers)
}
