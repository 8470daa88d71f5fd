package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// ProfileRepository implements usecase.ProfileRepository on the profiles
// collection.
type ProfileRepository struct {
	store *CollectionStore
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(store *CollectionStore) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	return mutate(ctx, r.store, usecase.CollectionProfiles, func(records []domain.Profile) ([]domain.Profile, error) {
		return append(records, *profile), nil
	})
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	records, err := loadAll[domain.Profile](ctx, r.store, usecase.CollectionProfiles)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	return mutate(ctx, r.store, usecase.CollectionProfiles, func(records []domain.Profile) ([]domain.Profile, error) {
		for i := range records {
			if records[i].ID == profile.ID {
				records[i] = *profile
				return records, nil
			}
		}
		return nil, domain.ErrProfileNotFound
	})
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionProfiles, func(records []domain.Profile) ([]domain.Profile, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrProfileNotFound
	})
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	return loadAll[domain.Profile](ctx, r.store, usecase.CollectionProfiles)
}

func (r *ProfileRepository) GetActive(ctx context.Context) (*domain.Profile, error) {
	records, err := loadAll[domain.Profile](ctx, r.store, usecase.CollectionProfiles)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Active {
			return &records[i], nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

// Activate flips the active flag to id in one write, so there is never a
// moment with two active profiles on disk.
func (r *ProfileRepository) Activate(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionProfiles, func(records []domain.Profile) ([]domain.Profile, error) {
		found := false
		for i := range records {
			records[i].Active = records[i].ID == id
			if records[i].Active {
				found = true
			}
		}
		if !found {
			return nil, domain.ErrProfileNotFound
		}
		return records, nil
	})
}
