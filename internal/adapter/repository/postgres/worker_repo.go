package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// WorkerRepository implements usecase.WorkerRepository on the workers
// collection.
type WorkerRepository struct {
	store *CollectionStore
}

// NewWorkerRepository creates a new WorkerRepository.
func NewWorkerRepository(store *CollectionStore) *WorkerRepository {
	return &WorkerRepository{store: store}
}

func (r *WorkerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	return mutate(ctx, r.store, usecase.CollectionWorkers, func(records []domain.Worker) ([]domain.Worker, error) {
		return append(records, *worker), nil
	})
}

func (r *WorkerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	records, err := loadAll[domain.Worker](ctx, r.store, usecase.CollectionWorkers)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrWorkerNotFound
}

func (r *WorkerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	return mutate(ctx, r.store, usecase.CollectionWorkers, func(records []domain.Worker) ([]domain.Worker, error) {
		for i := range records {
			if records[i].ID == worker.ID {
				records[i] = *worker
				return records, nil
			}
		}
		return nil, domain.ErrWorkerNotFound
	})
}

func (r *WorkerRepository) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.store, usecase.CollectionWorkers, func(records []domain.Worker) ([]domain.Worker, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrWorkerNotFound
	})
}

func (r *WorkerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	return loadAll[domain.Worker](ctx, r.store, usecase.CollectionWorkers)
}
