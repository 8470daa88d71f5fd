package postgres

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// AttendanceRepository implements usecase.AttendanceRepository. All
// workers share one attendance collection; writes swap out one worker's
// slice of it.
type AttendanceRepository struct {
	store *CollectionStore
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(store *CollectionStore) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.AttendanceRecord, error) {
	records, err := loadAll[domain.AttendanceRecord](ctx, r.store, usecase.CollectionAttendance)
	if err != nil {
		return nil, err
	}
	var out []domain.AttendanceRecord
	for _, rec := range records {
		if rec.WorkerID == workerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *AttendanceRepository) SetForWorker(ctx context.Context, workerID string, records []domain.AttendanceRecord) error {
	return mutate(ctx, r.store, usecase.CollectionAttendance, func(existing []domain.AttendanceRecord) ([]domain.AttendanceRecord, error) {
		kept := existing[:0]
		for _, rec := range existing {
			if rec.WorkerID != workerID {
				kept = append(kept, rec)
			}
		}
		return append(kept, records...), nil
	})
}
