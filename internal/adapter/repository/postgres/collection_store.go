package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectCollectionSQL          = `SELECT data FROM collections WHERE name = $1`
	selectCollectionForUpdateSQL = `SELECT data FROM collections WHERE name = $1 FOR UPDATE`
	upsertCollectionSQL          = `INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
)

// CollectionStore persists whole named record arrays as jsonb rows. Each
// collection is one row; writers replace the array under a row lock so
// concurrent mutations serialize instead of clobbering each other.
type CollectionStore struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewCollectionStore creates a new CollectionStore.
func NewCollectionStore(pool *pgxpool.Pool, retrier *Retrier) *CollectionStore {
	return &CollectionStore{pool: pool, retrier: retrier}
}

// Load reads a collection into out, which must be a pointer to a slice.
// A collection that was never written loads as empty.
func (s *CollectionStore) Load(ctx context.Context, name string, out any) error {
	var raw []byte
	err := s.pool.QueryRow(ctx, selectCollectionSQL, name).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// Save replaces a collection with records.
func (s *CollectionStore) Save(ctx context.Context, name string, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, upsertCollectionSQL, name, raw)
	return err
}

// loadAll is the typed read path the repositories share.
func loadAll[T any](ctx context.Context, s *CollectionStore, name string) ([]T, error) {
	var records []T
	if err := s.Load(ctx, name, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// mutate applies fn to the current records of a collection inside a
// transaction holding the row lock, then writes the result back. Deadlocks
// and serialization failures retry with backoff; fn errors do not.
func mutate[T any](ctx context.Context, s *CollectionStore, name string, fn func(records []T) ([]T, error)) error {
	return s.retrier.Retry(ctx, func() error {
		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		var raw []byte
		err = tx.QueryRow(ctx, selectCollectionForUpdateSQL, name).Scan(&raw)
		var records []T
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// First write to this collection.
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(raw, &records); err != nil {
				return err
			}
		}

		updated, err := fn(records)
		if err != nil {
			return err
		}
		data, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, upsertCollectionSQL, name, data); err != nil {
			return err
		}
		return tx.Commit(ctx)
	})
}
