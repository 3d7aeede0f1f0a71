package postgres

import (
	"context"
	"fmt"
)

// CounterStore implements sequence.Counter on top of a single upsert.
// The insert-or-increment runs as one statement, so concurrent callers across
// any number of processes each get a distinct value.
type CounterStore struct {
	db *DB
}

func NewCounterStore(db *DB) *CounterStore {
	return &CounterStore{db: db}
}

func (s *CounterStore) Next(ctx context.Context, name, dayKey string) (int64, error) {
	var n int64
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO sequence_counters (name, day_key, counter)
		VALUES ($1, $2, 1)
		ON CONFLICT (name, day_key)
		DO UPDATE SET counter = sequence_counters.counter + 1
		RETURNING counter
	`, name, dayKey).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("increment counter %s/%s: %w", name, dayKey, err)
	}
	return n, nil
}
