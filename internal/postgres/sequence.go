package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ganot/tasktrack/internal/logging"
	"github.com/ganot/tasktrack/internal/repository"
)

// SequenceAllocator implements repository.SequenceAllocator for PostgreSQL
type SequenceAllocator struct {
	db     *DB
	logger *slog.Logger
}

// NewSequenceAllocator creates a new SequenceAllocator
func NewSequenceAllocator(db *DB, logger *slog.Logger) *SequenceAllocator {
	return &SequenceAllocator{db: db, logger: logging.OrDiscard(logger)}
}

// Next atomically increments the named counter and returns the new value.
// A missing counter is created with value 1.
func (a *SequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty sequence name", repository.ErrAllocation)
	}

	query := `
		INSERT INTO sequences (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`

	var value int64
	err := a.db.QueryRowContext(ctx, query, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		a.logger.Error("sequence upsert returned no row", "sequence", name)
		return 0, fmt.Errorf("%w: sequence %q: upsert not acknowledged", repository.ErrAllocation, name)
	}
	if err != nil {
		a.logger.Error("failed to allocate sequence value", "sequence", name, "error", err)
		return 0, fmt.Errorf("%w: sequence %q: %w", repository.ErrAllocation, name, err)
	}

	return value, nil
}

// Current returns the last value issued for name, or 0 if none was issued.
func (a *SequenceAllocator) Current(ctx context.Context, name string) (int64, error) {
	var value int64
	err := a.db.QueryRowContext(ctx, `SELECT value FROM sequences WHERE name = $1`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read sequence %q: %w", repository.ErrPersistence, name, err)
	}
	return value, nil
}
