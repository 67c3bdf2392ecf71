package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/ganot/tasktrack/internal/logging"
	"github.com/ganot/tasktrack/internal/record"
	"github.com/ganot/tasktrack/internal/repository"
	"github.com/google/uuid"
)

// Compile-time check that ItemRepository satisfies the domain contract.
var _ item.Repository = (*ItemRepository)(nil)

// ItemRepository implements item.Repository for PostgreSQL
type ItemRepository struct {
	db        *DB
	sequences repository.SequenceAllocator
	sequence  string
	logger    *slog.Logger
}

// NewItemRepository creates a new ItemRepository drawing ids from the named sequence
func NewItemRepository(db *DB, sequences repository.SequenceAllocator, sequence string, logger *slog.Logger) *ItemRepository {
	return &ItemRepository{
		db:        db,
		sequences: sequences,
		sequence:  sequence,
		logger:    logging.OrDiscard(logger),
	}
}

// Insert stores a copy of it under a freshly allocated id and returns that id
func (r *ItemRepository) Insert(ctx context.Context, it item.Item) (int64, error) {
	id, err := r.sequences.Next(ctx, r.sequence)
	if err != nil {
		r.logger.Error("failed to allocate item id", "sequence", r.sequence, "error", err)
		return 0, err
	}

	it.ID = id
	rec := record.ToRecord(it)
	rec.ObjectID = uuid.New()

	query := `
		INSERT INTO items (object_id, id, description, tags, deadline)
		VALUES ($1, $2, $3, $4::jsonb, $5)
	`

	_, err = r.db.ExecContext(ctx, query,
		rec.ObjectID.String(),
		rec.ID,
		rec.Description,
		record.EncodeTags(rec.Tags),
		rec.Deadline,
	)
	if err != nil {
		r.logger.Error("failed to insert item", "id", id, "error", err)
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w: item %d: %w", repository.ErrPersistence, repository.ErrDuplicate, id, err)
		}
		return 0, fmt.Errorf("%w: failed to insert item %d: %w", repository.ErrPersistence, id, err)
	}

	return id, nil
}

// List returns every stored item
func (r *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	query := `
		SELECT object_id::text, id, description, tags::text, deadline
		FROM items
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list items", "error", err)
		return nil, fmt.Errorf("%w: failed to list items: %w", repository.ErrPersistence, err)
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		rec, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan item: %w", repository.ErrPersistence, err)
		}
		items = append(items, record.FromRecord(rec))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating item rows: %w", repository.ErrPersistence, err)
	}

	return items, nil
}

// FindByID retrieves the item with the given id
func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: item %d", repository.ErrNotFound, id)
	}

	query := `
		SELECT object_id::text, id, description, tags::text, deadline
		FROM items
		WHERE id = $1
	`

	rec, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: item %d", repository.ErrNotFound, id)
	}
	if err != nil {
		r.logger.Error("failed to find item", "id", id, "error", err)
		return nil, fmt.Errorf("%w: failed to get item %d: %w", repository.ErrPersistence, id, err)
	}

	it := record.FromRecord(rec)
	return &it, nil
}

// Update replaces every field of the item matching it.ID. It reports false
// when no item matched.
func (r *ItemRepository) Update(ctx context.Context, it item.Item) (bool, error) {
	if it.ID <= 0 {
		return false, nil
	}

	rec := record.ToRecord(it)
	query := `
		UPDATE items
		SET description = $1, tags = $2::jsonb, deadline = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.Description,
		record.EncodeTags(rec.Tags),
		rec.Deadline,
		rec.ID,
	)
	if err != nil {
		r.logger.Error("failed to update item", "id", it.ID, "error", err)
		return false, fmt.Errorf("%w: failed to update item %d: %w", repository.ErrPersistence, it.ID, err)
	}

	return affected(result)
}

// RemoveByID deletes the item with the given id. It reports false when no
// item matched.
func (r *ItemRepository) RemoveByID(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete item", "id", id, "error", err)
		return false, fmt.Errorf("%w: failed to delete item %d: %w", repository.ErrPersistence, id, err)
	}

	return affected(result)
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to get rows affected: %w", repository.ErrPersistence, err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (record.ItemRecord, error) {
	var rec record.ItemRecord
	var tags string
	if err := row.Scan(&rec.ObjectID, &rec.ID, &rec.Description, &tags, &rec.Deadline); err != nil {
		return record.ItemRecord{}, err
	}
	rec.Tags = record.DecodeTags(tags)
	return rec, nil
}
