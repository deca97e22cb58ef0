// Package transformcache provides the querier for the transform_cache table.
package transformcache

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgx it needs, satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier is the query interface for transform cache entries, mockable in tests.
type Querier interface {
	CreateEntry(ctx context.Context, arg CreateEntryParams) (TransformCacheEntry, error)
	GetEntry(ctx context.Context, inputString string) (TransformCacheEntry, error)
}

// TransformCacheEntry is the database row for a cached transform result.
type TransformCacheEntry struct {
	ID                pgtype.UUID
	InputString       string
	TransformedString string
	CreatedAt         pgtype.Timestamptz
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type CreateEntryParams struct {
	InputString       string
	TransformedString string
}

const createEntry = `
INSERT INTO transform_cache (input_string, transformed_string)
VALUES ($1, $2)
RETURNING id, input_string, transformed_string, created_at
`

// CreateEntry inserts a new cache entry. The unique constraint on
// input_string is the only guard against concurrent misses for the same
// string; the losing insert fails with a unique violation.
func (q *Queries) CreateEntry(ctx context.Context, arg CreateEntryParams) (TransformCacheEntry, error) {
	row := q.db.QueryRow(ctx, createEntry, arg.InputString, arg.TransformedString)

	var e TransformCacheEntry
	err := row.Scan(&e.ID, &e.InputString, &e.TransformedString, &e.CreatedAt)
	return e, err
}

const getEntry = `
SELECT id, input_string, transformed_string, created_at
FROM transform_cache
WHERE input_string = $1
`

// GetEntry returns the cache entry for an exact input string, or pgx.ErrNoRows.
func (q *Queries) GetEntry(ctx context.Context, inputString string) (TransformCacheEntry, error) {
	row := q.db.QueryRow(ctx, getEntry, inputString)

	var e TransformCacheEntry
	err := row.Scan(&e.ID, &e.InputString, &e.TransformedString, &e.CreatedAt)
	return e, err
}
