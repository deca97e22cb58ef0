// Package payloads provides the querier for the payloads table.
package payloads

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

// Querier is the query interface for payloads, mockable in tests.
type Querier interface {
	CreatePayload(ctx context.Context, arg CreatePayloadParams) (Payload, error)
	GetPayload(ctx context.Context, id string) (Payload, error)
}

// Payload is the database row for a stored payload. List1 and List2 hold
// the JSON-serialized original inputs, kept for auditing only.
type Payload struct {
	ID        string
	InputHash string
	List1     string
	List2     string
	Output    string
	CreatedAt pgtype.Timestamptz
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type CreatePayloadParams struct {
	ID        string
	InputHash string
	List1     string
	List2     string
	Output    string
}

const createPayload = `
INSERT INTO payloads (id, input_hash, list1, list2, output)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, input_hash, list1, list2, output, created_at
`

// CreatePayload inserts a new payload row. The primary key on id doubles
// as the dedup guard: a concurrent identical request surfaces here as a
// unique-constraint violation, which callers treat as "already created".
func (q *Queries) CreatePayload(ctx context.Context, arg CreatePayloadParams) (Payload, error) {
	row := q.db.QueryRow(ctx, createPayload,
		arg.ID,
		arg.InputHash,
		arg.List1,
		arg.List2,
		arg.Output,
	)

	var p Payload
	err := row.Scan(&p.ID, &p.InputHash, &p.List1, &p.List2, &p.Output, &p.CreatedAt)
	return p, err
}

const getPayload = `
SELECT id, input_hash, list1, list2, output, created_at
FROM payloads
WHERE id = $1
`

// GetPayload returns the payload with the given id, or pgx.ErrNoRows.
func (q *Queries) GetPayload(ctx context.Context, id string) (Payload, error) {
	row := q.db.QueryRow(ctx, getPayload, id)

	var p Payload
	err := row.Scan(&p.ID, &p.InputHash, &p.List1, &p.List2, &p.Output, &p.CreatedAt)
	return p, err
}
