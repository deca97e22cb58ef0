package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/caching/repository/payloads"
	"encore.app/caching/repository/transformcache"
)

// Repository combines all domain-specific queriers
type Repository struct {
	Payloads       payloads.Querier
	TransformCache transformcache.Querier

	db *pgxpool.Pool
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Payloads:       payloads.New(db),
		TransformCache: transformcache.New(db),
		db:             db,
	}
}

// Begin starts a transaction on the underlying pool.
func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

// WithTx returns a Repository whose queriers run inside tx.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{
		Payloads:       payloads.New(tx),
		TransformCache: transformcache.New(tx),
	}
}
