package transform

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/caching/repository/transformcache"
)

// TransformString returns the transformed value for a single string and
// whether it was served from the cache. On a miss it calls the external
// transformer and stores the result.
func (b *business) TransformString(ctx context.Context, value string) (string, bool, error) {
	entry, err := b.cacheRepo.GetEntry(ctx, value)
	if err == nil {
		return entry.TransformedString, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", false, &errs.Error{Code: errs.Internal, Message: "failed to read transform cache"}
	}

	transformed, err := b.client.Transform(ctx, value)
	if err != nil {
		return "", false, &errs.Error{Code: errs.Internal, Message: "transform call failed"}
	}

	_, err = b.cacheRepo.CreateEntry(ctx, transformcache.CreateEntryParams{
		InputString:       value,
		TransformedString: transformed,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			// A concurrent miss on the same string won the insert. The
			// transform is pure, so the value we computed matches what was
			// stored.
			rlog.Debug("transform cache entry already created concurrently")
			return transformed, false, nil
		}

		return "", false, &errs.Error{Code: errs.Internal, Message: "failed to store transform cache entry"}
	}

	return transformed, false, nil
}

// TransformStrings transforms an ordered sequence of strings, preserving
// order, and reports how many were served from the cache. The hit count is
// observability only.
func (b *business) TransformStrings(ctx context.Context, values []string) ([]string, int, error) {
	results := make([]string, 0, len(values))
	cacheHits := 0

	for _, value := range values {
		transformed, cached, err := b.TransformString(ctx, value)
		if err != nil {
			return nil, 0, err
		}

		results = append(results, transformed)
		if cached {
			cacheHits++
		}
	}

	return results, cacheHits, nil
}
