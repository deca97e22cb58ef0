package payload

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/caching/domain"
	"encore.app/caching/repository/payloads"
)

// CreatePayload creates a payload from two equal-length lists, or returns
// the existing one when the same inputs were submitted before. It returns
// the payload id and whether the result was served from a previous
// creation.
func (b *business) CreatePayload(ctx context.Context, list1, list2 []string) (string, bool, error) {
	id := domain.CanonicalHash(list1, list2)

	_, err := b.payloadRepo.GetPayload(ctx, id)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", false, &errs.Error{Code: errs.Internal, Message: "failed to look up payload"}
	}

	// Transform both lists as one ordered batch so every string goes
	// through the cache exactly once, then split at the original boundary.
	all := make([]string, 0, len(list1)+len(list2))
	all = append(all, list1...)
	all = append(all, list2...)

	transformed, cacheHits, err := b.transform.TransformStrings(ctx, all)
	if err != nil {
		return "", false, err
	}
	rlog.Debug("transformed payload inputs", "strings", len(all), "cache_hits", cacheHits)

	mid := len(list1)
	output := domain.Interleave(transformed[:mid], transformed[mid:])

	list1JSON, err := json.Marshal(list1)
	if err != nil {
		return "", false, &errs.Error{Code: errs.Internal, Message: "failed to serialize inputs"}
	}
	list2JSON, err := json.Marshal(list2)
	if err != nil {
		return "", false, &errs.Error{Code: errs.Internal, Message: "failed to serialize inputs"}
	}

	_, err = b.payloadRepo.CreatePayload(ctx, payloads.CreatePayloadParams{
		ID:        id,
		InputHash: id,
		List1:     string(list1JSON),
		List2:     string(list2JSON),
		Output:    output,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			// An identical request inserted between our lookup and our
			// insert. Its row is byte-for-byte what we would have written.
			rlog.Info("payload already created concurrently", "id", id)
			return id, true, nil
		}

		return "", false, &errs.Error{Code: errs.Internal, Message: "failed to create payload"}
	}

	runAsync("prime output cache", func(ctx context.Context) error {
		return b.outputs.Set(ctx, id, output)
	})

	return id, false, nil
}
