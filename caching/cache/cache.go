// Package cache fronts the payloads table with a Redis-backed keyspace.
// Payload rows are immutable, so a cached output can never go stale; the
// expiry below only bounds memory, it is not an invalidation mechanism.
package cache

import (
	"context"
	"errors"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

// OutputCluster is the cache cluster for payload outputs
var OutputCluster = cache.NewCluster("payload-cache", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// OutputKeyspace stores generated outputs keyed by payload id
var OutputKeyspace = cache.NewStringKeyspace[string](OutputCluster, cache.KeyspaceConfig{
	KeyPattern:    "payload/output/:key",
	DefaultExpiry: cache.ExpireIn(24 * time.Hour),
})

// Store is the read-through interface the business layer uses. Get never
// fails: any cache error is reported as a miss and the caller falls back
// to Postgres.
type Store interface {
	Get(ctx context.Context, id string) (string, bool)
	Set(ctx context.Context, id, output string) error
}

type keyspaceStore struct{}

// NewStore returns a Store backed by OutputKeyspace.
func NewStore() Store {
	return &keyspaceStore{}
}

func (s *keyspaceStore) Get(ctx context.Context, id string) (string, bool) {
	output, err := OutputKeyspace.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, cache.Miss) {
			rlog.Warn("output cache read failed", "id", id, "error", err)
		}
		return "", false
	}
	return output, true
}

func (s *keyspaceStore) Set(ctx context.Context, id, output string) error {
	return OutputKeyspace.Set(ctx, id, output)
}
