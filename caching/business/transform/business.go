package transform

import (
	"context"

	"encore.app/caching/repository/transformcache"
	"encore.app/caching/transformer"
)

type Business interface {
	TransformString(ctx context.Context, value string) (string, bool, error)
	TransformStrings(ctx context.Context, values []string) ([]string, int, error)
}

// business handles transform-with-cache logic: every transform result is
// persisted so the (simulated) external service is called at most once
// per distinct input string.
type business struct {
	cacheRepo transformcache.Querier
	client    transformer.Client
}

// NewTransformBusiness creates a new transform business layer
func NewTransformBusiness(cacheRepo transformcache.Querier, client transformer.Client) Business {
	return &business{
		cacheRepo: cacheRepo,
		client:    client,
	}
}
