package payload

import (
	"context"

	"encore.app/caching/business/transform"
	"encore.app/caching/cache"
	"encore.app/caching/model"
	"encore.app/caching/repository/payloads"
)

type Business interface {
	CreatePayload(ctx context.Context, list1, list2 []string) (string, bool, error)
	GetPayload(ctx context.Context, id string) (*model.Payload, error)
}

// business handles payload creation and retrieval. Creation is idempotent:
// the payload id is the canonical hash of the inputs, and the primary key
// on that id is the only coordination between concurrent identical
// requests.
type business struct {
	payloadRepo payloads.Querier
	transform   transform.Business
	outputs     cache.Store
}

// NewPayloadBusiness creates a new payload business layer
func NewPayloadBusiness(payloadRepo payloads.Querier, transformBiz transform.Business, outputs cache.Store) Business {
	return &business{
		payloadRepo: payloadRepo,
		transform:   transformBiz,
		outputs:     outputs,
	}
}
