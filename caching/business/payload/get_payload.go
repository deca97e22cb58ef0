package payload

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/caching/model"
	"encore.app/caching/repository/payloads"
)

// GetPayload retrieves a payload by id. Outputs are read through the cache
// keyspace first; any identifier is accepted and simply looked up.
func (b *business) GetPayload(ctx context.Context, id string) (*model.Payload, error) {
	if output, ok := b.outputs.Get(ctx, id); ok {
		return &model.Payload{ID: id, InputHash: id, Output: output}, nil
	}

	dbPayload, err := b.payloadRepo.GetPayload(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "payload not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get payload"}
	}

	payload := convertDBPayloadToModel(dbPayload)

	runAsync("populate output cache", func(ctx context.Context) error {
		return b.outputs.Set(ctx, id, payload.Output)
	})

	return payload, nil
}

// convertDBPayloadToModel converts a database Payload to a domain model Payload
func convertDBPayloadToModel(dbPayload payloads.Payload) *model.Payload {
	payload := &model.Payload{
		ID:        dbPayload.ID,
		InputHash: dbPayload.InputHash,
		Output:    dbPayload.Output,
		CreatedAt: dbPayload.CreatedAt.Time,
	}

	// The audit columns hold JSON written by us; a decode failure is not
	// worth failing a read over.
	if err := json.Unmarshal([]byte(dbPayload.List1), &payload.List1); err != nil {
		rlog.Warn("failed to decode stored list1", "id", dbPayload.ID, "error", err)
	}
	if err := json.Unmarshal([]byte(dbPayload.List2), &payload.List2); err != nil {
		rlog.Warn("failed to decode stored list2", "id", dbPayload.ID, "error", err)
	}

	return payload
}
