package caching

import (
	"context"

	"encore.dev/rlog"
)

type GetPayloadResponse struct {
	Output string `json:"output"`
}

// GetPayload returns the generated output for a previously created
// payload. The id is not validated for shape; unknown ids simply come
// back as not found.
//
//encore:api public path=/payload/:id method=GET
func (s *Service) GetPayload(ctx context.Context, id string) (*GetPayloadResponse, error) {
	result, err := s.business.GetPayload(ctx, id)
	if err != nil {
		rlog.Error("failed to get payload", "error", err, "id", id)
		return nil, err
	}

	return &GetPayloadResponse{
		Output: result.Output,
	}, nil
}
