package caching

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type CreatePayloadRequest struct {
	List1 []string `json:"list1" validate:"required,min=1"`
	List2 []string `json:"list2" validate:"required,min=1"`
}

type CreatePayloadResponse struct {
	ID     string `json:"id"`
	Cached bool   `json:"cached"`
}

// CreatePayload transforms and interleaves two string lists into a stored
// payload. Identical inputs always yield the same id: resubmitting a
// request returns the previously created payload with cached=true.
//
//encore:api public path=/payload method=POST
func (s *Service) CreatePayload(ctx context.Context, req *CreatePayloadRequest) (*CreatePayloadResponse, error) {
	id, cached, err := s.business.CreatePayload(ctx, req.List1, req.List2)
	if err != nil {
		rlog.Error("failed to create payload", "error", err)
		return nil, err
	}

	return &CreatePayloadResponse{
		ID:     id,
		Cached: cached,
	}, nil
}

// Validate implements validation for CreatePayloadRequest using go-playground/validator
func (r *CreatePayloadRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if len(r.List1) != len(r.List2) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "list1 and list2 must have the same length"}
	}

	return nil
}
