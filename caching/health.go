package caching

import (
	"context"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// Health is the liveness probe for container orchestration. It touches no
// dependencies.
//
//encore:api public path=/health method=GET
func (s *Service) Health(ctx context.Context) (*HealthResponse, error) {
	return &HealthResponse{Status: "healthy"}, nil
}
