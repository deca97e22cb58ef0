// Package transformer provides the client for the external string
// transformation service. The real service does not exist; the simulated
// client stands in for it with a fixed artificial latency per call.
package transformer

import (
	"context"
	"strings"
	"time"
)

// DefaultDelay is the artificial latency applied to each simulated call,
// standing in for the network round trip of a real transform service.
const DefaultDelay = 100 * time.Millisecond

// Client transforms a single string. Implementations may suspend on I/O
// and must honor context cancellation.
type Client interface {
	Transform(ctx context.Context, value string) (string, error)
}

type simulatedClient struct {
	delay time.Duration
}

// NewSimulated creates a simulated transform client that uppercases its
// input after the given delay. A non-positive delay disables the latency
// simulation, which tests rely on.
func NewSimulated(delay time.Duration) Client {
	return &simulatedClient{delay: delay}
}

// Transform uppercases value after the configured delay. The simulated
// transform itself cannot fail; the only error path is cancellation.
func (c *simulatedClient) Transform(ctx context.Context, value string) (string, error) {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return strings.ToUpper(value), nil
}
