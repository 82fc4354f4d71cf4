package payments

import (
	"context"
	"time"
)

// MockGateway stands in for the wallet provider. It waits the configured
// delay and approves every charge, matching the storefront's simulated
// payment round trip. Fail lets tests inject a decline or gateway fault.
type MockGateway struct {
	Delay time.Duration
	Fail  func(req ChargeRequest) error
}

func NewMockGateway(delay time.Duration) *MockGateway {
	return &MockGateway{Delay: delay}
}

func (g *MockGateway) Charge(ctx context.Context, req ChargeRequest) (Receipt, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	if g.Fail != nil {
		if err := g.Fail(req); err != nil {
			return Receipt{}, err
		}
	}

	return Receipt{
		Reference: req.Reference,
		Status:    "paid",
		PaidAt:    time.Now(),
	}, nil
}
