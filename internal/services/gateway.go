package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"revenueBack/internal/models"
)

type GatewayRequest struct {
	RRR           string
	Amount        decimal.Decimal
	PaymentMethod string
}

type GatewayResult struct {
	Status string
}

// Gateway stands in for the payment provider round trip. The payment
// processor takes it as an interface so tests can inject instant or
// failing implementations.
type Gateway interface {
	Authorize(ctx context.Context, req GatewayRequest) (GatewayResult, error)
}

// MockGateway waits its configured delay and approves every request.
type MockGateway struct {
	Delay time.Duration
}

func (g *MockGateway) Authorize(ctx context.Context, req GatewayRequest) (GatewayResult, error) {
	time.Sleep(g.Delay)
	return GatewayResult{Status: models.PaymentStatusSuccessful}, nil
}
