package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=gateway

// Intent is the gateway-side charge object a customer completes client-side
type Intent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway wraps the payment processor's intent and refund operations.
// Implementations are stateless; retries are left to the processor's client.
type PaymentGateway interface {
	// CreateIntent creates a charge intent for the given major-unit amount,
	// tagged with opaque metadata.
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (Intent, error)
	// RetrieveIntent re-fetches an existing intent by id.
	RetrieveIntent(ctx context.Context, intentID string) (Intent, error)
	// CreateRefund refunds the full charged amount of the intent and returns
	// the refund id.
	CreateRefund(ctx context.Context, intentID string) (string, error)
}
