package gateway

import (
	"context"
	"fmt"

	"auction-broker/internal/brokererrors"
	"auction-broker/utils"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// minorUnitFactor converts major currency units to the gateway's minor units.
// The conversion happens at this boundary only; everything above it works in
// major-unit decimals.
var minorUnitFactor = decimal.NewFromInt(100)

// Compile-time check: *StripeGateway must satisfy PaymentGateway.
var _ PaymentGateway = (*StripeGateway)(nil)

// StripeGateway is the Stripe-backed PaymentGateway
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway client authenticated with the given API key
func NewStripeGateway(apiKey string) *StripeGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent creates a payment intent for the given major-unit amount
func (g *StripeGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		utils.Error("stripe payment intent creation failed", map[string]any{"error": err.Error()})
		return Intent{}, fmt.Errorf("create payment intent: %w", brokererrors.ErrGatewayFailure)
	}
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// RetrieveIntent re-fetches an existing payment intent by id
func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (Intent, error) {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		utils.Error("stripe payment intent retrieval failed", map[string]any{
			"intent_id": intentID,
			"error":     err.Error(),
		})
		return Intent{}, fmt.Errorf("retrieve payment intent %s: %w", intentID, brokererrors.ErrGatewayFailure)
	}
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// CreateRefund issues a full refund for the intent's charged amount.
// Omitting the amount makes Stripe refund the entire charge.
func (g *StripeGateway) CreateRefund(ctx context.Context, intentID string) (string, error) {
	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(intentID),
	}
	ref, err := g.api.Refunds.New(params)
	if err != nil {
		utils.Error("stripe refund failed", map[string]any{
			"intent_id": intentID,
			"error":     err.Error(),
		})
		return "", fmt.Errorf("refund payment intent %s: %w", intentID, brokererrors.ErrGatewayFailure)
	}
	return ref.ID, nil
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}
