package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type Stripe struct {
	api *client.API
}

// NewStripe returns a provider that fails every call with ErrNotConfigured
// when key is empty, so the rest of the API still starts.
func NewStripe(key string) *Stripe {
	if key == "" {
		return &Stripe{}
	}
	api := &client.API{}
	api.Init(key, nil)
	return &Stripe{api: api}
}

func (s *Stripe) CreateIntent(ctx context.Context, in Intent) (string, error) {
	if s.api == nil {
		return "", ErrNotConfigured
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(in.Amount),
		Currency:           stripe.String(in.Currency),
		PaymentMethodTypes: stripe.StringSlice(in.Methods),
	}
	params.Context = ctx
	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create intent: %w", err)
	}
	return pi.ClientSecret, nil
}
