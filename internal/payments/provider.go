// Package payments creates payment intents with the external provider.
// Confirmation is asserted by the client through POST /payments; there is no
// webhook.
package payments

import (
	"context"
	"errors"
)

// MethodCard is the only payment method the storefront accepts.
const MethodCard = "card"

var ErrNotConfigured = errors.New("payments: provider secret key not configured")

type Intent struct {
	Amount   int64 // minor units
	Currency string
	Methods  []string
}

type Provider interface {
	// CreateIntent returns the client secret of the new intent.
	CreateIntent(ctx context.Context, in Intent) (string, error)
}
