package payment

import (
	"context"

	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
)

// LinkRequest is everything the gateway needs to issue a hosted payment link.
type LinkRequest struct {
	Reference string
	Total     order.Total
	Customer  order.CustomerInfo
}

// Linker issues hosted payment links through an external gateway.
type Linker interface {
	// Configured reports a *ConfigError when merchant credentials are missing.
	Configured() error
	CreateLink(ctx context.Context, req LinkRequest) (*order.PaymentRecord, error)
}
