package providers

import (
	"context"
	"fmt"

	"campus-connect/eventhub/internal/models/dtos"
)

// PaymentGateway is the outbound contract for the payment provider.
type PaymentGateway interface {
	// CreateOrder registers an order for the given minor-currency-unit
	// amount and returns the gateway's order object.
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*dtos.GatewayOrder, error)

	// VerifySignature checks the checkout callback signature over
	// orderID|paymentID.
	VerifySignature(orderID, paymentID, signature string) bool

	// KeyID is the public key the client needs to open checkout.
	KeyID() string
}

// GatewayError carries the HTTP status the gateway answered with.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error (status %d): %s", e.StatusCode, e.Message)
}
