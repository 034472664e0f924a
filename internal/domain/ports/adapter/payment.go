package adapter

import "context"

// CreatedOrder is the provider-side payment intent before the payer approves it.
type CreatedOrder struct {
	OrderID    string
	ApproveURL string
}

// CaptureResult is what the provider reports after settling an approved order.
// Raw keeps the full provider payload for the transaction audit column.
type CaptureResult struct {
	CaptureID   string
	PayerID     string
	PayerEmail  string
	PayerName   string
	AmountCents int64
	Currency    string
	Raw         []byte
}

// PaymentGateway wraps the external order-management API.
type PaymentGateway interface {
	Name() string
	CreateOrder(ctx context.Context, amountCents int64, currency, description string) (*CreatedOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*CaptureResult, error)
}
