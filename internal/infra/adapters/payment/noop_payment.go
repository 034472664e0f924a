package payment

import (
	"context"
	"fmt"
	"sync"

	"quiz-platform/internal/domain/ports/adapter"
)

var _ adapter.PaymentGateway = (*NoopPaymentGateway)(nil)

// NoopPaymentGateway is a simple in-memory gateway to use in dev mode and tests.
type NoopPaymentGateway struct {
	mu      sync.Mutex
	seq     int64
	intents map[string]intent // order id -> created order
}

type intent struct {
	amountCents int64
	currency    string
}

func NewNoopPaymentGateway() *NoopPaymentGateway {
	return &NoopPaymentGateway{
		intents: make(map[string]intent),
	}
}

func (g *NoopPaymentGateway) Name() string { return "noop" }

func (g *NoopPaymentGateway) next() string {
	g.seq++
	return fmt.Sprintf("noop-%d", g.seq)
}

func (g *NoopPaymentGateway) CreateOrder(ctx context.Context, amountCents int64, currency, description string) (*adapter.CreatedOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next()
	g.intents[id] = intent{amountCents: amountCents, currency: currency}
	return &adapter.CreatedOrder{
		OrderID:    id,
		ApproveURL: "https://example.test/approve/" + id,
	}, nil
}

func (g *NoopPaymentGateway) CaptureOrder(ctx context.Context, orderID string) (*adapter.CaptureResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	in, ok := g.intents[orderID]
	if !ok {
		return nil, fmt.Errorf("noop: order not found")
	}
	return &adapter.CaptureResult{
		CaptureID:   "cap-" + orderID,
		PayerID:     "payer-" + orderID,
		PayerEmail:  "payer@example.test",
		PayerName:   "Noop Payer",
		AmountCents: in.amountCents,
		Currency:    in.currency,
		Raw:         []byte(`{"status":"COMPLETED","gateway":"noop"}`),
	}, nil
}
