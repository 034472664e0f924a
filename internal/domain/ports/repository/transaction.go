package repository

import (
	"context"
	"time"

	"quiz-platform/internal/domain/model"
)

// CaptureUpdate carries the provider-side results of a successful capture.
type CaptureUpdate struct {
	CaptureID   string
	PayerID     string
	PayerEmail  string
	PayerName   string
	Raw         []byte
	CompletedAt time.Time
}

type TransactionRepository interface {
	Save(ctx context.Context, tx Tx, t *model.Transaction) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Transaction, error)
	// FindByOrderAndUser scopes the lookup to the requesting user so one user
	// cannot capture another's order.
	FindByOrderAndUser(ctx context.Context, tx Tx, orderID, userID string) (*model.Transaction, error)
	ListByUser(ctx context.Context, tx Tx, userID string) ([]*model.Transaction, error)
	// CompletePending atomically moves the row PENDING→COMPLETED and fills the
	// capture fields. Returns false when the row was not PENDING anymore, which
	// is the concurrent double-capture case.
	CompletePending(ctx context.Context, tx Tx, id string, upd CaptureUpdate) (bool, error)
	MarkFailed(ctx context.Context, tx Tx, id, errorMessage string) error
	LinkSubscription(ctx context.Context, tx Tx, id, subscriptionID string) error
}
