package repository

import (
	"context"

	"quiz-platform/internal/domain/model"
)

type SubscriptionRepository interface {
	Save(ctx context.Context, tx Tx, s *model.Subscription) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Subscription, error)
	FindActiveByUser(ctx context.Context, tx Tx, userID string) (*model.Subscription, error)
	// FindLatestByUser returns the most recently created row regardless of status.
	FindLatestByUser(ctx context.Context, tx Tx, userID string) (*model.Subscription, error)
	// ExpireIfDue atomically flips an ACTIVE row whose end date has passed to
	// EXPIRED. Returns whether a row was updated.
	ExpireIfDue(ctx context.Context, tx Tx, id string) (bool, error)
	// FinishOverdue expires every ACTIVE row whose end date has passed and
	// returns the number of rows touched.
	FinishOverdue(ctx context.Context, tx Tx) (int, error)
	CountByStatus(ctx context.Context, tx Tx) (map[model.SubscriptionStatus]int, error)
}
