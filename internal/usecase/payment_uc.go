// File: internal/usecase/payment_uc.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/adapter"
	"quiz-platform/internal/domain/ports/repository"
	"quiz-platform/internal/infra/logging"
	"quiz-platform/internal/infra/metrics"
)

// Compile-time check
var _ PaymentUseCase = (*paymentUC)(nil)

type PaymentUseCase interface {
	// Plans lists the static catalog.
	Plans(ctx context.Context) []model.PlanConfig
	// CreateOrder opens a provider order for the plan and persists the PENDING
	// transaction. Returns the transaction and the payer approval URL.
	// amountCents overrides the list price when non-nil.
	CreateOrder(ctx context.Context, userID string, plan model.PlanName, amountCents *int64, description string) (*model.Transaction, string, error)
	// CaptureOrder settles an approved order and funds the subscription.
	CaptureOrder(ctx context.Context, userID, orderID string) (*model.Transaction, error)
	// Subscription returns the user's current subscription view, expiring it
	// lazily when overdue.
	Subscription(ctx context.Context, userID string) (*model.SubscriptionView, error)
	// Transactions lists the user's payment history, newest first.
	Transactions(ctx context.Context, userID string) ([]*model.Transaction, error)
}

type paymentUC struct {
	txm           repository.TransactionManager
	transactions  repository.TransactionRepository
	subscriptions repository.SubscriptionRepository
	gateway       adapter.PaymentGateway

	log *zerolog.Logger
}

func NewPaymentUseCase(
	txm repository.TransactionManager,
	transactions repository.TransactionRepository,
	subscriptions repository.SubscriptionRepository,
	gateway adapter.PaymentGateway,
	logger *zerolog.Logger,
) *paymentUC {
	return &paymentUC{
		txm:           txm,
		transactions:  transactions,
		subscriptions: subscriptions,
		gateway:       gateway,
		log:           logger,
	}
}

func (u *paymentUC) Plans(ctx context.Context) []model.PlanConfig {
	return model.ListPlans()
}

func (u *paymentUC) CreateOrder(ctx context.Context, userID string, plan model.PlanName, amountCents *int64, description string) (*model.Transaction, string, error) {
	defer logging.TraceDuration(u.log, "PaymentUC.CreateOrder")()
	if userID == "" {
		return nil, "", domain.ErrInvalidArgument
	}
	cfg, ok := model.PlanByName(plan)
	if !ok {
		return nil, "", domain.ErrInvalidArgument
	}
	if cfg.Plan == model.PlanFree {
		return nil, "", domain.ErrFreePlanNotPayable
	}
	amount := cfg.PriceCents
	if amountCents != nil {
		if *amountCents <= 0 {
			return nil, "", domain.ErrInvalidArgument
		}
		amount = *amountCents
	}
	if description == "" {
		description = fmt.Sprintf("%s plan subscription", cfg.Name)
	}

	created, err := u.gateway.CreateOrder(ctx, amount, "USD", description)
	if err != nil {
		u.log.Error().Err(err).Str("plan", string(plan)).Msg("provider order creation failed")
		metrics.IncPayment("failed")
		return nil, "", domain.ErrPaymentGateway
	}

	tr, err := model.NewTransaction(userID, created.OrderID, cfg.Plan, amount, "USD", description)
	if err != nil {
		return nil, "", err
	}
	if err := u.transactions.Save(ctx, repository.NoTX, tr); err != nil {
		return nil, "", err
	}

	metrics.IncPayment("initiated")
	u.log.Info().
		Str("user_id", userID).
		Str("order_id", created.OrderID).
		Str("plan", string(plan)).
		Int64("amount_cents", amount).
		Msg("payment order created")
	return tr, created.ApproveURL, nil
}

func (u *paymentUC) CaptureOrder(ctx context.Context, userID, orderID string) (*model.Transaction, error) {
	defer logging.TraceDuration(u.log, "PaymentUC.CaptureOrder")()
	start := time.Now()

	tr, err := u.transactions.FindByOrderAndUser(ctx, repository.NoTX, orderID, userID)
	if err != nil {
		return nil, err
	}
	switch tr.Status {
	case model.TransactionStatusPending:
	case model.TransactionStatusCompleted:
		metrics.IncPayment("duplicate")
		return nil, domain.ErrTransactionCompleted
	default:
		// FAILED and REFUNDED rows never go back to the provider; the
		// completion update below only matches PENDING, so a late provider
		// success would settle money nothing records. The client must create
		// a fresh order.
		return nil, domain.ErrConflict
	}

	res, err := u.gateway.CaptureOrder(ctx, orderID)
	if err != nil {
		// The PENDING row stays until the client retries; only the failure is
		// recorded.
		_ = u.transactions.MarkFailed(ctx, repository.NoTX, tr.ID, err.Error())
		metrics.IncPayment("failed")
		metrics.ObserveCaptureDuration("failed", time.Since(start).Seconds())
		u.log.Error().Err(err).Str("order_id", orderID).Msg("provider capture failed")
		return nil, domain.ErrPaymentGateway
	}

	cfg, ok := model.PlanByName(tr.Plan)
	if !ok {
		return nil, domain.ErrOperationFailed
	}

	now := time.Now()
	upd := repository.CaptureUpdate{
		CaptureID:   res.CaptureID,
		PayerID:     res.PayerID,
		PayerEmail:  res.PayerEmail,
		PayerName:   res.PayerName,
		Raw:         res.Raw,
		CompletedAt: now,
	}

	var sub *model.Subscription
	err = u.txm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		won, err := u.transactions.CompletePending(ctx, tx, tr.ID, upd)
		if err != nil {
			return err
		}
		if !won {
			// A concurrent capture settled the row first.
			return domain.ErrConflict
		}

		existing, err := u.subscriptions.FindActiveByUser(ctx, tx, userID)
		switch {
		case err == nil:
			existing.Extend(cfg, tr.AmountCents)
			sub = existing
		case errors.Is(err, domain.ErrNotFound):
			sub, err = model.NewSubscription(userID, cfg, tr.AmountCents, orderID)
			if err != nil {
				return err
			}
		default:
			return err
		}
		if err := u.subscriptions.Save(ctx, tx, sub); err != nil {
			return err
		}
		return u.transactions.LinkSubscription(ctx, tx, tr.ID, sub.ID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.IncPayment("duplicate")
			return nil, domain.ErrTransactionCompleted
		}
		return nil, err
	}

	tr.Status = model.TransactionStatusCompleted
	tr.PayPalCaptureID = res.CaptureID
	tr.PayerID = res.PayerID
	tr.PayerEmail = res.PayerEmail
	tr.PayerName = res.PayerName
	tr.PayPalResponse = res.Raw
	tr.CompletedAt = &now
	tr.SubscriptionID = &sub.ID

	metrics.IncPayment("succeeded")
	metrics.AddPaymentRevenue(tr.Currency, tr.AmountCents)
	metrics.ObserveCaptureDuration("ok", time.Since(start).Seconds())
	u.log.Info().
		Str("user_id", userID).
		Str("order_id", orderID).
		Str("capture_id", res.CaptureID).
		Str("subscription_id", sub.ID).
		Msg("payment captured")
	return tr, nil
}

func (u *paymentUC) Subscription(ctx context.Context, userID string) (*model.SubscriptionView, error) {
	sub, err := u.subscriptions.FindLatestByUser(ctx, repository.NoTX, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return model.FreeSubscriptionView(), nil
		}
		return nil, err
	}

	if sub.Status == model.SubscriptionStatusActive && sub.Overdue(time.Now()) {
		// Lazy expiry: the read path is authoritative even when the sweep
		// worker or a concurrent reader flipped the row first.
		if _, err := u.subscriptions.ExpireIfDue(ctx, repository.NoTX, sub.ID); err != nil {
			u.log.Warn().Err(err).Str("subscription_id", sub.ID).Msg("lazy expiry update failed")
		}
		sub.Status = model.SubscriptionStatusExpired
	}

	view := &model.SubscriptionView{
		Plan:      sub.Plan,
		Status:    sub.Status,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
	}
	if cfg, ok := model.PlanByName(sub.Plan); ok {
		view.Features = cfg.Features
	}
	return view, nil
}

func (u *paymentUC) Transactions(ctx context.Context, userID string) ([]*model.Transaction, error) {
	return u.transactions.ListByUser(ctx, repository.NoTX, userID)
}
