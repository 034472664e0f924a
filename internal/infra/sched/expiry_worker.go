package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"quiz-platform/internal/domain/ports/repository"
	"quiz-platform/internal/infra/metrics"
)

// ExpiryWorker periodically sweeps overdue subscriptions. The read path
// expires lazily on its own; the sweep keeps rows honest for users who never
// come back.
type ExpiryWorker struct {
	interval time.Duration
	subs     repository.SubscriptionRepository
	log      *zerolog.Logger
}

func NewExpiryWorker(interval time.Duration, subs repository.SubscriptionRepository, logger *zerolog.Logger) *ExpiryWorker {
	workerLog := logger.With().Str("component", "ExpiryWorker").Logger()
	return &ExpiryWorker{
		interval: interval,
		subs:     subs,
		log:      &workerLog,
	}
}

func (w *ExpiryWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Msg("Starting expiry worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping expiry worker")
			return ctx.Err()
		case <-ticker.C:
			n, err := w.subs.FinishOverdue(ctx, repository.NoTX)
			if err != nil {
				w.log.Error().Err(err).Msg("expiry sweep failed")
				continue
			}
			if n > 0 {
				metrics.IncSubscriptionsExpired(n)
				w.log.Info().Int("count", n).Msg("overdue subscriptions expired")
			}
			if counts, err := w.subs.CountByStatus(ctx, repository.NoTX); err == nil {
				metrics.SetSubscriptionsTotal(counts)
			}
		}
	}
}
