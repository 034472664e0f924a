package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
)

var _ repository.TransactionRepository = (*transactionRepo)(nil)

type transactionRepo struct{ pool *pgxpool.Pool }

func NewTransactionRepo(pool *pgxpool.Pool) *transactionRepo {
	return &transactionRepo{pool: pool}
}

const transactionColumns = `id, user_id, subscription_id, paypal_order_id, paypal_capture_id, payer_id, payer_email, payer_name, payment_method, amount_cents, currency, status, description, error_message, plan, paypal_response, created_at, completed_at, refunded_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	t := &model.Transaction{}
	if err := row.Scan(&t.ID, &t.UserID, &t.SubscriptionID, &t.PayPalOrderID, &t.PayPalCaptureID, &t.PayerID, &t.PayerEmail, &t.PayerName, &t.PaymentMethod, &t.AmountCents, &t.Currency, &t.Status, &t.Description, &t.ErrorMessage, &t.Plan, &t.PayPalResponse, &t.CreatedAt, &t.CompletedAt, &t.RefundedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return t, nil
}

func (r *transactionRepo) Save(ctx context.Context, tx repository.Tx, t *model.Transaction) error {
	const q = `
INSERT INTO transactions (
  id, user_id, subscription_id, paypal_order_id, paypal_capture_id, payer_id, payer_email, payer_name, payment_method, amount_cents, currency, status, description, error_message, plan, paypal_response, created_at, completed_at, refunded_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19
) ON CONFLICT (id) DO UPDATE SET
  subscription_id=$3, paypal_capture_id=$5, payer_id=$6, payer_email=$7, payer_name=$8, status=$12, error_message=$14, paypal_response=$16, completed_at=$18, refunded_at=$19;`

	_, err := execSQL(ctx, r.pool, tx, q, t.ID, t.UserID, t.SubscriptionID, t.PayPalOrderID, t.PayPalCaptureID, t.PayerID, t.PayerEmail, t.PayerName, t.PaymentMethod, t.AmountCents, t.Currency, t.Status, t.Description, t.ErrorMessage, t.Plan, t.PayPalResponse, t.CreatedAt, t.CompletedAt, t.RefundedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *transactionRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Transaction, error) {
	q := `SELECT ` + transactionColumns + ` FROM transactions WHERE id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	return scanTransaction(row)
}

func (r *transactionRepo) FindByOrderAndUser(ctx context.Context, tx repository.Tx, orderID, userID string) (*model.Transaction, error) {
	q := `SELECT ` + transactionColumns + ` FROM transactions WHERE paypal_order_id=$1 AND user_id=$2 LIMIT 1`
	if _, ok := tx.(pgx.Tx); ok {
		q += " FOR UPDATE"
	}
	q += ";"
	row, err := pickRow(ctx, r.pool, tx, q, orderID, userID)
	if err != nil {
		return nil, err
	}
	return scanTransaction(row)
}

func (r *transactionRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Transaction, error) {
	q := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id=$1 ORDER BY created_at DESC;`
	rows, err := queryRows(ctx, r.pool, tx, q, userID)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// CompletePending atomically updates status only when the current status is
// still 'PENDING'. A false return means another capture won the race.
func (r *transactionRepo) CompletePending(ctx context.Context, tx repository.Tx, id string, upd repository.CaptureUpdate) (bool, error) {
	const q = `
UPDATE transactions
   SET status = 'COMPLETED',
       paypal_capture_id = $2,
       payer_id = $3,
       payer_email = $4,
       payer_name = $5,
       paypal_response = $6,
       completed_at = $7
 WHERE id = $1
   AND status = 'PENDING';`

	cmd, err := execSQL(ctx, r.pool, tx, q, id, upd.CaptureID, upd.PayerID, upd.PayerEmail, upd.PayerName, upd.Raw, upd.CompletedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return false, err
		}
		return false, domain.ErrOperationFailed
	}
	return cmd.RowsAffected() >= 1, nil
}

func (r *transactionRepo) MarkFailed(ctx context.Context, tx repository.Tx, id, errorMessage string) error {
	const q = `UPDATE transactions SET status='FAILED', error_message=$2 WHERE id=$1 AND status='PENDING';`
	_, err := execSQL(ctx, r.pool, tx, q, id, errorMessage)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *transactionRepo) LinkSubscription(ctx context.Context, tx repository.Tx, id, subscriptionID string) error {
	const q = `UPDATE transactions SET subscription_id=$2 WHERE id=$1;`
	_, err := execSQL(ctx, r.pool, tx, q, id, subscriptionID)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}
