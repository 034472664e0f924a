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

var _ repository.AttemptRepository = (*attemptRepo)(nil)

type attemptRepo struct{ pool *pgxpool.Pool }

func NewAttemptRepo(pool *pgxpool.Pool) *attemptRepo {
	return &attemptRepo{pool: pool}
}

const attemptColumns = `id, user_id, quiz_id, status, score, started_at, completed_at, created_at, updated_at`

func scanAttempt(row pgx.Row) (*model.QuizAttempt, error) {
	a := &model.QuizAttempt{}
	if err := row.Scan(&a.ID, &a.UserID, &a.QuizID, &a.Status, &a.Score, &a.StartedAt, &a.CompletedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return a, nil
}

func (r *attemptRepo) Save(ctx context.Context, tx repository.Tx, a *model.QuizAttempt) error {
	const q = `
INSERT INTO quiz_attempts (
  id, user_id, quiz_id, status, score, started_at, completed_at, created_at, updated_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9
) ON CONFLICT (id) DO UPDATE SET
  status=$4, score=$5, completed_at=$7, updated_at=$9;`

	_, err := execSQL(ctx, r.pool, tx, q, a.ID, a.UserID, a.QuizID, a.Status, a.Score, a.StartedAt, a.CompletedAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *attemptRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.QuizAttempt, error) {
	q := `SELECT ` + attemptColumns + ` FROM quiz_attempts WHERE id=$1`
	if _, ok := tx.(pgx.Tx); ok {
		q += " FOR UPDATE"
	}
	q += ";"
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	return scanAttempt(row)
}

func (r *attemptRepo) HistoryByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.AttemptHistoryEntry, error) {
	const q = `
SELECT a.id, a.quiz_id, q.title, a.score, a.status, a.started_at, a.completed_at
  FROM quiz_attempts a
  JOIN quizzes q ON q.id = a.quiz_id
 WHERE a.user_id=$1
 ORDER BY a.created_at DESC;`
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

	var out []*model.AttemptHistoryEntry
	for rows.Next() {
		e := &model.AttemptHistoryEntry{}
		if err := rows.Scan(&e.ID, &e.QuizID, &e.QuizTitle, &e.Score, &e.Status, &e.StartedAt, &e.CompletedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *attemptRepo) Count(ctx context.Context, tx repository.Tx) (int, error) {
	return r.count(ctx, tx, `SELECT COUNT(*) FROM quiz_attempts;`)
}

func (r *attemptRepo) CountCompleted(ctx context.Context, tx repository.Tx) (int, error) {
	return r.count(ctx, tx, `SELECT COUNT(*) FROM quiz_attempts WHERE status='completed';`)
}

func (r *attemptRepo) count(ctx context.Context, tx repository.Tx, q string) (int, error) {
	row, err := pickRow(ctx, r.pool, tx, q)
	if err != nil {
		return 0, err
	}
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, domain.ErrReadDatabaseRow
	}
	return n, nil
}

func (r *attemptRepo) AverageScore(ctx context.Context, tx repository.Tx) (float64, error) {
	const q = `SELECT COALESCE(AVG(score),0) FROM quiz_attempts WHERE status='completed';`
	row, err := pickRow(ctx, r.pool, tx, q)
	if err != nil {
		return 0, err
	}
	var avg float64
	if err := row.Scan(&avg); err != nil {
		return 0, domain.ErrReadDatabaseRow
	}
	return avg, nil
}

func (r *attemptRepo) QuizPerformance(ctx context.Context, tx repository.Tx) ([]*model.QuizPerformance, error) {
	const q = `
SELECT q.id, q.title, COUNT(a.id), COALESCE(AVG(a.score),0), COALESCE(MAX(a.score),0), COALESCE(MIN(a.score),0)
  FROM quizzes q
  LEFT JOIN quiz_attempts a ON a.quiz_id = q.id AND a.status='completed'
 GROUP BY q.id, q.title
 ORDER BY COUNT(a.id) DESC;`
	rows, err := queryRows(ctx, r.pool, tx, q)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.QuizPerformance
	for rows.Next() {
		p := &model.QuizPerformance{}
		if err := rows.Scan(&p.QuizID, &p.QuizTitle, &p.TotalAttempts, &p.AverageScore, &p.MaxScore, &p.MinScore); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *attemptRepo) TopPerformers(ctx context.Context, tx repository.Tx, limit int) ([]*model.TopPerformer, error) {
	if limit <= 0 {
		limit = 10
	}
	const q = `
SELECT u.id, u.full_name, u.email, COUNT(a.id), COALESCE(AVG(a.score),0), COALESCE(SUM(a.score),0)
  FROM users u
  JOIN quiz_attempts a ON a.user_id = u.id AND a.status='completed'
 WHERE u.role='user'
 GROUP BY u.id, u.full_name, u.email
 ORDER BY COALESCE(AVG(a.score),0) DESC
 LIMIT $1;`
	rows, err := queryRows(ctx, r.pool, tx, q, limit)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.TopPerformer
	rank := 0
	for rows.Next() {
		p := &model.TopPerformer{}
		if err := rows.Scan(&p.UserID, &p.FullName, &p.Email, &p.TotalAttempts, &p.AverageScore, &p.TotalScore); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		rank++
		p.Rank = rank
		out = append(out, p)
	}
	return out, nil
}

func (r *attemptRepo) Recent(ctx context.Context, tx repository.Tx, limit int) ([]*model.AttemptActivity, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT a.id, u.full_name, u.email, q.title, a.score, a.status, a.completed_at, a.created_at
  FROM quiz_attempts a
  JOIN users u ON u.id = a.user_id
  JOIN quizzes q ON q.id = a.quiz_id
 ORDER BY a.created_at DESC
 LIMIT $1;`
	rows, err := queryRows(ctx, r.pool, tx, q, limit)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.AttemptActivity
	for rows.Next() {
		a := &model.AttemptActivity{}
		if err := rows.Scan(&a.ID, &a.UserName, &a.UserEmail, &a.QuizTitle, &a.Score, &a.Status, &a.CompletedAt, &a.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, a)
	}
	return out, nil
}
