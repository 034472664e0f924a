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

var _ repository.QuizRepository = (*quizRepo)(nil)

type quizRepo struct{ pool *pgxpool.Pool }

func NewQuizRepo(pool *pgxpool.Pool) *quizRepo {
	return &quizRepo{pool: pool}
}

const quizColumns = `id, title, description, duration_minutes, total_points, is_active, created_at, updated_at`

func scanQuiz(row pgx.Row) (*model.Quiz, error) {
	q := &model.Quiz{}
	if err := row.Scan(&q.ID, &q.Title, &q.Description, &q.Duration, &q.TotalPoints, &q.IsActive, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return q, nil
}

func (r *quizRepo) Save(ctx context.Context, tx repository.Tx, q *model.Quiz) error {
	const sql = `
INSERT INTO quizzes (
  id, title, description, duration_minutes, total_points, is_active, created_at, updated_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8
) ON CONFLICT (id) DO UPDATE SET
  title=$2, description=$3, duration_minutes=$4, total_points=$5, is_active=$6, updated_at=$8;`

	_, err := execSQL(ctx, r.pool, tx, sql, q.ID, q.Title, q.Description, q.Duration, q.TotalPoints, q.IsActive, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *quizRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Quiz, error) {
	q := `SELECT ` + quizColumns + ` FROM quizzes WHERE id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	return scanQuiz(row)
}

func (r *quizRepo) ListActive(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error) {
	q := `SELECT ` + quizColumns + ` FROM quizzes WHERE is_active=TRUE ORDER BY created_at DESC;`
	return r.list(ctx, tx, q)
}

func (r *quizRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error) {
	q := `SELECT ` + quizColumns + ` FROM quizzes ORDER BY created_at DESC;`
	return r.list(ctx, tx, q)
}

func (r *quizRepo) list(ctx context.Context, tx repository.Tx, q string) ([]*model.Quiz, error) {
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

	var out []*model.Quiz
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, quiz)
	}
	return out, nil
}

func (r *quizRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	const q = `DELETE FROM quizzes WHERE id=$1;`
	cmd, err := execSQL(ctx, r.pool, tx, q, id)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *quizRepo) Count(ctx context.Context, tx repository.Tx) (int, error) {
	return r.count(ctx, tx, `SELECT COUNT(*) FROM quizzes;`)
}

func (r *quizRepo) CountActive(ctx context.Context, tx repository.Tx) (int, error) {
	return r.count(ctx, tx, `SELECT COUNT(*) FROM quizzes WHERE is_active=TRUE;`)
}

func (r *quizRepo) count(ctx context.Context, tx repository.Tx, q string) (int, error) {
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
