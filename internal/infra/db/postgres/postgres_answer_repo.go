package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
)

var _ repository.AnswerRepository = (*answerRepo)(nil)

type answerRepo struct{ pool *pgxpool.Pool }

func NewAnswerRepo(pool *pgxpool.Pool) *answerRepo {
	return &answerRepo{pool: pool}
}

func (r *answerRepo) Save(ctx context.Context, tx repository.Tx, a *model.Answer) error {
	// Re-answering the same question overwrites the previous row.
	const q = `
INSERT INTO answers (
  id, attempt_id, question_id, selected_answer, is_correct, points_earned, created_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7
) ON CONFLICT (attempt_id, question_id) DO UPDATE SET
  selected_answer=$4, is_correct=$5, points_earned=$6;`

	_, err := execSQL(ctx, r.pool, tx, q, a.ID, a.AttemptID, a.QuestionID, a.SelectedAnswer, a.IsCorrect, a.PointsEarned, a.CreatedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *answerRepo) ListByAttempt(ctx context.Context, tx repository.Tx, attemptID string) ([]*model.Answer, error) {
	const q = `SELECT id, attempt_id, question_id, selected_answer, is_correct, points_earned, created_at FROM answers WHERE attempt_id=$1 ORDER BY created_at ASC;`
	rows, err := queryRows(ctx, r.pool, tx, q, attemptID)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.Answer
	for rows.Next() {
		a := &model.Answer{}
		if err := rows.Scan(&a.ID, &a.AttemptID, &a.QuestionID, &a.SelectedAnswer, &a.IsCorrect, &a.PointsEarned, &a.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *answerRepo) SumPoints(ctx context.Context, tx repository.Tx, attemptID string) (int, error) {
	const q = `SELECT COALESCE(SUM(points_earned),0) FROM answers WHERE attempt_id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, attemptID)
	if err != nil {
		return 0, err
	}
	var sum int
	if err := row.Scan(&sum); err != nil {
		return 0, domain.ErrReadDatabaseRow
	}
	return sum, nil
}
