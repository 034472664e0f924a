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

var _ repository.QuestionRepository = (*questionRepo)(nil)

type questionRepo struct{ pool *pgxpool.Pool }

func NewQuestionRepo(pool *pgxpool.Pool) *questionRepo {
	return &questionRepo{pool: pool}
}

const questionColumns = `id, quiz_id, question_text, options, correct_answer, points, created_at, updated_at`

func scanQuestion(row pgx.Row) (*model.Question, error) {
	q := &model.Question{}
	if err := row.Scan(&q.ID, &q.QuizID, &q.Text, &q.Options, &q.CorrectAnswer, &q.Points, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return q, nil
}

func (r *questionRepo) Save(ctx context.Context, tx repository.Tx, q *model.Question) error {
	const sql = `
INSERT INTO questions (
  id, quiz_id, question_text, options, correct_answer, points, created_at, updated_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8
) ON CONFLICT (id) DO UPDATE SET
  question_text=$3, options=$4, correct_answer=$5, points=$6, updated_at=$8;`

	_, err := execSQL(ctx, r.pool, tx, sql, q.ID, q.QuizID, q.Text, q.Options, q.CorrectAnswer, q.Points, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *questionRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Question, error) {
	q := `SELECT ` + questionColumns + ` FROM questions WHERE id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	return scanQuestion(row)
}

func (r *questionRepo) ListByQuiz(ctx context.Context, tx repository.Tx, quizID string) ([]*model.Question, error) {
	q := `SELECT ` + questionColumns + ` FROM questions WHERE quiz_id=$1 ORDER BY created_at ASC;`
	rows, err := queryRows(ctx, r.pool, tx, q, quizID)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, question)
	}
	return out, nil
}

func (r *questionRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	const q = `DELETE FROM questions WHERE id=$1;`
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
