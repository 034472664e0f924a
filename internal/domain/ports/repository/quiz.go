package repository

import (
	"context"

	"quiz-platform/internal/domain/model"
)

type QuizRepository interface {
	Save(ctx context.Context, tx Tx, q *model.Quiz) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Quiz, error)
	ListActive(ctx context.Context, tx Tx) ([]*model.Quiz, error)
	ListAll(ctx context.Context, tx Tx) ([]*model.Quiz, error)
	Delete(ctx context.Context, tx Tx, id string) error
	Count(ctx context.Context, tx Tx) (int, error)
	CountActive(ctx context.Context, tx Tx) (int, error)
}

type QuestionRepository interface {
	Save(ctx context.Context, tx Tx, q *model.Question) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Question, error)
	ListByQuiz(ctx context.Context, tx Tx, quizID string) ([]*model.Question, error)
	Delete(ctx context.Context, tx Tx, id string) error
}
