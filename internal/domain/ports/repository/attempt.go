package repository

import (
	"context"

	"quiz-platform/internal/domain/model"
)

type AttemptRepository interface {
	Save(ctx context.Context, tx Tx, a *model.QuizAttempt) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.QuizAttempt, error)
	HistoryByUser(ctx context.Context, tx Tx, userID string) ([]*model.AttemptHistoryEntry, error)
	Count(ctx context.Context, tx Tx) (int, error)
	CountCompleted(ctx context.Context, tx Tx) (int, error)
	AverageScore(ctx context.Context, tx Tx) (float64, error)
	QuizPerformance(ctx context.Context, tx Tx) ([]*model.QuizPerformance, error)
	TopPerformers(ctx context.Context, tx Tx, limit int) ([]*model.TopPerformer, error)
	Recent(ctx context.Context, tx Tx, limit int) ([]*model.AttemptActivity, error)
}

type AnswerRepository interface {
	Save(ctx context.Context, tx Tx, a *model.Answer) error
	ListByAttempt(ctx context.Context, tx Tx, attemptID string) ([]*model.Answer, error)
	SumPoints(ctx context.Context, tx Tx, attemptID string) (int, error)
}
