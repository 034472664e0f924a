// File: internal/usecase/attempt_uc.go
package usecase

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
	"quiz-platform/internal/infra/logging"
	"quiz-platform/internal/infra/metrics"
)

// AttemptUseCase drives the quiz-taking lifecycle.
type AttemptUseCase struct {
	txm       repository.TransactionManager
	attempts  repository.AttemptRepository
	answers   repository.AnswerRepository
	quizzes   repository.QuizRepository
	questions repository.QuestionRepository

	log *zerolog.Logger
}

func NewAttemptUseCase(
	txm repository.TransactionManager,
	attempts repository.AttemptRepository,
	answers repository.AnswerRepository,
	quizzes repository.QuizRepository,
	questions repository.QuestionRepository,
	logger *zerolog.Logger,
) *AttemptUseCase {
	return &AttemptUseCase{
		txm:       txm,
		attempts:  attempts,
		answers:   answers,
		quizzes:   quizzes,
		questions: questions,
		log:       logger,
	}
}

// Start opens a new attempt and returns the stripped questions to answer.
func (uc *AttemptUseCase) Start(ctx context.Context, userID, quizID string) (*model.QuizAttempt, []model.QuestionStudentView, error) {
	defer logging.TraceDuration(uc.log, "AttemptUC.Start")()
	quiz, err := uc.quizzes.FindByID(ctx, repository.NoTX, quizID)
	if err != nil {
		return nil, nil, err
	}
	if !quiz.IsActive {
		return nil, nil, domain.ErrNotFound
	}

	attempt, err := model.NewQuizAttempt(userID, quizID)
	if err != nil {
		return nil, nil, err
	}
	if err := uc.attempts.Save(ctx, repository.NoTX, attempt); err != nil {
		return nil, nil, err
	}

	questions, err := uc.questions.ListByQuiz(ctx, repository.NoTX, quizID)
	if err != nil {
		return nil, nil, err
	}
	views := make([]model.QuestionStudentView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.StudentView())
	}

	metrics.IncAttempt("started")
	uc.log.Info().Str("attempt_id", attempt.ID).Str("quiz_id", quizID).Msg("attempt started")
	return attempt, views, nil
}

// SubmitAnswer grades one selection inside an in-progress attempt.
func (uc *AttemptUseCase) SubmitAnswer(ctx context.Context, userID, attemptID, questionID, selected string) (*model.Answer, error) {
	if selected == "" {
		return nil, domain.ErrInvalidArgument
	}
	attempt, err := uc.ownedAttempt(ctx, repository.NoTX, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != model.AttemptStatusInProgress {
		return nil, domain.ErrAttemptNotInProgress
	}

	question, err := uc.questions.FindByID(ctx, repository.NoTX, questionID)
	if err != nil {
		return nil, err
	}
	if question.QuizID != attempt.QuizID {
		return nil, domain.ErrQuestionOutsideQuiz
	}

	answer, err := model.NewAnswer(attemptID, question, selected)
	if err != nil {
		return nil, err
	}
	if err := uc.answers.Save(ctx, repository.NoTX, answer); err != nil {
		return nil, err
	}
	metrics.IncAnswerSubmitted(answer.IsCorrect)
	return answer, nil
}

// Complete finalizes an attempt: the score is the sum of the stored answer
// points, computed inside one transaction so a late answer cannot slip in.
func (uc *AttemptUseCase) Complete(ctx context.Context, userID, attemptID string) (*model.QuizAttempt, error) {
	defer logging.TraceDuration(uc.log, "AttemptUC.Complete")()
	var finished *model.QuizAttempt
	err := uc.txm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		attempt, err := uc.ownedAttempt(ctx, tx, userID, attemptID)
		if err != nil {
			return err
		}
		if attempt.Status != model.AttemptStatusInProgress {
			return domain.ErrAttemptNotInProgress
		}

		score, err := uc.answers.SumPoints(ctx, tx, attemptID)
		if err != nil {
			return err
		}

		now := time.Now()
		attempt.Score = score
		attempt.Status = model.AttemptStatusCompleted
		attempt.CompletedAt = &now
		attempt.UpdatedAt = now
		if err := uc.attempts.Save(ctx, tx, attempt); err != nil {
			return err
		}
		finished = attempt
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncAttempt("completed")
	if quiz, err := uc.quizzes.FindByID(ctx, repository.NoTX, finished.QuizID); err == nil && quiz.TotalPoints > 0 {
		metrics.ObserveAttemptScore(float64(finished.Score) * 100 / float64(quiz.TotalPoints))
	}
	uc.log.Info().Str("attempt_id", attemptID).Int("score", finished.Score).Msg("attempt completed")
	return finished, nil
}

// Abandon marks an in-progress attempt as given up. No score is computed.
func (uc *AttemptUseCase) Abandon(ctx context.Context, userID, attemptID string) (*model.QuizAttempt, error) {
	attempt, err := uc.ownedAttempt(ctx, repository.NoTX, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != model.AttemptStatusInProgress {
		return nil, domain.ErrAttemptNotInProgress
	}
	now := time.Now()
	attempt.Status = model.AttemptStatusAbandoned
	attempt.CompletedAt = &now
	attempt.UpdatedAt = now
	if err := uc.attempts.Save(ctx, repository.NoTX, attempt); err != nil {
		return nil, err
	}
	metrics.IncAttempt("abandoned")
	return attempt, nil
}

func (uc *AttemptUseCase) History(ctx context.Context, userID string) ([]*model.AttemptHistoryEntry, error) {
	return uc.attempts.HistoryByUser(ctx, repository.NoTX, userID)
}

func (uc *AttemptUseCase) ownedAttempt(ctx context.Context, tx repository.Tx, userID, attemptID string) (*model.QuizAttempt, error) {
	attempt, err := uc.attempts.FindByID(ctx, tx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return attempt, nil
}
