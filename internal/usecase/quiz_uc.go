// File: internal/usecase/quiz_uc.go
package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
)

// QuizUseCase implements quiz and question management.
type QuizUseCase struct {
	quizzes   repository.QuizRepository
	questions repository.QuestionRepository

	log *zerolog.Logger
}

func NewQuizUseCase(quizzes repository.QuizRepository, questions repository.QuestionRepository, logger *zerolog.Logger) *QuizUseCase {
	return &QuizUseCase{quizzes: quizzes, questions: questions, log: logger}
}

func (uc *QuizUseCase) CreateQuiz(ctx context.Context, title, description string, duration, totalPoints int) (*model.Quiz, error) {
	quiz, err := model.NewQuiz(title, description, duration, totalPoints)
	if err != nil {
		return nil, err
	}
	if err := uc.quizzes.Save(ctx, repository.NoTX, quiz); err != nil {
		return nil, err
	}
	uc.log.Info().Str("quiz_id", quiz.ID).Str("title", title).Msg("quiz created")
	return quiz, nil
}

// QuizUpdate carries optional field changes; nil means keep the current value.
type QuizUpdate struct {
	Title       *string
	Description *string
	Duration    *int
	TotalPoints *int
	IsActive    *bool
}

func (uc *QuizUseCase) UpdateQuiz(ctx context.Context, id string, upd QuizUpdate) (*model.Quiz, error) {
	quiz, err := uc.quizzes.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, domain.ErrInvalidArgument
		}
		quiz.Title = *upd.Title
	}
	if upd.Description != nil {
		quiz.Description = *upd.Description
	}
	if upd.Duration != nil {
		if *upd.Duration <= 0 {
			return nil, domain.ErrInvalidArgument
		}
		quiz.Duration = *upd.Duration
	}
	if upd.TotalPoints != nil {
		if *upd.TotalPoints <= 0 {
			return nil, domain.ErrInvalidArgument
		}
		quiz.TotalPoints = *upd.TotalPoints
	}
	if upd.IsActive != nil {
		quiz.IsActive = *upd.IsActive
	}
	if err := uc.quizzes.Save(ctx, repository.NoTX, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (uc *QuizUseCase) DeleteQuiz(ctx context.Context, id string) error {
	return uc.quizzes.Delete(ctx, repository.NoTX, id)
}

func (uc *QuizUseCase) ListActive(ctx context.Context) ([]*model.Quiz, error) {
	return uc.quizzes.ListActive(ctx, repository.NoTX)
}

func (uc *QuizUseCase) ListAll(ctx context.Context) ([]*model.Quiz, error) {
	return uc.quizzes.ListAll(ctx, repository.NoTX)
}

// GetQuiz returns the quiz with its questions stripped for student consumption.
func (uc *QuizUseCase) GetQuiz(ctx context.Context, id string) (*model.Quiz, []model.QuestionStudentView, error) {
	quiz, err := uc.quizzes.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, nil, err
	}
	questions, err := uc.questions.ListByQuiz(ctx, repository.NoTX, id)
	if err != nil {
		return nil, nil, err
	}
	views := make([]model.QuestionStudentView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.StudentView())
	}
	return quiz, views, nil
}

func (uc *QuizUseCase) AddQuestion(ctx context.Context, quizID, text string, options []string, correctAnswer string, points int) (*model.Question, error) {
	if _, err := uc.quizzes.FindByID(ctx, repository.NoTX, quizID); err != nil {
		return nil, err
	}
	question, err := model.NewQuestion(quizID, text, options, correctAnswer, points)
	if err != nil {
		return nil, err
	}
	if err := uc.questions.Save(ctx, repository.NoTX, question); err != nil {
		return nil, err
	}
	return question, nil
}

// Questions returns the stripped question list for a quiz.
func (uc *QuizUseCase) Questions(ctx context.Context, quizID string) ([]model.QuestionStudentView, error) {
	questions, err := uc.questions.ListByQuiz(ctx, repository.NoTX, quizID)
	if err != nil {
		return nil, err
	}
	views := make([]model.QuestionStudentView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.StudentView())
	}
	return views, nil
}

// QuestionWithAnswer is the full question including the correct answer. Only
// grading and admin paths may use it.
func (uc *QuizUseCase) QuestionWithAnswer(ctx context.Context, questionID string) (*model.Question, error) {
	return uc.questions.FindByID(ctx, repository.NoTX, questionID)
}

func (uc *QuizUseCase) DeleteQuestion(ctx context.Context, id string) error {
	return uc.questions.Delete(ctx, repository.NoTX, id)
}
