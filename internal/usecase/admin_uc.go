// File: internal/usecase/admin_uc.go
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
)

// QuizWithQuestions is the admin projection including correct answers.
type QuizWithQuestions struct {
	Quiz      *model.Quiz       `json:"quiz"`
	Questions []*model.Question `json:"questions"`
}

// SystemStats is the admin dashboard summary.
type SystemStats struct {
	TotalUsers        int            `json:"total_users"`
	ActiveUsers       int            `json:"active_users"`
	UsersByRole       map[string]int `json:"users_by_role"`
	TotalQuizzes      int            `json:"total_quizzes"`
	ActiveQuizzes     int            `json:"active_quizzes"`
	TotalAttempts     int            `json:"total_attempts"`
	CompletedAttempts int            `json:"completed_attempts"`
}

// AdminUseCase covers user administration and full quiz visibility.
type AdminUseCase struct {
	users     repository.UserRepository
	quizzes   repository.QuizRepository
	questions repository.QuestionRepository
	attempts  repository.AttemptRepository

	log *zerolog.Logger
}

func NewAdminUseCase(
	users repository.UserRepository,
	quizzes repository.QuizRepository,
	questions repository.QuestionRepository,
	attempts repository.AttemptRepository,
	logger *zerolog.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		users:     users,
		quizzes:   quizzes,
		questions: questions,
		attempts:  attempts,
		log:       logger,
	}
}

func (uc *AdminUseCase) Users(ctx context.Context, offset, limit int) ([]*model.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.users.List(ctx, repository.NoTX, offset, limit)
}

func (uc *AdminUseCase) User(ctx context.Context, id string) (*model.User, error) {
	return uc.users.FindByID(ctx, repository.NoTX, id)
}

func (uc *AdminUseCase) UpdateRole(ctx context.Context, id string, role model.UserRole) (*model.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidArgument
	}
	user, err := uc.users.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.users.Save(ctx, repository.NoTX, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", id).Str("role", string(role)).Msg("role updated")
	return user, nil
}

func (uc *AdminUseCase) ToggleActive(ctx context.Context, id string) (*model.User, error) {
	user, err := uc.users.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now()
	if err := uc.users.Save(ctx, repository.NoTX, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", id).Bool("is_active", user.IsActive).Msg("active flag toggled")
	return user, nil
}

// QuizzesWithQuestions returns every quiz with its full question set,
// correct answers included.
func (uc *AdminUseCase) QuizzesWithQuestions(ctx context.Context) ([]QuizWithQuestions, error) {
	quizzes, err := uc.quizzes.ListAll(ctx, repository.NoTX)
	if err != nil {
		return nil, err
	}
	out := make([]QuizWithQuestions, 0, len(quizzes))
	for _, quiz := range quizzes {
		questions, err := uc.questions.ListByQuiz(ctx, repository.NoTX, quiz.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, QuizWithQuestions{Quiz: quiz, Questions: questions})
	}
	return out, nil
}

func (uc *AdminUseCase) Stats(ctx context.Context) (*SystemStats, error) {
	stats := &SystemStats{}
	var err error
	if stats.TotalUsers, err = uc.users.CountUsers(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if stats.ActiveUsers, err = uc.users.CountActive(ctx, repository.NoTX, true); err != nil {
		return nil, err
	}
	if stats.UsersByRole, err = uc.users.CountByRole(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if stats.TotalQuizzes, err = uc.quizzes.Count(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if stats.ActiveQuizzes, err = uc.quizzes.CountActive(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if stats.TotalAttempts, err = uc.attempts.Count(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if stats.CompletedAttempts, err = uc.attempts.CountCompleted(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	return stats, nil
}
