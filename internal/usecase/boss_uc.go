// File: internal/usecase/boss_uc.go
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
	"quiz-platform/internal/infra/logging"
)

// Overview is the top-line analytics card.
type Overview struct {
	TotalUsers        int     `json:"total_users"`
	TotalQuizzes      int     `json:"total_quizzes"`
	TotalAttempts     int     `json:"total_attempts"`
	CompletedAttempts int     `json:"completed_attempts"`
	AverageScore      float64 `json:"average_score"`
}

// UserAnalytics breaks the account base down.
type UserAnalytics struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	ByRole   map[string]int `json:"by_role"`
}

// FullReport bundles every analytics section into one payload.
type FullReport struct {
	GeneratedAt   time.Time                `json:"generated_at"`
	Overview      *Overview                `json:"overview"`
	Users         *UserAnalytics           `json:"users"`
	Quizzes       []*model.QuizPerformance `json:"quizzes"`
	TopPerformers []*model.TopPerformer    `json:"top_performers"`
	Recent        []*model.AttemptActivity `json:"recent_activities"`
}

// BossUseCase serves the owner analytics surface. Read-only.
type BossUseCase struct {
	users    repository.UserRepository
	quizzes  repository.QuizRepository
	attempts repository.AttemptRepository

	log *zerolog.Logger
}

func NewBossUseCase(
	users repository.UserRepository,
	quizzes repository.QuizRepository,
	attempts repository.AttemptRepository,
	logger *zerolog.Logger,
) *BossUseCase {
	return &BossUseCase{users: users, quizzes: quizzes, attempts: attempts, log: logger}
}

func (uc *BossUseCase) Overview(ctx context.Context) (*Overview, error) {
	out := &Overview{}
	var err error
	if out.TotalUsers, err = uc.users.CountUsers(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if out.TotalQuizzes, err = uc.quizzes.Count(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if out.TotalAttempts, err = uc.attempts.Count(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if out.CompletedAttempts, err = uc.attempts.CountCompleted(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if out.AverageScore, err = uc.attempts.AverageScore(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *BossUseCase) UserAnalytics(ctx context.Context) (*UserAnalytics, error) {
	out := &UserAnalytics{}
	var err error
	if out.Total, err = uc.users.CountUsers(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	if out.Active, err = uc.users.CountActive(ctx, repository.NoTX, true); err != nil {
		return nil, err
	}
	out.Inactive = out.Total - out.Active
	if out.ByRole, err = uc.users.CountByRole(ctx, repository.NoTX); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *BossUseCase) QuizAnalytics(ctx context.Context) ([]*model.QuizPerformance, error) {
	return uc.attempts.QuizPerformance(ctx, repository.NoTX)
}

func (uc *BossUseCase) TopPerformers(ctx context.Context, limit int) ([]*model.TopPerformer, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return uc.attempts.TopPerformers(ctx, repository.NoTX, limit)
}

func (uc *BossUseCase) RecentActivities(ctx context.Context, limit int) ([]*model.AttemptActivity, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.attempts.Recent(ctx, repository.NoTX, limit)
}

// Report gathers every section concurrently.
func (uc *BossUseCase) Report(ctx context.Context) (*FullReport, error) {
	defer logging.TraceDuration(uc.log, "BossUC.Report")()
	report := &FullReport{GeneratedAt: time.Now()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report.Overview, err = uc.Overview(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.Users, err = uc.UserAnalytics(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.Quizzes, err = uc.QuizAnalytics(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.TopPerformers, err = uc.TopPerformers(ctx, 10)
		return err
	})
	g.Go(func() error {
		var err error
		report.Recent, err = uc.RecentActivities(ctx, 20)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
