package repository

import (
	"context"

	"quiz-platform/internal/domain/model"
)

type UserRepository interface {
	Save(ctx context.Context, tx Tx, u *model.User) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.User, error)
	FindByEmail(ctx context.Context, tx Tx, email string) (*model.User, error)
	// FindForOAuth matches by provider id first, then by email.
	FindForOAuth(ctx context.Context, tx Tx, googleID, githubID, email string) (*model.User, error)
	List(ctx context.Context, tx Tx, offset, limit int) ([]*model.User, error)
	CountUsers(ctx context.Context, tx Tx) (int, error)
	CountActive(ctx context.Context, tx Tx, active bool) (int, error)
	CountByRole(ctx context.Context, tx Tx) (map[string]int, error)
}
