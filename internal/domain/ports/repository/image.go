package repository

import (
	"context"

	"quiz-platform/internal/domain/model"
)

type ImageRepository interface {
	Save(ctx context.Context, tx Tx, img *model.UserImage) error
	ListByUser(ctx context.Context, tx Tx, userID string) ([]*model.UserImage, error)
	// FindOwned returns only images from ids that belong to userID.
	FindOwned(ctx context.Context, tx Tx, userID string, ids []string) ([]*model.UserImage, error)
	Delete(ctx context.Context, tx Tx, ids []string) error
	CountByUser(ctx context.Context, tx Tx, userID string) (int, error)
}
