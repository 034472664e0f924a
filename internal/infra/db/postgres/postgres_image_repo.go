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

var _ repository.ImageRepository = (*imageRepo)(nil)

type imageRepo struct{ pool *pgxpool.Pool }

func NewImageRepo(pool *pgxpool.Pool) *imageRepo {
	return &imageRepo{pool: pool}
}

const imageColumns = `id, user_id, url, public_id, original_name, type, description, size, width, height, created_at`

func scanImage(row pgx.Row) (*model.UserImage, error) {
	img := &model.UserImage{}
	if err := row.Scan(&img.ID, &img.UserID, &img.URL, &img.PublicID, &img.OriginalName, &img.Type, &img.Description, &img.Size, &img.Width, &img.Height, &img.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return img, nil
}

func (r *imageRepo) Save(ctx context.Context, tx repository.Tx, img *model.UserImage) error {
	const q = `
INSERT INTO user_images (
  id, user_id, url, public_id, original_name, type, description, size, width, height, created_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11
) ON CONFLICT (id) DO UPDATE SET
  url=$3, public_id=$4, original_name=$5, type=$6, description=$7, size=$8, width=$9, height=$10;`

	_, err := execSQL(ctx, r.pool, tx, q, img.ID, img.UserID, img.URL, img.PublicID, img.OriginalName, img.Type, img.Description, img.Size, img.Width, img.Height, img.CreatedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *imageRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.UserImage, error) {
	q := `SELECT ` + imageColumns + ` FROM user_images WHERE user_id=$1 ORDER BY created_at DESC;`
	return r.list(ctx, tx, q, userID)
}

func (r *imageRepo) FindOwned(ctx context.Context, tx repository.Tx, userID string, ids []string) ([]*model.UserImage, error) {
	q := `SELECT ` + imageColumns + ` FROM user_images WHERE user_id=$1 AND id=ANY($2);`
	return r.list(ctx, tx, q, userID, ids)
}

func (r *imageRepo) list(ctx context.Context, tx repository.Tx, q string, args ...interface{}) ([]*model.UserImage, error) {
	rows, err := queryRows(ctx, r.pool, tx, q, args...)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.UserImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

func (r *imageRepo) Delete(ctx context.Context, tx repository.Tx, ids []string) error {
	const q = `DELETE FROM user_images WHERE id=ANY($1);`
	_, err := execSQL(ctx, r.pool, tx, q, ids)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *imageRepo) CountByUser(ctx context.Context, tx repository.Tx, userID string) (int, error) {
	const q = `SELECT COUNT(*) FROM user_images WHERE user_id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, userID)
	if err != nil {
		return 0, err
	}
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, domain.ErrReadDatabaseRow
	}
	return n, nil
}
