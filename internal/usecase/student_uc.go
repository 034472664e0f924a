// File: internal/usecase/student_uc.go
package usecase

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/adapter"
	"quiz-platform/internal/domain/ports/repository"
	"quiz-platform/internal/infra/logging"
	"quiz-platform/internal/infra/metrics"
)

// StudentProfile is the student-facing account projection.
type StudentProfile struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Avatar     string    `json:"avatar,omitempty"`
	Provider   string    `json:"provider"`
	ImageCount int       `json:"image_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// ImageUpload is one incoming file for the gallery endpoints.
type ImageUpload struct {
	Reader       io.Reader
	OriginalName string
	Type         model.ImageType
	Description  string
}

// StudentUseCase covers profile, history and image management.
type StudentUseCase struct {
	users    repository.UserRepository
	images   repository.ImageRepository
	attempts repository.AttemptRepository
	storage  adapter.ImageStorage

	log *zerolog.Logger
}

func NewStudentUseCase(
	users repository.UserRepository,
	images repository.ImageRepository,
	attempts repository.AttemptRepository,
	storage adapter.ImageStorage,
	logger *zerolog.Logger,
) *StudentUseCase {
	return &StudentUseCase{
		users:    users,
		images:   images,
		attempts: attempts,
		storage:  storage,
		log:      logger,
	}
}

func (uc *StudentUseCase) Profile(ctx context.Context, userID string) (*StudentProfile, error) {
	user, err := uc.users.FindByID(ctx, repository.NoTX, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleUser {
		return nil, domain.ErrForbidden
	}
	count, err := uc.images.CountByUser(ctx, repository.NoTX, userID)
	if err != nil {
		return nil, err
	}
	return &StudentProfile{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		Provider:   user.Provider,
		ImageCount: count,
		CreatedAt:  user.CreatedAt,
	}, nil
}

// UpdateProfile changes the display fields only. Role and password never move
// through this path.
func (uc *StudentUseCase) UpdateProfile(ctx context.Context, userID, fullName string) (*StudentProfile, error) {
	user, err := uc.users.FindByID(ctx, repository.NoTX, userID)
	if err != nil {
		return nil, err
	}
	if fullName != "" {
		user.FullName = fullName
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Save(ctx, repository.NoTX, user); err != nil {
		return nil, err
	}
	return uc.Profile(ctx, userID)
}

func (uc *StudentUseCase) QuizHistory(ctx context.Context, userID string) ([]*model.AttemptHistoryEntry, error) {
	return uc.attempts.HistoryByUser(ctx, repository.NoTX, userID)
}

// UploadAvatar replaces the user's avatar, destroying the previous stored copy.
func (uc *StudentUseCase) UploadAvatar(ctx context.Context, userID string, r io.Reader, originalName string) (*model.UserImage, error) {
	defer logging.TraceDuration(uc.log, "StudentUC.UploadAvatar")()
	user, err := uc.users.FindByID(ctx, repository.NoTX, userID)
	if err != nil {
		return nil, err
	}

	uploaded, err := uc.storage.Upload(ctx, r, newImageID())
	if err != nil {
		metrics.IncImageUpload(string(model.ImageTypeAvatar), "error")
		return nil, domain.ErrOperationFailed
	}

	// Drop the previous avatar after the new one is safely stored.
	existing, err := uc.images.ListByUser(ctx, repository.NoTX, userID)
	if err != nil {
		return nil, err
	}
	var stale []string
	var staleIDs []string
	for _, img := range existing {
		if img.Type == model.ImageTypeAvatar {
			stale = append(stale, img.PublicID)
			staleIDs = append(staleIDs, img.ID)
		}
	}
	if len(stale) > 0 {
		if err := uc.storage.DestroyAll(ctx, stale); err != nil {
			uc.log.Warn().Err(err).Str("user_id", userID).Msg("old avatar cleanup failed")
		}
		if err := uc.images.Delete(ctx, repository.NoTX, staleIDs); err != nil {
			return nil, err
		}
	}

	img, err := model.NewUserImage(userID, uploaded.URL, uploaded.PublicID, originalName, model.ImageTypeAvatar, uploaded.Bytes, uploaded.Width, uploaded.Height)
	if err != nil {
		return nil, err
	}
	if err := uc.images.Save(ctx, repository.NoTX, img); err != nil {
		return nil, err
	}

	user.Avatar = uploaded.URL
	user.UpdatedAt = time.Now()
	if err := uc.users.Save(ctx, repository.NoTX, user); err != nil {
		return nil, err
	}

	metrics.IncImageUpload(string(model.ImageTypeAvatar), "ok")
	return img, nil
}

// UploadImages stores a batch of gallery images in parallel.
func (uc *StudentUseCase) UploadImages(ctx context.Context, userID string, uploads []ImageUpload) ([]*model.UserImage, error) {
	defer logging.TraceDuration(uc.log, "StudentUC.UploadImages")()
	if len(uploads) == 0 {
		return nil, domain.ErrInvalidArgument
	}
	if _, err := uc.users.FindByID(ctx, repository.NoTX, userID); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	out := make([]*model.UserImage, 0, len(uploads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, up := range uploads {
		up := up
		g.Go(func() error {
			typ := up.Type
			if typ == "" {
				typ = model.ImageTypeGallery
			}
			uploaded, err := uc.storage.Upload(ctx, up.Reader, newImageID())
			if err != nil {
				metrics.IncImageUpload(string(typ), "error")
				return domain.ErrOperationFailed
			}
			img, err := model.NewUserImage(userID, uploaded.URL, uploaded.PublicID, up.OriginalName, typ, uploaded.Bytes, uploaded.Width, uploaded.Height)
			if err != nil {
				return err
			}
			img.Description = up.Description
			if err := uc.images.Save(ctx, repository.NoTX, img); err != nil {
				return err
			}
			metrics.IncImageUpload(string(typ), "ok")
			mu.Lock()
			out = append(out, img)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *StudentUseCase) Images(ctx context.Context, userID string) ([]*model.UserImage, error) {
	return uc.images.ListByUser(ctx, repository.NoTX, userID)
}

// DeleteImages removes owned images from storage and the database. Unowned ids
// are silently skipped; nothing matching is a not-found.
func (uc *StudentUseCase) DeleteImages(ctx context.Context, userID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidArgument
	}
	owned, err := uc.images.FindOwned(ctx, repository.NoTX, userID, ids)
	if err != nil {
		return 0, err
	}
	if len(owned) == 0 {
		return 0, domain.ErrNotFound
	}

	publicIDs := make([]string, 0, len(owned))
	ownedIDs := make([]string, 0, len(owned))
	for _, img := range owned {
		publicIDs = append(publicIDs, img.PublicID)
		ownedIDs = append(ownedIDs, img.ID)
	}
	if err := uc.storage.DestroyAll(ctx, publicIDs); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("remote image cleanup failed")
	}
	if err := uc.images.Delete(ctx, repository.NoTX, ownedIDs); err != nil {
		return 0, err
	}
	return len(ownedIDs), nil
}

// newImageID issues a sortable storage key.
func newImageID() string {
	return strings.ToLower(ulid.Make().String())
}
