//go:build !integration

package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
	"quiz-platform/internal/usecase"
)

type studentUCTestDeps struct {
	users    *MockUserRepo
	images   *MockImageRepo
	attempts *MockAttemptRepo
	storage  *MockImageStorage
	uc       *usecase.StudentUseCase
}

func newStudentUCDeps() *studentUCTestDeps {
	deps := &studentUCTestDeps{
		users:    NewMockUserRepo(),
		images:   NewMockImageRepo(),
		attempts: NewMockAttemptRepo(),
		storage:  NewMockImageStorage(),
	}
	deps.uc = usecase.NewStudentUseCase(deps.users, deps.images, deps.attempts, deps.storage, newTestLogger())
	return deps
}

func (d *studentUCTestDeps) seedStudent(t *testing.T) *model.User {
	t.Helper()
	user, err := model.NewUser("", "student@example.com", "hash", "Student One", model.RoleUser)
	if err != nil {
		t.Fatalf("building user failed: %v", err)
	}
	if err := d.users.Save(context.Background(), repository.NoTX, user); err != nil {
		t.Fatalf("saving user failed: %v", err)
	}
	return user
}

func TestStudentUseCase_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the profile with the image count", func(t *testing.T) {
		deps := newStudentUCDeps()
		user := deps.seedStudent(t)
		img, _ := model.NewUserImage(user.ID, "https://img.example.com/a", "a", "a.png", model.ImageTypeGallery, 10, 1, 1)
		_ = deps.images.Save(ctx, repository.NoTX, img)

		profile, err := deps.uc.Profile(ctx, user.ID)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if profile.Email != "student@example.com" {
			t.Errorf("unexpected email %s", profile.Email)
		}
		if profile.ImageCount != 1 {
			t.Errorf("expected 1 image, got %d", profile.ImageCount)
		}
	})

	t.Run("should refuse staff accounts", func(t *testing.T) {
		deps := newStudentUCDeps()
		admin, _ := model.NewUser("", "admin@example.com", "hash", "Admin", model.RoleAdmin)
		_ = deps.users.Save(ctx, repository.NoTX, admin)

		_, err := deps.uc.Profile(ctx, admin.ID)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestStudentUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	deps := newStudentUCDeps()
	user := deps.seedStudent(t)

	profile, err := deps.uc.UpdateProfile(ctx, user.ID, "Renamed Student")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if profile.FullName != "Renamed Student" {
		t.Errorf("expected the name to change, got %s", profile.FullName)
	}

	stored, _ := deps.users.FindByID(ctx, repository.NoTX, user.ID)
	if stored.Role != model.RoleUser {
		t.Error("expected the role to be untouched")
	}
	if stored.PasswordHash != "hash" {
		t.Error("expected the password hash to be untouched")
	}
}

func TestStudentUseCase_UploadAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("should store the avatar and update the user", func(t *testing.T) {
		deps := newStudentUCDeps()
		user := deps.seedStudent(t)

		img, err := deps.uc.UploadAvatar(ctx, user.ID, strings.NewReader("png-bytes"), "me.png")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if img.Type != model.ImageTypeAvatar {
			t.Errorf("expected an avatar row, got %s", img.Type)
		}

		stored, _ := deps.users.FindByID(ctx, repository.NoTX, user.ID)
		if stored.Avatar != img.URL {
			t.Error("expected the user avatar URL to point at the upload")
		}
	})

	t.Run("should replace the previous avatar", func(t *testing.T) {
		deps := newStudentUCDeps()
		user := deps.seedStudent(t)

		if _, err := deps.uc.UploadAvatar(ctx, user.ID, strings.NewReader("first"), "one.png"); err != nil {
			t.Fatalf("first upload failed: %v", err)
		}
		second, err := deps.uc.UploadAvatar(ctx, user.ID, strings.NewReader("second"), "two.png")
		if err != nil {
			t.Fatalf("second upload failed: %v", err)
		}

		images, _ := deps.images.ListByUser(ctx, repository.NoTX, user.ID)
		if len(images) != 1 {
			t.Fatalf("expected exactly one avatar row, got %d", len(images))
		}
		if images[0].ID != second.ID {
			t.Error("expected only the newest avatar to survive")
		}
		if deps.storage.Stored() != 1 {
			t.Errorf("expected the old stored copy to be destroyed, %d left", deps.storage.Stored())
		}
	})
}

func TestStudentUseCase_UploadImages(t *testing.T) {
	ctx := context.Background()

	t.Run("should store a batch of gallery images", func(t *testing.T) {
		deps := newStudentUCDeps()
		user := deps.seedStudent(t)

		uploads := []usecase.ImageUpload{
			{Reader: strings.NewReader("a"), OriginalName: "a.png"},
			{Reader: strings.NewReader("b"), OriginalName: "b.png"},
			{Reader: strings.NewReader("c"), OriginalName: "c.png", Description: "third"},
		}
		out, err := deps.uc.UploadImages(ctx, user.ID, uploads)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected 3 stored images, got %d", len(out))
		}
		count, _ := deps.images.CountByUser(ctx, repository.NoTX, user.ID)
		if count != 3 {
			t.Errorf("expected 3 rows, got %d", count)
		}
	})

	t.Run("should reject an empty batch", func(t *testing.T) {
		deps := newStudentUCDeps()
		user := deps.seedStudent(t)

		_, err := deps.uc.UploadImages(ctx, user.ID, nil)
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestStudentUseCase_DeleteImages(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete owned images only", func(t *testing.T) {
		deps := newStudentUCDeps()
		owner := deps.seedStudent(t)
		other, _ := model.NewUser("", "other@example.com", "hash", "Other", model.RoleUser)
		_ = deps.users.Save(ctx, repository.NoTX, other)

		mine, _ := deps.uc.UploadImages(ctx, owner.ID, []usecase.ImageUpload{{Reader: strings.NewReader("a"), OriginalName: "a.png"}})
		theirs, _ := deps.uc.UploadImages(ctx, other.ID, []usecase.ImageUpload{{Reader: strings.NewReader("b"), OriginalName: "b.png"}})

		deleted, err := deps.uc.DeleteImages(ctx, owner.ID, []string{mine[0].ID, theirs[0].ID})
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if deleted != 1 {
			t.Errorf("expected exactly the owned image gone, got %d", deleted)
		}
		count, _ := deps.images.CountByUser(ctx, repository.NoTX, other.ID)
		if count != 1 {
			t.Error("expected the other user's image to survive")
		}
	})

	t.Run("should report not-found when nothing is owned", func(t *testing.T) {
		deps := newStudentUCDeps()
		owner := deps.seedStudent(t)

		_, err := deps.uc.DeleteImages(ctx, owner.ID, []string{"missing-1", "missing-2"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
