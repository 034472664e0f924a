package model

import (
	"time"

	"quiz-platform/internal/domain"

	"github.com/google/uuid"
)

type ImageType string

const (
	ImageTypeAvatar  ImageType = "avatar"
	ImageTypeGallery ImageType = "gallery"
	ImageTypeQuiz    ImageType = "quiz"
	ImageTypeOther   ImageType = "other"
)

// UserImage is one stored image. PublicID is the storage-side key used for
// deletion.
type UserImage struct {
	ID           string
	UserID       string
	URL          string
	PublicID     string
	OriginalName string
	Type         ImageType
	Description  string
	Size         int
	Width        int
	Height       int
	CreatedAt    time.Time
}

func NewUserImage(userID, url, publicID, originalName string, typ ImageType, size, width, height int) (*UserImage, error) {
	if userID == "" || url == "" || publicID == "" {
		return nil, domain.ErrInvalidArgument
	}
	if typ == "" {
		typ = ImageTypeOther
	}
	return &UserImage{
		ID:           uuid.NewString(),
		UserID:       userID,
		URL:          url,
		PublicID:     publicID,
		OriginalName: originalName,
		Type:         typ,
		Size:         size,
		Width:        width,
		Height:       height,
		CreatedAt:    time.Now(),
	}, nil
}
