// File: internal/infra/adapters/storage/cloudinary.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"quiz-platform/internal/domain/ports/adapter"
)

var _ adapter.ImageStorage = (*CloudinaryStorage)(nil)

// CloudinaryStorage implements adapter.ImageStorage on the Cloudinary upload API.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials empty")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, r io.Reader, publicID string) (*adapter.UploadedImage, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID: publicID,
		Folder:   s.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.SecureURL == "" {
		return nil, errors.New("cloudinary upload: empty secure url")
	}
	return &adapter.UploadedImage{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Bytes:    resp.Bytes,
		Width:    resp.Width,
		Height:   resp.Height,
	}, nil
}

func (s *CloudinaryStorage) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	return nil
}

// DestroyAll removes a batch of images, keeping going past individual failures
// and reporting the first error.
func (s *CloudinaryStorage) DestroyAll(ctx context.Context, publicIDs []string) error {
	var firstErr error
	for _, id := range publicIDs {
		if err := s.Destroy(ctx, id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
