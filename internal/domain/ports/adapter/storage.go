package adapter

import (
	"context"
	"io"
)

// UploadedImage describes a stored image as reported by the storage backend.
type UploadedImage struct {
	URL      string
	PublicID string
	Bytes    int
	Width    int
	Height   int
}

// ImageStorage wraps the external image store (Cloudinary in production).
type ImageStorage interface {
	Upload(ctx context.Context, r io.Reader, publicID string) (*UploadedImage, error)
	Destroy(ctx context.Context, publicID string) error
	DestroyAll(ctx context.Context, publicIDs []string) error
}
