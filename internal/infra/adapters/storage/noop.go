package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"quiz-platform/internal/domain/ports/adapter"
)

var _ adapter.ImageStorage = (*NoopStorage)(nil)

// NoopStorage keeps uploads in memory. Used in dev mode and tests.
type NoopStorage struct {
	mu     sync.Mutex
	stored map[string]int // public id -> size
}

func NewNoopStorage() *NoopStorage {
	return &NoopStorage{stored: make(map[string]int)}
}

func (s *NoopStorage) Upload(ctx context.Context, r io.Reader, publicID string) (*adapter.UploadedImage, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.stored[publicID] = len(b)
	s.mu.Unlock()
	return &adapter.UploadedImage{
		URL:      "https://example.test/images/" + publicID,
		PublicID: publicID,
		Bytes:    len(b),
	}, nil
}

func (s *NoopStorage) Destroy(ctx context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stored[publicID]; !ok {
		return fmt.Errorf("noop: image %s not found", publicID)
	}
	delete(s.stored, publicID)
	return nil
}

func (s *NoopStorage) DestroyAll(ctx context.Context, publicIDs []string) error {
	for _, id := range publicIDs {
		if err := s.Destroy(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
