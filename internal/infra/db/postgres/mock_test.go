//go:build !integration

package postgres

import (
	"context"
	"time"

	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
	red "quiz-platform/internal/infra/redis"
)

// --- Mocks for Cache Decorator Tests ---

// mockInnerQuizRepo mocks the database repository that the Quiz decorator wraps.
type mockInnerQuizRepo struct {
	SaveFunc        func(ctx context.Context, tx repository.Tx, q *model.Quiz) error
	FindByIDFunc    func(ctx context.Context, tx repository.Tx, id string) (*model.Quiz, error)
	ListActiveFunc  func(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error)
	ListAllFunc     func(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error)
	DeleteFunc      func(ctx context.Context, tx repository.Tx, id string) error
	CountFunc       func(ctx context.Context, tx repository.Tx) (int, error)
	CountActiveFunc func(ctx context.Context, tx repository.Tx) (int, error)
}

func (m *mockInnerQuizRepo) Save(ctx context.Context, tx repository.Tx, q *model.Quiz) error {
	return m.SaveFunc(ctx, tx, q)
}
func (m *mockInnerQuizRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Quiz, error) {
	return m.FindByIDFunc(ctx, tx, id)
}
func (m *mockInnerQuizRepo) ListActive(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error) {
	return m.ListActiveFunc(ctx, tx)
}
func (m *mockInnerQuizRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error) {
	return m.ListAllFunc(ctx, tx)
}
func (m *mockInnerQuizRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	return m.DeleteFunc(ctx, tx, id)
}
func (m *mockInnerQuizRepo) Count(ctx context.Context, tx repository.Tx) (int, error) {
	return m.CountFunc(ctx, tx)
}
func (m *mockInnerQuizRepo) CountActive(ctx context.Context, tx repository.Tx) (int, error) {
	return m.CountActiveFunc(ctx, tx)
}

// mockRedisClient mocks our Redis client wrapper.
type mockRedisClient struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DelFunc    func(ctx context.Context, keys ...string) error
	PingFunc   func(ctx context.Context) error
	IncrFunc   func(ctx context.Context, key string) (int64, error)
	ExpireFunc func(ctx context.Context, key string, expiration time.Duration) error
	CloseFunc  func() error
}

var _ red.RedisClient = &mockRedisClient{}

func (m *mockRedisClient) Get(ctx context.Context, key string) (string, error) {
	return m.GetFunc(ctx, key)
}
func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if m.SetFunc == nil {
		return nil
	}
	return m.SetFunc(ctx, key, value, expiration)
}
func (m *mockRedisClient) Del(ctx context.Context, keys ...string) error {
	return m.DelFunc(ctx, keys...)
}
func (m *mockRedisClient) Ping(ctx context.Context) error { return m.PingFunc(ctx) }
func (m *mockRedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return m.IncrFunc(ctx, key)
}
func (m *mockRedisClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return m.ExpireFunc(ctx, key, expiration)
}
func (m *mockRedisClient) Close() error { return m.CloseFunc() }
