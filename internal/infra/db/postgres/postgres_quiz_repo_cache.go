package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
	"quiz-platform/internal/infra/metrics"
	red "quiz-platform/internal/infra/redis"
)

var _ repository.QuizRepository = (*quizRepoCacheDecorator)(nil)

const activeQuizzesKey = "quizzes:active"

type quizRepoCacheDecorator struct {
	inner repository.QuizRepository
	cache red.RedisClient
	ttl   time.Duration
}

func NewQuizRepoCacheDecorator(inner repository.QuizRepository, cache red.RedisClient) repository.QuizRepository {
	return &quizRepoCacheDecorator{
		inner: inner,
		cache: cache,
		ttl:   10 * time.Minute,
	}
}

func (d *quizRepoCacheDecorator) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Quiz, error) {
	key := fmt.Sprintf("quiz:%s", id)
	val, err := d.cache.Get(ctx, key)
	if err == nil {
		metrics.IncCacheRequest("quiz", "hit")
		var quiz model.Quiz
		if json.Unmarshal([]byte(val), &quiz) == nil {
			return &quiz, nil
		}
	}
	// Misses and cache errors both fall through to the database; a broken
	// cache must not break reads.
	metrics.IncCacheRequest("quiz", "miss")
	quiz, err := d.inner.FindByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if quiz != nil {
		bytes, _ := json.Marshal(quiz)
		d.cache.Set(ctx, key, bytes, d.ttl)
	}
	return quiz, nil
}

func (d *quizRepoCacheDecorator) ListActive(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error) {
	val, err := d.cache.Get(ctx, activeQuizzesKey)
	if err == nil {
		metrics.IncCacheRequest("quiz_list", "hit")
		var quizzes []*model.Quiz
		if json.Unmarshal([]byte(val), &quizzes) == nil {
			return quizzes, nil
		}
	}

	metrics.IncCacheRequest("quiz_list", "miss")
	quizzes, err := d.inner.ListActive(ctx, tx)
	if err != nil {
		return nil, err
	}
	if len(quizzes) > 0 {
		bytes, _ := json.Marshal(quizzes)
		d.cache.Set(ctx, activeQuizzesKey, bytes, d.ttl)
	}
	return quizzes, nil
}

// Write operations invalidate the affected keys.
func (d *quizRepoCacheDecorator) Save(ctx context.Context, tx repository.Tx, q *model.Quiz) error {
	d.cache.Del(ctx, fmt.Sprintf("quiz:%s", q.ID))
	d.cache.Del(ctx, activeQuizzesKey)
	return d.inner.Save(ctx, tx, q)
}

func (d *quizRepoCacheDecorator) Delete(ctx context.Context, tx repository.Tx, id string) error {
	d.cache.Del(ctx, fmt.Sprintf("quiz:%s", id))
	d.cache.Del(ctx, activeQuizzesKey)
	return d.inner.Delete(ctx, tx, id)
}

// Admin-facing reads bypass the cache.
func (d *quizRepoCacheDecorator) ListAll(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error) {
	return d.inner.ListAll(ctx, tx)
}

func (d *quizRepoCacheDecorator) Count(ctx context.Context, tx repository.Tx) (int, error) {
	return d.inner.Count(ctx, tx)
}

func (d *quizRepoCacheDecorator) CountActive(ctx context.Context, tx repository.Tx) (int, error) {
	return d.inner.CountActive(ctx, tx)
}
