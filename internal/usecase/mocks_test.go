//go:build !integration

package usecase_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/adapter"
	"quiz-platform/internal/domain/ports/repository"
)

// newTestLogger creates a silent zerolog.Logger so test output stays clean.
func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

// ---- Mock TxManager ----

type MockTxManager struct {
	WithTxFunc func(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error
}

var _ repository.TransactionManager = (*MockTxManager)(nil)

// WithTx runs the function immediately with NoTX unless a custom WithTxFunc is
// installed by the test.
func (m *MockTxManager) WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, txOpt, fn)
	}
	return fn(ctx, repository.NoTX)
}

// ---- In-memory UserRepository ----

type MockUserRepo struct {
	mu      sync.RWMutex
	store   map[string]*model.User // by ID
	SaveErr error
}

var _ repository.UserRepository = (*MockUserRepo)(nil)

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{store: make(map[string]*model.User)}
}

func (m *MockUserRepo) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.store {
		if other.Email == u.Email && other.ID != u.ID {
			return domain.ErrAlreadyExists
		}
	}
	cp := *u
	m.store[u.ID] = &cp
	return nil
}

func (m *MockUserRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepo) FindForOAuth(ctx context.Context, tx repository.Tx, googleID, githubID, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.store {
		if googleID != "" && u.GoogleID == googleID {
			cp := *u
			return &cp, nil
		}
		if githubID != "" && u.GithubID == githubID {
			cp := *u
			return &cp, nil
		}
	}
	for _, u := range m.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepo) List(ctx context.Context, tx repository.Tx, offset, limit int) ([]*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.User, 0, len(m.store))
	for _, u := range m.store {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockUserRepo) CountUsers(ctx context.Context, tx repository.Tx) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store), nil
}

func (m *MockUserRepo) CountActive(ctx context.Context, tx repository.Tx, active bool) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, u := range m.store {
		if u.IsActive == active {
			n++
		}
	}
	return n, nil
}

func (m *MockUserRepo) CountByRole(ctx context.Context, tx repository.Tx) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int)
	for _, u := range m.store {
		out[string(u.Role)]++
	}
	return out, nil
}

// ---- In-memory QuizRepository ----

type MockQuizRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Quiz
}

var _ repository.QuizRepository = (*MockQuizRepo)(nil)

func NewMockQuizRepo() *MockQuizRepo {
	return &MockQuizRepo{store: make(map[string]*model.Quiz)}
}

func (m *MockQuizRepo) Save(ctx context.Context, tx repository.Tx, q *model.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *q
	m.store[q.ID] = &cp
	return nil
}

func (m *MockQuizRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (m *MockQuizRepo) ListActive(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.Quiz
	for _, q := range m.store {
		if q.IsActive {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockQuizRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Quiz, 0, len(m.store))
	for _, q := range m.store {
		cp := *q
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockQuizRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *MockQuizRepo) Count(ctx context.Context, tx repository.Tx) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store), nil
}

func (m *MockQuizRepo) CountActive(ctx context.Context, tx repository.Tx) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, q := range m.store {
		if q.IsActive {
			n++
		}
	}
	return n, nil
}

// ---- In-memory QuestionRepository ----

type MockQuestionRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Question
}

var _ repository.QuestionRepository = (*MockQuestionRepo)(nil)

func NewMockQuestionRepo() *MockQuestionRepo {
	return &MockQuestionRepo{store: make(map[string]*model.Question)}
}

func (m *MockQuestionRepo) Save(ctx context.Context, tx repository.Tx, q *model.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *q
	m.store[q.ID] = &cp
	return nil
}

func (m *MockQuestionRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (m *MockQuestionRepo) ListByQuiz(ctx context.Context, tx repository.Tx, quizID string) ([]*model.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.Question
	for _, q := range m.store {
		if q.QuizID == quizID {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockQuestionRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

// ---- In-memory AttemptRepository ----

type MockAttemptRepo struct {
	mu    sync.RWMutex
	store map[string]*model.QuizAttempt

	TopPerformersFunc func(ctx context.Context, tx repository.Tx, limit int) ([]*model.TopPerformer, error)
	RecentFunc        func(ctx context.Context, tx repository.Tx, limit int) ([]*model.AttemptActivity, error)
}

var _ repository.AttemptRepository = (*MockAttemptRepo)(nil)

func NewMockAttemptRepo() *MockAttemptRepo {
	return &MockAttemptRepo{store: make(map[string]*model.QuizAttempt)}
}

func (m *MockAttemptRepo) Save(ctx context.Context, tx repository.Tx, a *model.QuizAttempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.store[a.ID] = &cp
	return nil
}

func (m *MockAttemptRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.QuizAttempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *MockAttemptRepo) HistoryByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.AttemptHistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.AttemptHistoryEntry
	for _, a := range m.store {
		if a.UserID == userID {
			out = append(out, &model.AttemptHistoryEntry{
				ID:          a.ID,
				QuizID:      a.QuizID,
				Score:       a.Score,
				Status:      a.Status,
				StartedAt:   a.StartedAt,
				CompletedAt: a.CompletedAt,
			})
		}
	}
	return out, nil
}

func (m *MockAttemptRepo) Count(ctx context.Context, tx repository.Tx) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store), nil
}

func (m *MockAttemptRepo) CountCompleted(ctx context.Context, tx repository.Tx) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, a := range m.store {
		if a.Status == model.AttemptStatusCompleted {
			n++
		}
	}
	return n, nil
}

func (m *MockAttemptRepo) AverageScore(ctx context.Context, tx repository.Tx) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum, n := 0, 0
	for _, a := range m.store {
		if a.Status == model.AttemptStatusCompleted {
			sum += a.Score
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

func (m *MockAttemptRepo) QuizPerformance(ctx context.Context, tx repository.Tx) ([]*model.QuizPerformance, error) {
	return nil, nil
}

func (m *MockAttemptRepo) TopPerformers(ctx context.Context, tx repository.Tx, limit int) ([]*model.TopPerformer, error) {
	if m.TopPerformersFunc != nil {
		return m.TopPerformersFunc(ctx, tx, limit)
	}
	return nil, nil
}

func (m *MockAttemptRepo) Recent(ctx context.Context, tx repository.Tx, limit int) ([]*model.AttemptActivity, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, tx, limit)
	}
	return nil, nil
}

// ---- In-memory AnswerRepository ----

type MockAnswerRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Answer // by attemptID+questionID
}

var _ repository.AnswerRepository = (*MockAnswerRepo)(nil)

func NewMockAnswerRepo() *MockAnswerRepo {
	return &MockAnswerRepo{store: make(map[string]*model.Answer)}
}

func (m *MockAnswerRepo) Save(ctx context.Context, tx repository.Tx, a *model.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.store[a.AttemptID+"/"+a.QuestionID] = &cp
	return nil
}

func (m *MockAnswerRepo) ListByAttempt(ctx context.Context, tx repository.Tx, attemptID string) ([]*model.Answer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.Answer
	for _, a := range m.store {
		if a.AttemptID == attemptID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockAnswerRepo) SumPoints(ctx context.Context, tx repository.Tx, attemptID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := 0
	for _, a := range m.store {
		if a.AttemptID == attemptID {
			sum += a.PointsEarned
		}
	}
	return sum, nil
}

// ---- In-memory ImageRepository ----

type MockImageRepo struct {
	mu    sync.RWMutex
	store map[string]*model.UserImage
}

var _ repository.ImageRepository = (*MockImageRepo)(nil)

func NewMockImageRepo() *MockImageRepo {
	return &MockImageRepo{store: make(map[string]*model.UserImage)}
}

func (m *MockImageRepo) Save(ctx context.Context, tx repository.Tx, img *model.UserImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *img
	m.store[img.ID] = &cp
	return nil
}

func (m *MockImageRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.UserImage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.UserImage
	for _, img := range m.store {
		if img.UserID == userID {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockImageRepo) FindOwned(ctx context.Context, tx repository.Tx, userID string, ids []string) ([]*model.UserImage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.UserImage
	for _, id := range ids {
		if img, ok := m.store[id]; ok && img.UserID == userID {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockImageRepo) Delete(ctx context.Context, tx repository.Tx, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.store, id)
	}
	return nil
}

func (m *MockImageRepo) CountByUser(ctx context.Context, tx repository.Tx, userID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, img := range m.store {
		if img.UserID == userID {
			n++
		}
	}
	return n, nil
}

// ---- In-memory SubscriptionRepository ----

type MockSubscriptionRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Subscription

	ExpireIfDueFunc func(ctx context.Context, tx repository.Tx, id string) (bool, error)
}

var _ repository.SubscriptionRepository = (*MockSubscriptionRepo)(nil)

func NewMockSubscriptionRepo() *MockSubscriptionRepo {
	return &MockSubscriptionRepo{store: make(map[string]*model.Subscription)}
}

func (m *MockSubscriptionRepo) Save(ctx context.Context, tx repository.Tx, s *model.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.Status == model.SubscriptionStatusActive {
		for _, other := range m.store {
			if other.UserID == s.UserID && other.ID != s.ID && other.Status == model.SubscriptionStatusActive {
				return domain.ErrConflict
			}
		}
	}
	cp := *s
	m.store[s.ID] = &cp
	return nil
}

func (m *MockSubscriptionRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MockSubscriptionRepo) FindActiveByUser(ctx context.Context, tx repository.Tx, userID string) (*model.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.store {
		if s.UserID == userID && s.Status == model.SubscriptionStatusActive {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockSubscriptionRepo) FindLatestByUser(ctx context.Context, tx repository.Tx, userID string) (*model.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest *model.Subscription
	for _, s := range m.store {
		if s.UserID != userID {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (m *MockSubscriptionRepo) ExpireIfDue(ctx context.Context, tx repository.Tx, id string) (bool, error) {
	if m.ExpireIfDueFunc != nil {
		return m.ExpireIfDueFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[id]
	if !ok || s.Status != model.SubscriptionStatusActive || !s.Overdue(time.Now()) {
		return false, nil
	}
	s.Status = model.SubscriptionStatusExpired
	return true, nil
}

func (m *MockSubscriptionRepo) FinishOverdue(ctx context.Context, tx repository.Tx) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.store {
		if s.Status == model.SubscriptionStatusActive && s.Overdue(time.Now()) {
			s.Status = model.SubscriptionStatusExpired
			n++
		}
	}
	return n, nil
}

func (m *MockSubscriptionRepo) CountByStatus(ctx context.Context, tx repository.Tx) (map[model.SubscriptionStatus]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[model.SubscriptionStatus]int)
	for _, s := range m.store {
		counts[s.Status]++
	}
	return counts, nil
}

// ---- In-memory TransactionRepository ----

type MockTransactionRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Transaction

	SaveFunc            func(ctx context.Context, tx repository.Tx, t *model.Transaction) error
	CompletePendingFunc func(ctx context.Context, tx repository.Tx, id string, upd repository.CaptureUpdate) (bool, error)
}

var _ repository.TransactionRepository = (*MockTransactionRepo)(nil)

func NewMockTransactionRepo() *MockTransactionRepo {
	return &MockTransactionRepo{store: make(map[string]*model.Transaction)}
}

func (m *MockTransactionRepo) Save(ctx context.Context, tx repository.Tx, t *model.Transaction) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.store {
		if other.PayPalOrderID == t.PayPalOrderID && other.ID != t.ID {
			return domain.ErrAlreadyExists
		}
	}
	cp := *t
	m.store[t.ID] = &cp
	return nil
}

func (m *MockTransactionRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *MockTransactionRepo) FindByOrderAndUser(ctx context.Context, tx repository.Tx, orderID, userID string) (*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.store {
		if t.PayPalOrderID == orderID && t.UserID == userID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockTransactionRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.Transaction
	for _, t := range m.store {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockTransactionRepo) CompletePending(ctx context.Context, tx repository.Tx, id string, upd repository.CaptureUpdate) (bool, error) {
	if m.CompletePendingFunc != nil {
		return m.CompletePendingFunc(ctx, tx, id, upd)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.store[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if t.Status != model.TransactionStatusPending {
		return false, nil
	}
	t.Status = model.TransactionStatusCompleted
	t.PayPalCaptureID = upd.CaptureID
	t.PayerID = upd.PayerID
	t.PayerEmail = upd.PayerEmail
	t.PayerName = upd.PayerName
	t.PayPalResponse = upd.Raw
	completed := upd.CompletedAt
	t.CompletedAt = &completed
	return true, nil
}

func (m *MockTransactionRepo) MarkFailed(ctx context.Context, tx repository.Tx, id, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.store[id]
	if !ok {
		return domain.ErrNotFound
	}
	if t.Status != model.TransactionStatusPending {
		return nil
	}
	t.Status = model.TransactionStatusFailed
	t.ErrorMessage = errorMessage
	return nil
}

func (m *MockTransactionRepo) LinkSubscription(ctx context.Context, tx repository.Tx, id, subscriptionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.store[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.SubscriptionID = &subscriptionID
	return nil
}

// ---- Mock PaymentGateway ----

type MockPaymentGateway struct {
	orderSeq int64

	CreateOrderFunc  func(ctx context.Context, amountCents int64, currency, description string) (*adapter.CreatedOrder, error)
	CaptureOrderFunc func(ctx context.Context, orderID string) (*adapter.CaptureResult, error)
}

var _ adapter.PaymentGateway = (*MockPaymentGateway)(nil)

func (m *MockPaymentGateway) Name() string { return "mock" }

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amountCents int64, currency, description string) (*adapter.CreatedOrder, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, amountCents, currency, description)
	}
	id := fmt.Sprintf("ORDER-%d", atomic.AddInt64(&m.orderSeq, 1))
	return &adapter.CreatedOrder{OrderID: id, ApproveURL: "https://pay.example.com/approve/" + id}, nil
}

func (m *MockPaymentGateway) CaptureOrder(ctx context.Context, orderID string) (*adapter.CaptureResult, error) {
	if m.CaptureOrderFunc != nil {
		return m.CaptureOrderFunc(ctx, orderID)
	}
	return &adapter.CaptureResult{
		CaptureID:  "CAP-" + orderID,
		PayerID:    "PAYER-1",
		PayerEmail: "payer@example.com",
		PayerName:  "Test Payer",
		Currency:   "USD",
		Raw:        []byte(`{"status":"COMPLETED"}`),
	}, nil
}

// ---- Mock ImageStorage ----

type MockImageStorage struct {
	mu     sync.Mutex
	stored map[string]bool // publicID -> present

	UploadFunc func(ctx context.Context, r io.Reader, publicID string) (*adapter.UploadedImage, error)
}

var _ adapter.ImageStorage = (*MockImageStorage)(nil)

func NewMockImageStorage() *MockImageStorage {
	return &MockImageStorage{stored: make(map[string]bool)}
}

func (m *MockImageStorage) Upload(ctx context.Context, r io.Reader, publicID string) (*adapter.UploadedImage, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, r, publicID)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.stored[publicID] = true
	m.mu.Unlock()
	return &adapter.UploadedImage{
		URL:      "https://img.example.com/" + publicID,
		PublicID: publicID,
		Bytes:    len(data),
		Width:    64,
		Height:   64,
	}, nil
}

func (m *MockImageStorage) Destroy(ctx context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stored, publicID)
	return nil
}

func (m *MockImageStorage) DestroyAll(ctx context.Context, publicIDs []string) error {
	for _, id := range publicIDs {
		_ = m.Destroy(ctx, id)
	}
	return nil
}

func (m *MockImageStorage) Stored() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stored)
}
