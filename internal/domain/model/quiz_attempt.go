package model

import (
	"time"

	"quiz-platform/internal/domain"

	"github.com/google/uuid"
)

type AttemptStatus string

const (
	AttemptStatusInProgress AttemptStatus = "in_progress"
	AttemptStatusCompleted  AttemptStatus = "completed"
	AttemptStatusAbandoned  AttemptStatus = "abandoned"
)

// QuizAttempt is one run of a quiz by one user.
type QuizAttempt struct {
	ID          string
	UserID      string
	QuizID      string
	Status      AttemptStatus
	Score       int
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewQuizAttempt(userID, quizID string) (*QuizAttempt, error) {
	if userID == "" || quizID == "" {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &QuizAttempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		QuizID:    quizID,
		Status:    AttemptStatusInProgress,
		StartedAt: &now,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AttemptHistoryEntry is an attempt joined with its quiz title for listings.
type AttemptHistoryEntry struct {
	ID          string        `json:"id"`
	QuizID      string        `json:"quiz_id"`
	QuizTitle   string        `json:"quiz_title"`
	Score       int           `json:"score"`
	Status      AttemptStatus `json:"status"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// QuizPerformance aggregates completed attempts per quiz.
type QuizPerformance struct {
	QuizID        string  `json:"quiz_id"`
	QuizTitle     string  `json:"quiz_title"`
	TotalAttempts int     `json:"total_attempts"`
	AverageScore  float64 `json:"average_score"`
	MaxScore      int     `json:"max_score"`
	MinScore      int     `json:"min_score"`
}

// TopPerformer ranks a student by average completed-attempt score.
type TopPerformer struct {
	Rank          int     `json:"rank"`
	UserID        string  `json:"user_id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	TotalAttempts int     `json:"total_attempts"`
	AverageScore  float64 `json:"average_score"`
	TotalScore    int     `json:"total_score"`
}

// AttemptActivity is a recent attempt joined with user and quiz for feeds.
type AttemptActivity struct {
	ID          string        `json:"id"`
	UserName    string        `json:"user_name"`
	UserEmail   string        `json:"user_email"`
	QuizTitle   string        `json:"quiz_title"`
	Score       int           `json:"score"`
	Status      AttemptStatus `json:"status"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
