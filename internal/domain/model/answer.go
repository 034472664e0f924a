package model

import (
	"time"

	"quiz-platform/internal/domain"

	"github.com/google/uuid"
)

// Answer is one graded response inside an attempt.
type Answer struct {
	ID             string
	AttemptID      string
	QuestionID     string
	SelectedAnswer string
	IsCorrect      bool
	PointsEarned   int
	CreatedAt      time.Time
}

func NewAnswer(attemptID string, question *Question, selected string) (*Answer, error) {
	if attemptID == "" || question == nil || selected == "" {
		return nil, domain.ErrInvalidArgument
	}
	correct, points := question.Grade(selected)
	return &Answer{
		ID:             uuid.NewString(),
		AttemptID:      attemptID,
		QuestionID:     question.ID,
		SelectedAnswer: selected,
		IsCorrect:      correct,
		PointsEarned:   points,
		CreatedAt:      time.Now(),
	}, nil
}
