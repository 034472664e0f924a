package model

import (
	"time"

	"quiz-platform/internal/domain"

	"github.com/google/uuid"
)

// Quiz groups questions under a title with a time limit in minutes.
type Quiz struct {
	ID          string
	Title       string
	Description string
	Duration    int // minutes
	TotalPoints int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewQuiz(title, description string, duration, totalPoints int) (*Quiz, error) {
	if title == "" {
		return nil, domain.ErrInvalidArgument
	}
	if duration <= 0 {
		duration = 30
	}
	if totalPoints <= 0 {
		totalPoints = 100
	}
	now := time.Now()
	return &Quiz{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Duration:    duration,
		TotalPoints: totalPoints,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
