package model

import (
	"time"

	"quiz-platform/internal/domain"

	"github.com/google/uuid"
)

// Question belongs to one quiz. CorrectAnswer must never reach student-facing
// responses; StudentView strips it.
type Question struct {
	ID            string
	QuizID        string
	Text          string
	Options       []string
	CorrectAnswer string
	Points        int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewQuestion(quizID, text string, options []string, correctAnswer string, points int) (*Question, error) {
	if quizID == "" || text == "" || len(options) < 2 || correctAnswer == "" {
		return nil, domain.ErrInvalidArgument
	}
	found := false
	for _, o := range options {
		if o == correctAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrInvalidArgument
	}
	if points <= 0 {
		points = 10
	}
	now := time.Now()
	return &Question{
		ID:            uuid.NewString(),
		QuizID:        quizID,
		Text:          text,
		Options:       options,
		CorrectAnswer: correctAnswer,
		Points:        points,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Grade scores a selected option against the correct answer.
func (q *Question) Grade(selected string) (correct bool, points int) {
	if selected == q.CorrectAnswer {
		return true, q.Points
	}
	return false, 0
}

// QuestionStudentView is a question as shown to students, without the answer.
type QuestionStudentView struct {
	ID      string   `json:"id"`
	Text    string   `json:"question_text"`
	Options []string `json:"options"`
	Points  int      `json:"points"`
}

func (q *Question) StudentView() QuestionStudentView {
	return QuestionStudentView{ID: q.ID, Text: q.Text, Options: q.Options, Points: q.Points}
}
