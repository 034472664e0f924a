package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quiz-platform/internal/domain/model"
)

func (s *Server) handleQuizList(w http.ResponseWriter, r *http.Request) {
	quizzes, err := s.quizUC.ListActive(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []*model.Quiz `json:"data"`
	}{Data: quizzes})
}

func (s *Server) handleQuizGet(w http.ResponseWriter, r *http.Request) {
	quiz, questions, err := s.quizUC.GetQuiz(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Quiz      *model.Quiz                 `json:"quiz"`
		Questions []model.QuestionStudentView `json:"questions"`
	}{Quiz: quiz, Questions: questions})
}

func (s *Server) handleAttemptStart(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	attempt, questions, err := s.attemptUC.Start(r.Context(), user.ID, chi.URLParam(r, "quizID"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Attempt   *model.QuizAttempt          `json:"attempt"`
		Questions []model.QuestionStudentView `json:"questions"`
	}{Attempt: attempt, Questions: questions})
}

type answerRequest struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
}

// answerResponse confirms receipt without leaking the correct option; the
// grade shows up in the final score.
type answerResponse struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Recorded   bool   `json:"recorded"`
}

func (s *Server) handleAnswerSubmit(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	answer, err := s.attemptUC.SubmitAnswer(r.Context(), user.ID, chi.URLParam(r, "attemptID"), req.QuestionID, req.SelectedAnswer)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{ID: answer.ID, QuestionID: answer.QuestionID, Recorded: true})
}

func (s *Server) handleAttemptComplete(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	attempt, err := s.attemptUC.Complete(r.Context(), user.ID, chi.URLParam(r, "attemptID"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, attempt)
}

func (s *Server) handleAttemptAbandon(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	attempt, err := s.attemptUC.Abandon(r.Context(), user.ID, chi.URLParam(r, "attemptID"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, attempt)
}

func (s *Server) handleAttemptHistory(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	history, err := s.attemptUC.History(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []*model.AttemptHistoryEntry `json:"data"`
	}{Data: history})
}
