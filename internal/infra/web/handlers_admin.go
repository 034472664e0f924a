package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/usecase"
)

func (s *Server) handleAdminUserList(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := s.adminUC.Users(r.Context(), offset, limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, publicUser(u))
	}
	writeJSON(w, http.StatusOK, struct {
		Data   []userResponse `json:"data"`
		Offset int            `json:"offset"`
		Limit  int            `json:"limit"`
	}{Data: out, Offset: offset, Limit: limit})
}

func (s *Server) handleAdminUserGet(w http.ResponseWriter, r *http.Request) {
	user, err := s.adminUC.User(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, publicUser(user))
}

type roleUpdateRequest struct {
	Role string `json:"role"`
}

func (s *Server) handleAdminRoleUpdate(w http.ResponseWriter, r *http.Request) {
	var req roleUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := s.adminUC.UpdateRole(r.Context(), chi.URLParam(r, "userID"), model.UserRole(req.Role))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, publicUser(user))
}

func (s *Server) handleAdminToggleActive(w http.ResponseWriter, r *http.Request) {
	user, err := s.adminUC.ToggleActive(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, publicUser(user))
}

func (s *Server) handleAdminQuizList(w http.ResponseWriter, r *http.Request) {
	quizzes, err := s.adminUC.QuizzesWithQuestions(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []usecase.QuizWithQuestions `json:"data"`
	}{Data: quizzes})
}

type quizCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	TotalPoints int    `json:"total_points"`
}

func (s *Server) handleAdminQuizCreate(w http.ResponseWriter, r *http.Request) {
	var req quizCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	quiz, err := s.quizUC.CreateQuiz(r.Context(), req.Title, req.Description, req.Duration, req.TotalPoints)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, quiz)
}

type quizUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	TotalPoints *int    `json:"total_points,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (s *Server) handleAdminQuizUpdate(w http.ResponseWriter, r *http.Request) {
	var req quizUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	quiz, err := s.quizUC.UpdateQuiz(r.Context(), chi.URLParam(r, "quizID"), usecase.QuizUpdate{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		TotalPoints: req.TotalPoints,
		IsActive:    req.IsActive,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (s *Server) handleAdminQuizDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.quizUC.DeleteQuiz(r.Context(), chi.URLParam(r, "quizID")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type questionCreateRequest struct {
	Text          string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Points        int      `json:"points"`
}

func (s *Server) handleAdminQuestionCreate(w http.ResponseWriter, r *http.Request) {
	var req questionCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	question, err := s.quizUC.AddQuestion(r.Context(), chi.URLParam(r, "quizID"), req.Text, req.Options, req.CorrectAnswer, req.Points)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, question)
}

func (s *Server) handleAdminQuestionDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.quizUC.DeleteQuestion(r.Context(), chi.URLParam(r, "questionID")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.adminUC.Stats(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
