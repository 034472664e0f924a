package web

import (
	"net/http"
	"strconv"

	"quiz-platform/internal/domain/model"
)

func (s *Server) handleBossOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.bossUC.Overview(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleBossUsers(w http.ResponseWriter, r *http.Request) {
	analytics, err := s.bossUC.UserAnalytics(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

func (s *Server) handleBossQuizzes(w http.ResponseWriter, r *http.Request) {
	performance, err := s.bossUC.QuizAnalytics(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []*model.QuizPerformance `json:"data"`
	}{Data: performance})
}

func (s *Server) handleBossTopPerformers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	performers, err := s.bossUC.TopPerformers(r.Context(), limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []*model.TopPerformer `json:"data"`
	}{Data: performers})
}

func (s *Server) handleBossRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	activities, err := s.bossUC.RecentActivities(r.Context(), limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []*model.AttemptActivity `json:"data"`
	}{Data: activities})
}

func (s *Server) handleBossReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.bossUC.Report(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
