package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/infra/redis"
	"quiz-platform/internal/usecase"
)

// Deps collects everything the HTTP surface needs.
type Deps struct {
	Tokens    *TokenManager
	AuthUC    usecase.AuthUseCase
	PaymentUC usecase.PaymentUseCase
	QuizUC    *usecase.QuizUseCase
	AttemptUC *usecase.AttemptUseCase
	StudentUC *usecase.StudentUseCase
	AdminUC   *usecase.AdminUseCase
	BossUC    *usecase.BossUseCase
	OAuth     *OAuthService       // nil disables the provider routes
	Limiter   *redis.RateLimiter  // nil disables rate limiting
	Logger    *zerolog.Logger
}

type Server struct {
	tokens    *TokenManager
	authUC    usecase.AuthUseCase
	paymentUC usecase.PaymentUseCase
	quizUC    *usecase.QuizUseCase
	attemptUC *usecase.AttemptUseCase
	studentUC *usecase.StudentUseCase
	adminUC   *usecase.AdminUseCase
	bossUC    *usecase.BossUseCase
	oauth     *OAuthService
	limiter   *redis.RateLimiter

	log *zerolog.Logger
}

func NewServer(d Deps) *Server {
	return &Server{
		tokens:    d.Tokens,
		authUC:    d.AuthUC,
		paymentUC: d.PaymentUC,
		quizUC:    d.QuizUC,
		attemptUC: d.AttemptUC,
		studentUC: d.StudentUC,
		adminUC:   d.AdminUC,
		bossUC:    d.BossUC,
		oauth:     d.OAuth,
		limiter:   d.Limiter,
		log:       d.Logger,
	}
}

// Router assembles the public API surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(TraceID(), RequestLog(s.log), Recover(s.log), Timeout(30*time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if s.limiter != nil {
					r.Use(RateLimit(s.limiter, "auth", 10, time.Minute, s.log))
				}
				r.Post("/register", s.handleRegister)
				r.Post("/login", s.handleLogin)
			})
			if s.oauth != nil {
				r.Get("/{provider}", s.handleOAuthBegin)
				r.Get("/{provider}/callback", s.handleOAuthCallback)
			}
			r.Group(func(r chi.Router) {
				r.Use(s.Authenticated)
				r.Get("/me", s.handleMe)
			})
		})

		r.Get("/plans", s.handlePlans)

		// Payment landing pages hit by the provider redirect; the payer's
		// browser carries no bearer token here.
		r.Get("/payment/success", s.handlePaymentSuccess)
		r.Get("/payment/cancel", s.handlePaymentCancel)

		r.Group(func(r chi.Router) {
			r.Use(s.Authenticated)

			r.Route("/quizzes", func(r chi.Router) {
				r.Get("/", s.handleQuizList)
				r.Get("/{quizID}", s.handleQuizGet)
				r.Post("/{quizID}/attempts", s.handleAttemptStart)
			})

			r.Route("/attempts", func(r chi.Router) {
				r.Get("/", s.handleAttemptHistory)
				r.Post("/{attemptID}/answers", s.handleAnswerSubmit)
				r.Post("/{attemptID}/complete", s.handleAttemptComplete)
				r.Post("/{attemptID}/abandon", s.handleAttemptAbandon)
			})

			r.Route("/student", func(r chi.Router) {
				r.Get("/profile", s.handleProfileGet)
				r.Put("/profile", s.handleProfileUpdate)
				r.Get("/history", s.handleStudentHistory)
				r.Post("/avatar", s.handleAvatarUpload)
				r.Route("/images", func(r chi.Router) {
					r.Get("/", s.handleImageList)
					r.Post("/", s.handleImageUpload)
					r.Delete("/", s.handleImageDelete)
				})
			})

			r.Route("/payment", func(r chi.Router) {
				r.Post("/orders", s.handleOrderCreate)
				r.Post("/orders/{orderID}/capture", s.handleOrderCapture)
				r.Get("/subscription", s.handleSubscriptionGet)
				r.Get("/transactions", s.handleTransactionList)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(s.RequireRole(model.RoleAdmin, model.RoleBoss))
				r.Get("/users", s.handleAdminUserList)
				r.Get("/users/{userID}", s.handleAdminUserGet)
				r.Put("/users/{userID}/role", s.handleAdminRoleUpdate)
				r.Put("/users/{userID}/active", s.handleAdminToggleActive)
				r.Get("/quizzes", s.handleAdminQuizList)
				r.Post("/quizzes", s.handleAdminQuizCreate)
				r.Put("/quizzes/{quizID}", s.handleAdminQuizUpdate)
				r.Delete("/quizzes/{quizID}", s.handleAdminQuizDelete)
				r.Post("/quizzes/{quizID}/questions", s.handleAdminQuestionCreate)
				r.Delete("/questions/{questionID}", s.handleAdminQuestionDelete)
				r.Get("/stats", s.handleAdminStats)
			})

			r.Route("/boss", func(r chi.Router) {
				r.Use(s.RequireRole(model.RoleBoss))
				r.Get("/overview", s.handleBossOverview)
				r.Get("/users", s.handleBossUsers)
				r.Get("/quizzes", s.handleBossQuizzes)
				r.Get("/top-performers", s.handleBossTopPerformers)
				r.Get("/recent", s.handleBossRecent)
				r.Get("/report", s.handleBossReport)
			})
		})
	})

	return r
}
