// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quiz-platform/internal/config"
	"quiz-platform/internal/domain/ports/adapter"
	payAdapters "quiz-platform/internal/infra/adapters/payment"
	storageAdapters "quiz-platform/internal/infra/adapters/storage"
	pg "quiz-platform/internal/infra/db/postgres"
	"quiz-platform/internal/infra/logging"
	"quiz-platform/internal/infra/metrics"
	red "quiz-platform/internal/infra/redis"
	"quiz-platform/internal/infra/sched"
	"quiz-platform/internal/infra/web"
	"quiz-platform/internal/usecase"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Warn().Msg("developer mode enabled; external providers are stubbed")
	}

	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Postgres ----
	pool, err := pg.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()
	if err := pg.Migrate(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}
	go pg.ReportPoolStats(ctx, pool, 15*time.Second)

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connect failed")
	}
	defer redisClient.Close()
	rateLimiter := red.NewRateLimiter(redisClient)

	// ---- Repositories ----
	txm := pg.NewTxManager(pool)
	userRepo := pg.NewUserRepo(pool)
	quizRepo := pg.NewQuizRepoCacheDecorator(pg.NewQuizRepo(pool), redisClient)
	questionRepo := pg.NewQuestionRepo(pool)
	attemptRepo := pg.NewAttemptRepo(pool)
	answerRepo := pg.NewAnswerRepo(pool)
	imageRepo := pg.NewImageRepo(pool)
	subRepo := pg.NewSubscriptionRepo(pool)
	trRepo := pg.NewTransactionRepo(pool)

	// ---- External adapters ----
	var gateway adapter.PaymentGateway
	var storage adapter.ImageStorage
	if cfg.Runtime.Dev {
		gateway = payAdapters.NewNoopPaymentGateway()
		storage = storageAdapters.NewNoopStorage()
	} else {
		gateway, err = payAdapters.NewPayPalGateway(
			cfg.Payment.PayPal.ClientID,
			cfg.Payment.PayPal.Secret,
			cfg.Payment.PayPal.ReturnURL,
			cfg.Payment.PayPal.CancelURL,
			cfg.Payment.PayPal.Sandbox,
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("paypal gateway init failed")
		}
		storage, err = storageAdapters.NewCloudinaryStorage(
			cfg.Storage.Cloudinary.CloudName,
			cfg.Storage.Cloudinary.APIKey,
			cfg.Storage.Cloudinary.APISecret,
			cfg.Storage.Cloudinary.Folder,
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("cloudinary init failed")
		}
	}

	// ---- Use cases ----
	authUC := usecase.NewAuthUseCase(userRepo, logger)
	quizUC := usecase.NewQuizUseCase(quizRepo, questionRepo, logger)
	attemptUC := usecase.NewAttemptUseCase(txm, attemptRepo, answerRepo, quizRepo, questionRepo, logger)
	studentUC := usecase.NewStudentUseCase(userRepo, imageRepo, attemptRepo, storage, logger)
	adminUC := usecase.NewAdminUseCase(userRepo, quizRepo, questionRepo, attemptRepo, logger)
	bossUC := usecase.NewBossUseCase(userRepo, quizRepo, attemptRepo, logger)
	paymentUC := usecase.NewPaymentUseCase(txm, trRepo, subRepo, gateway, logger)

	// ---- HTTP ----
	tokens := web.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	var oauth *web.OAuthService
	if cfg.OAuth.Google.ClientID != "" || cfg.OAuth.Github.ClientID != "" {
		oauth = web.NewOAuthService(cfg.OAuth)
	}
	server := web.NewServer(web.Deps{
		Tokens:    tokens,
		AuthUC:    authUC,
		PaymentUC: paymentUC,
		QuizUC:    quizUC,
		AttemptUC: attemptUC,
		StudentUC: studentUC,
		AdminUC:   adminUC,
		BossUC:    bossUC,
		OAuth:     oauth,
		Limiter:   rateLimiter,
		Logger:    logger,
	})

	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", apiSrv.Addr).Msg("api listening")
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("api server stopped")
			stop()
		}
	}()

	// ---- Ops endpoint (metrics + health) ----
	var opsSrv *http.Server
	if cfg.Admin.Port > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		opsSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Admin.Port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info().Str("addr", opsSrv.Addr).Msg("ops listening")
			if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("ops server stopped")
			}
		}()
	}

	// ---- Expiry worker ----
	worker := sched.NewExpiryWorker(cfg.Scheduler.ExpiryCheckInterval, subRepo, logger)
	go func() { _ = worker.Run(ctx) }()

	<-ctx.Done()
	logger.Info().Msg("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("api shutdown failed")
	}
	if opsSrv != nil {
		_ = opsSrv.Shutdown(shutdownCtx)
	}
}
