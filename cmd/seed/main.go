package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"quiz-platform/internal/config"
	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
	pg "quiz-platform/internal/infra/db/postgres"
)

// Seeds the staff accounts and one sample quiz so a fresh deployment is
// immediately usable. Safe to run repeatedly.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pg.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := pg.NewUserRepo(pool)
	quizRepo := pg.NewQuizRepo(pool)
	questionRepo := pg.NewQuestionRepo(pool)

	staff := []struct {
		email    string
		name     string
		role     model.UserRole
		password string
	}{
		{"admin@quiz.local", "Platform Admin", model.RoleAdmin, "admin-change-me"},
		{"boss@quiz.local", "Platform Owner", model.RoleBoss, "boss-change-me"},
	}
	for _, s := range staff {
		if _, err := userRepo.FindByEmail(ctx, repository.NoTX, s.email); err == nil {
			fmt.Printf("%s already present. No changes.\n", s.email)
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			log.Fatalf("lookup %s: %v", s.email, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user, err := model.NewUser("", s.email, string(hash), s.name, s.role)
		if err != nil {
			log.Fatalf("build user %s: %v", s.email, err)
		}
		if err := userRepo.Save(ctx, repository.NoTX, user); err != nil {
			log.Fatalf("save user %s: %v", s.email, err)
		}
		fmt.Printf("seeded: %s (%s)\n", s.email, s.role)
	}

	quizzes, err := quizRepo.ListAll(ctx, repository.NoTX)
	if err != nil {
		log.Fatalf("list quizzes: %v", err)
	}
	if len(quizzes) > 0 {
		fmt.Printf("%d quizzes already present. No changes.\n", len(quizzes))
		return
	}

	quiz, err := model.NewQuiz("Go Fundamentals", "Warm-up quiz covering Go basics", 20, 30)
	if err != nil {
		log.Fatalf("build quiz: %v", err)
	}
	if err := quizRepo.Save(ctx, repository.NoTX, quiz); err != nil {
		log.Fatalf("save quiz: %v", err)
	}

	questions := []struct {
		text    string
		options []string
		correct string
	}{
		{
			"Which keyword starts a new goroutine?",
			[]string{"go", "async", "spawn", "thread"},
			"go",
		},
		{
			"What is the zero value of a pointer?",
			[]string{"nil", "0", "undefined", "empty struct"},
			"nil",
		},
		{
			"Which builtin grows a slice?",
			[]string{"append", "push", "add", "extend"},
			"append",
		},
	}
	for _, q := range questions {
		question, err := model.NewQuestion(quiz.ID, q.text, q.options, q.correct, 10)
		if err != nil {
			log.Fatalf("build question: %v", err)
		}
		if err := questionRepo.Save(ctx, repository.NoTX, question); err != nil {
			log.Fatalf("save question: %v", err)
		}
	}

	fmt.Printf("seeded: %q with %d questions\n", quiz.Title, len(questions))
	fmt.Println("Seeding complete.")
}
