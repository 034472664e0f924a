//go:build !integration

package model_test

import (
	"errors"
	"testing"
	"time"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
)

func TestNewUser(t *testing.T) {
	t.Run("should default to the student role", func(t *testing.T) {
		u, err := model.NewUser("", "a@example.com", "hash", "A", "")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if u.Role != model.RoleUser {
			t.Errorf("expected the user role, got %s", u.Role)
		}
		if u.ID == "" {
			t.Error("expected a generated id")
		}
		if !u.IsActive {
			t.Error("expected a new account to be active")
		}
	})

	t.Run("should reject an invalid role", func(t *testing.T) {
		_, err := model.NewUser("", "a@example.com", "hash", "A", model.UserRole("root"))
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("should require email and name", func(t *testing.T) {
		if _, err := model.NewUser("", "", "hash", "A", model.RoleUser); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for empty email, got %v", err)
		}
		if _, err := model.NewUser("", "a@example.com", "hash", "", model.RoleUser); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for empty name, got %v", err)
		}
	})
}

func TestPlanCatalog(t *testing.T) {
	expected := map[model.PlanName]int64{
		model.PlanFree:    0,
		model.PlanBasic:   999,
		model.PlanPremium: 1999,
		model.PlanVIP:     4999,
	}
	for name, price := range expected {
		cfg, ok := model.PlanByName(name)
		if !ok {
			t.Fatalf("plan %s missing from the catalog", name)
		}
		if cfg.PriceCents != price {
			t.Errorf("plan %s: expected %d cents, got %d", name, price, cfg.PriceCents)
		}
	}
	if _, ok := model.PlanByName("PLATINUM"); ok {
		t.Error("expected unknown plans to be rejected")
	}

	plans := model.ListPlans()
	if len(plans) != 4 || plans[0].Plan != model.PlanFree || plans[3].Plan != model.PlanVIP {
		t.Errorf("expected the catalog in tier order, got %+v", plans)
	}
}

func TestQuestionGrade(t *testing.T) {
	q, err := model.NewQuestion("quiz-1", "2+2?", []string{"3", "4"}, "4", 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if correct, points := q.Grade("4"); !correct || points != 5 {
		t.Errorf("expected a full-credit match, got correct=%v points=%d", correct, points)
	}
	if correct, points := q.Grade("3"); correct || points != 0 {
		t.Errorf("expected zero credit, got correct=%v points=%d", correct, points)
	}
}

func TestNewQuestionValidation(t *testing.T) {
	if _, err := model.NewQuestion("quiz-1", "2+2?", []string{"4"}, "4", 5); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected at least two options to be required, got %v", err)
	}
	if _, err := model.NewQuestion("quiz-1", "2+2?", []string{"3", "4"}, "5", 5); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected the correct answer to be one of the options, got %v", err)
	}

	q, err := model.NewQuestion("quiz-1", "2+2?", []string{"3", "4"}, "4", 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if q.Points != 10 {
		t.Errorf("expected the default 10 points, got %d", q.Points)
	}
}

func TestQuestionStudentView(t *testing.T) {
	q, _ := model.NewQuestion("quiz-1", "2+2?", []string{"3", "4"}, "4", 5)
	view := q.StudentView()
	if view.ID != q.ID || view.Text != q.Text {
		t.Error("expected the view to mirror the question")
	}
	if len(view.Options) != 2 {
		t.Error("expected the options to survive")
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	cfg, _ := model.PlanByName(model.PlanBasic)

	t.Run("should run for the plan duration", func(t *testing.T) {
		sub, err := model.NewSubscription("user-1", cfg, cfg.PriceCents, "ORDER-1")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if sub.Status != model.SubscriptionStatusActive {
			t.Errorf("expected ACTIVE, got %s", sub.Status)
		}
		if sub.EndDate == nil {
			t.Fatal("expected an end date")
		}
		window := sub.EndDate.Sub(*sub.StartDate)
		if window < 29*24*time.Hour || window > 31*24*time.Hour {
			t.Errorf("expected a 30-day window, got %s", window)
		}
		if sub.Overdue(time.Now()) {
			t.Error("expected a fresh subscription not to be overdue")
		}
	})

	t.Run("should extend from now, not from the old end date", func(t *testing.T) {
		sub, _ := model.NewSubscription("user-1", cfg, cfg.PriceCents, "ORDER-1")
		past := time.Now().Add(-48 * time.Hour)
		sub.EndDate = &past
		if !sub.Overdue(time.Now()) {
			t.Fatal("expected the doctored subscription to be overdue")
		}

		vip, _ := model.PlanByName(model.PlanVIP)
		sub.Extend(vip, vip.PriceCents)
		if sub.Plan != model.PlanVIP {
			t.Errorf("expected the plan to change, got %s", sub.Plan)
		}
		if sub.Status != model.SubscriptionStatusActive {
			t.Errorf("expected ACTIVE after extend, got %s", sub.Status)
		}
		remaining := time.Until(*sub.EndDate)
		if remaining < 29*24*time.Hour || remaining > 31*24*time.Hour {
			t.Errorf("expected roughly 30 days from now, got %s", remaining)
		}
	})
}

func TestFreeSubscriptionView(t *testing.T) {
	view := model.FreeSubscriptionView()
	if view.Plan != model.PlanFree || view.Status != model.SubscriptionStatusActive {
		t.Errorf("unexpected free view: %+v", view)
	}
	if view.StartDate != nil || view.EndDate != nil {
		t.Error("expected no dates on the synthetic free view")
	}
}

func TestNewTransaction(t *testing.T) {
	t.Run("should start pending with USD default", func(t *testing.T) {
		tr, err := model.NewTransaction("user-1", "ORDER-1", model.PlanBasic, 999, "", "basic")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if tr.Status != model.TransactionStatusPending {
			t.Errorf("expected PENDING, got %s", tr.Status)
		}
		if tr.Currency != "USD" {
			t.Errorf("expected USD default, got %s", tr.Currency)
		}
		if tr.PaymentMethod != model.PaymentMethodPayPal {
			t.Errorf("expected PAYPAL, got %s", tr.PaymentMethod)
		}
	})

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		if _, err := model.NewTransaction("user-1", "ORDER-1", model.PlanBasic, 0, "USD", ""); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestNewAnswerGrades(t *testing.T) {
	q, _ := model.NewQuestion("quiz-1", "2+2?", []string{"3", "4"}, "4", 5)

	a, err := model.NewAnswer("attempt-1", q, "4")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !a.IsCorrect || a.PointsEarned != 5 {
		t.Errorf("expected a graded correct answer, got %+v", a)
	}

	b, _ := model.NewAnswer("attempt-1", q, "3")
	if b.IsCorrect || b.PointsEarned != 0 {
		t.Errorf("expected a graded wrong answer, got %+v", b)
	}
}
