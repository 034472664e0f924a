//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
)

func seedUser(t *testing.T, email string) *model.User {
	t.Helper()
	u, err := model.NewUser("", email, "hash", "Test User", model.RoleUser)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if err := NewUserRepo(testPool).Save(context.Background(), nil, u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestTransactionRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepo(testPool)

	t.Run("Save and FindByOrderAndUser round-trips", func(t *testing.T) {
		cleanup(t)
		u := seedUser(t, "tx1@example.com")
		tr, _ := model.NewTransaction(u.ID, "ORDER-1", model.PlanPremium, 1999, "USD", "Premium plan")
		if err := repo.Save(ctx, nil, tr); err != nil {
			t.Fatalf("Save: %v", err)
		}

		got, err := repo.FindByOrderAndUser(ctx, nil, "ORDER-1", u.ID)
		if err != nil {
			t.Fatalf("FindByOrderAndUser: %v", err)
		}
		if got.ID != tr.ID || got.Status != model.TransactionStatusPending || got.AmountCents != 1999 {
			t.Errorf("unexpected transaction: %+v", got)
		}
	})

	t.Run("FindByOrderAndUser is scoped to the user", func(t *testing.T) {
		cleanup(t)
		owner := seedUser(t, "owner@example.com")
		other := seedUser(t, "other@example.com")
		tr, _ := model.NewTransaction(owner.ID, "ORDER-2", model.PlanBasic, 999, "USD", "")
		if err := repo.Save(ctx, nil, tr); err != nil {
			t.Fatalf("Save: %v", err)
		}

		if _, err := repo.FindByOrderAndUser(ctx, nil, "ORDER-2", other.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound for foreign user, got %v", err)
		}
	})

	t.Run("duplicate order id is rejected", func(t *testing.T) {
		cleanup(t)
		u := seedUser(t, "dup@example.com")
		tr1, _ := model.NewTransaction(u.ID, "ORDER-3", model.PlanBasic, 999, "USD", "")
		tr2, _ := model.NewTransaction(u.ID, "ORDER-3", model.PlanBasic, 999, "USD", "")
		if err := repo.Save(ctx, nil, tr1); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := repo.Save(ctx, nil, tr2); !errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("CompletePending succeeds exactly once", func(t *testing.T) {
		cleanup(t)
		u := seedUser(t, "cap@example.com")
		tr, _ := model.NewTransaction(u.ID, "ORDER-4", model.PlanVIP, 4999, "USD", "")
		if err := repo.Save(ctx, nil, tr); err != nil {
			t.Fatalf("Save: %v", err)
		}

		upd := repository.CaptureUpdate{
			CaptureID:   "CAP-1",
			PayerID:     "PAYER-1",
			PayerEmail:  "payer@example.com",
			PayerName:   "Payer One",
			Raw:         []byte(`{"status":"COMPLETED"}`),
			CompletedAt: time.Now(),
		}
		ok, err := repo.CompletePending(ctx, nil, tr.ID, upd)
		if err != nil || !ok {
			t.Fatalf("first CompletePending: ok=%v err=%v", ok, err)
		}

		// The second attempt must lose: the row is no longer PENDING.
		ok, err = repo.CompletePending(ctx, nil, tr.ID, upd)
		if err != nil {
			t.Fatalf("second CompletePending: %v", err)
		}
		if ok {
			t.Error("second CompletePending should not report an update")
		}

		got, err := repo.FindByID(ctx, nil, tr.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if got.Status != model.TransactionStatusCompleted || got.PayPalCaptureID != "CAP-1" || got.CompletedAt == nil {
			t.Errorf("capture fields not persisted: %+v", got)
		}
	})

	t.Run("MarkFailed only touches pending rows", func(t *testing.T) {
		cleanup(t)
		u := seedUser(t, "fail@example.com")
		tr, _ := model.NewTransaction(u.ID, "ORDER-5", model.PlanBasic, 999, "USD", "")
		if err := repo.Save(ctx, nil, tr); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := repo.MarkFailed(ctx, nil, tr.ID, "capture declined"); err != nil {
			t.Fatalf("MarkFailed: %v", err)
		}
		got, _ := repo.FindByID(ctx, nil, tr.ID)
		if got.Status != model.TransactionStatusFailed || got.ErrorMessage != "capture declined" {
			t.Errorf("unexpected row after MarkFailed: %+v", got)
		}

		// A failed row must not be resurrected by another MarkFailed or capture.
		ok, err := repo.CompletePending(ctx, nil, tr.ID, repository.CaptureUpdate{CompletedAt: time.Now()})
		if err != nil || ok {
			t.Errorf("CompletePending after failure: ok=%v err=%v", ok, err)
		}
	})
}
