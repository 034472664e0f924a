package model

import (
	"time"

	"quiz-platform/internal/domain"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionStatusPending   SubscriptionStatus = "PENDING"
)

// Subscription is a user's paid access window. At most one row per user is
// ACTIVE at a time; later successful payments extend the row in place.
type Subscription struct {
	ID                   string
	UserID               string
	Plan                 PlanName
	Status               SubscriptionStatus
	StartDate            *time.Time
	EndDate              *time.Time
	PriceCents           int64
	PayPalSubscriptionID string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewSubscription creates an ACTIVE subscription starting now for the plan's
// full duration.
func NewSubscription(userID string, plan PlanConfig, priceCents int64, orderID string) (*Subscription, error) {
	if userID == "" || plan.Plan == "" {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	end := now.AddDate(0, 0, plan.DurationDays)
	return &Subscription{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Plan:                 plan.Plan,
		Status:               SubscriptionStatusActive,
		StartDate:            &now,
		EndDate:              &end,
		PriceCents:           priceCents,
		PayPalSubscriptionID: orderID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// Extend overwrites the plan, price and end date in place. The end date is
// computed from now, not from the previous end date.
func (s *Subscription) Extend(plan PlanConfig, priceCents int64) {
	now := time.Now()
	end := now.AddDate(0, 0, plan.DurationDays)
	s.Plan = plan.Plan
	s.Status = SubscriptionStatusActive
	s.EndDate = &end
	s.PriceCents = priceCents
	s.UpdatedAt = now
}

// Overdue reports whether the subscription's end date has passed.
func (s *Subscription) Overdue(now time.Time) bool {
	return s.EndDate != nil && now.After(*s.EndDate)
}

// SubscriptionView is the read model returned to clients. A user without any
// subscription row gets the synthetic free default.
type SubscriptionView struct {
	Plan      PlanName           `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartDate *time.Time         `json:"start_date,omitempty"`
	EndDate   *time.Time         `json:"end_date,omitempty"`
	Features  []string           `json:"features"`
}

// FreeSubscriptionView is what a user without any subscription row sees.
// Nothing is persisted for it.
func FreeSubscriptionView() *SubscriptionView {
	free := planCatalog[PlanFree]
	return &SubscriptionView{
		Plan:     PlanFree,
		Status:   SubscriptionStatusActive,
		Features: free.Features,
	}
}
