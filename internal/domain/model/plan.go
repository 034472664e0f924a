package model

// PlanName identifies a subscription tier.
type PlanName string

const (
	PlanFree    PlanName = "FREE"
	PlanBasic   PlanName = "BASIC"
	PlanPremium PlanName = "PREMIUM"
	PlanVIP     PlanName = "VIP"
)

// PlanConfig is one entry of the static plan catalog. Prices are USD cents.
type PlanConfig struct {
	Plan         PlanName `json:"plan"`
	Name         string   `json:"name"`
	PriceCents   int64    `json:"price_cents"`
	DurationDays int      `json:"duration_days"` // 0 = unlimited (free tier)
	Features     []string `json:"features"`
}

// The catalog is read-only and process-wide; there is no plans table.
var planCatalog = map[PlanName]PlanConfig{
	PlanFree: {
		Plan:         PlanFree,
		Name:         "Free",
		PriceCents:   0,
		DurationDays: 0,
		Features:     []string{"Basic quiz access", "Limited attempts"},
	},
	PlanBasic: {
		Plan:         PlanBasic,
		Name:         "Basic",
		PriceCents:   999,
		DurationDays: 30,
		Features:     []string{"Unlimited quiz attempts", "Basic statistics", "Remove ads"},
	},
	PlanPremium: {
		Plan:         PlanPremium,
		Name:         "Premium",
		PriceCents:   1999,
		DurationDays: 30,
		Features: []string{
			"All Basic features",
			"Advanced statistics",
			"Custom quizzes",
			"Priority support",
		},
	},
	PlanVIP: {
		Plan:         PlanVIP,
		Name:         "VIP",
		PriceCents:   4999,
		DurationDays: 30,
		Features: []string{
			"All Premium features",
			"Exclusive content",
			"Personal tutor",
			"1-on-1 support",
			"Certificate of completion",
		},
	},
}

var planOrder = []PlanName{PlanFree, PlanBasic, PlanPremium, PlanVIP}

// PlanByName looks a plan up by its catalog key.
func PlanByName(name PlanName) (PlanConfig, bool) {
	p, ok := planCatalog[name]
	return p, ok
}

// ListPlans returns the catalog in tier order.
func ListPlans() []PlanConfig {
	out := make([]PlanConfig, 0, len(planOrder))
	for _, n := range planOrder {
		out = append(out, planCatalog[n])
	}
	return out
}
