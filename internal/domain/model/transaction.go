package model

import (
	"time"

	"quiz-platform/internal/domain"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusRefunded  TransactionStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodPayPal PaymentMethod = "PAYPAL"
)

// Transaction records one payment attempt from order creation to settlement
// or failure. Amounts are USD cents. Status only ever moves PENDING→COMPLETED
// or PENDING→FAILED; COMPLETED is terminal.
type Transaction struct {
	ID              string
	UserID          string
	SubscriptionID  *string // set after capture funds a subscription
	PayPalOrderID   string  // unique
	PayPalCaptureID string
	PayerID         string
	PayerEmail      string
	PayerName       string
	PaymentMethod   PaymentMethod
	AmountCents     int64
	Currency        string
	Status          TransactionStatus
	Description     string
	ErrorMessage    string
	Plan            PlanName // selected plan, recorded at order time
	PayPalResponse  []byte   // raw capture payload, kept for audit
	CreatedAt       time.Time
	CompletedAt     *time.Time
	RefundedAt      *time.Time
}

func NewTransaction(userID, orderID string, plan PlanName, amountCents int64, currency, description string) (*Transaction, error) {
	if userID == "" || orderID == "" || plan == "" || amountCents <= 0 {
		return nil, domain.ErrInvalidArgument
	}
	if currency == "" {
		currency = "USD"
	}
	return &Transaction{
		ID:            uuid.NewString(),
		UserID:        userID,
		PayPalOrderID: orderID,
		PaymentMethod: PaymentMethodPayPal,
		AmountCents:   amountCents,
		Currency:      currency,
		Status:        TransactionStatusPending,
		Description:   description,
		Plan:          plan,
		CreatedAt:     time.Now(),
	}, nil
}
