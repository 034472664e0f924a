package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrAlreadyExists      = errors.New("entity already exists")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrConflict           = errors.New("operation conflicts with current state")
	ErrUnauthorized       = errors.New("invalid credentials")
	ErrForbidden          = errors.New("operation not allowed")
	ErrOperationFailed    = errors.New("operation failed")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
	ErrInvalidExecContext = errors.New("invalid query execution context")

	// Payment/subscription errors
	ErrFreePlanNotPayable   = errors.New("cannot create payment for free plan")
	ErrTransactionCompleted = errors.New("transaction already completed")
	ErrPaymentGateway       = errors.New("payment provider call failed")
	ErrNoActiveSubscription = errors.New("no active subscription")
	ErrAttemptNotInProgress = errors.New("quiz attempt is not in progress")
	ErrQuestionOutsideQuiz  = errors.New("question does not belong to the attempted quiz")
)
