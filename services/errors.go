package services

import "errors"

// Service-layer error taxonomy. Controllers translate these into HTTP
// statuses; the scheduler records them on execution rows.
var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrValidation    = errors.New("invalid input")

	ErrAccountNotFound          = errors.New("account not found")
	ErrProfileNotFound          = errors.New("profile not found")
	ErrRequestNotFound          = errors.New("withdrawal request not found")
	ErrRecurringDepositNotFound = errors.New("recurring deposit not found")

	// ErrInsufficientFunds is returned when an account balance cannot cover
	// a withdrawal at execution time.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientFundsAtApproval is returned when the balance dropped
	// between a withdrawal request's creation and its approval. The request
	// stays pending.
	ErrInsufficientFundsAtApproval = errors.New("insufficient funds at approval")

	ErrUnauthorized = errors.New("not allowed to act on this resource")

	ErrInviteNotFound    = errors.New("invite not found")
	ErrInviteExpired     = errors.New("invite has expired")
	ErrInviteAlreadyUsed = errors.New("invite has already been used")

	ErrDuplicateExecution = errors.New("recurring deposit already executed this month")
	ErrConflict           = errors.New("conflicting update, please retry")
)
