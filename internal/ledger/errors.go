package ledger

import "errors"

// Domain errors. All of these are expected outcomes of a single transaction:
// they are caught at the worker boundary, converted into a failure
// notification, and never terminate a worker or the pool.
var (
	// ErrAccountNotFound means a referenced source or target identifier has
	// no account in the store.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUserNotFound means the owning user for a new account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountFrozen means a deposit or withdrawal hit a frozen account.
	ErrAccountFrozen = errors.New("account is frozen")

	// ErrInsufficientFunds means a withdrawal or transfer debit would drive
	// the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount means a non-positive amount was supplied where a
	// positive one is required.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidTarget means a transfer's source and target are the same
	// account.
	ErrInvalidTarget = errors.New("source and target must differ")
)
