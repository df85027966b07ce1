package models

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the unit of locking in the ledger. Balance and frozen state can
// only be mutated through a LockedAccount obtained from Lock, so every
// read-modify-write sequence runs under the account's exclusive lock.
type Account struct {
	ID     string
	UserID string

	mu      sync.Mutex
	balance decimal.Decimal
	frozen  bool
}

// NewAccount creates an account for the given user with a zero balance.
func NewAccount(userID string) *Account {
	return &Account{
		ID:      uuid.New().String(),
		UserID:  userID,
		balance: decimal.Zero,
	}
}

// Balance returns a point-in-time snapshot for display. The value may be
// stale by the time the caller looks at it.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Frozen reports whether the account is frozen. Display-only snapshot, like
// Balance.
func (a *Account) Frozen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frozen
}

// Lock acquires the account's exclusive lock and returns the handle that is
// the only way to mutate the account. The caller must call Unlock on the
// handle when the read-modify-write sequence is done.
func (a *Account) Lock() *LockedAccount {
	a.mu.Lock()
	return &LockedAccount{account: a}
}

// LockedAccount is a view of an account whose lock is currently held.
type LockedAccount struct {
	account *Account
}

// ID returns the locked account's identifier.
func (l *LockedAccount) ID() string { return l.account.ID }

// Balance returns the balance as of this locked section.
func (l *LockedAccount) Balance() decimal.Decimal { return l.account.balance }

// Frozen reports the frozen flag as of this locked section.
func (l *LockedAccount) Frozen() bool { return l.account.frozen }

// SetBalance overwrites the balance. Valid only while the lock is held.
func (l *LockedAccount) SetBalance(balance decimal.Decimal) {
	l.account.balance = balance
}

// Freeze sets the frozen flag. Freezing an already-frozen account is a no-op.
func (l *LockedAccount) Freeze() {
	l.account.frozen = true
}

// Unlock releases the account's lock. The handle must not be used afterwards.
func (l *LockedAccount) Unlock() {
	l.account.mu.Unlock()
}
