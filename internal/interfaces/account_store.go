package interfaces

import (
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

// AccountStore is the concurrency-safe mapping from identifiers to users and
// accounts. Insertion and lookup may be called from any number of workers at
// once; the store never serializes balance mutations, that is each account's
// own job via its lock. Users and accounts are insert-only, there is no
// deletion.
type AccountStore interface {
	SaveUser(user *models.User)
	SaveAccount(account *models.Account)

	// LinkAccount appends accountID to the user's owned-account list.
	// Returns false when the user does not exist.
	LinkAccount(userID, accountID string) bool

	// GetUser returns a copy of the stored user, so callers cannot race on
	// the account-id slice.
	GetUser(id string) (*models.User, bool)

	// GetAccount returns the live account pointer; the account's own lock
	// guards its mutable state.
	GetAccount(id string) (*models.Account, bool)

	Users() []*models.User
	Accounts() []*models.Account
}
