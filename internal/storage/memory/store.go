package memory

import (
	"sync"

	interfaces "github.com/sheikh-saqib/concurrent-bank-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

// Store is the in-memory implementation of interfaces.AccountStore. Both maps
// are insert-only and guarded by a single RWMutex, so lookups never race with
// concurrent saves. The store lives for the process lifetime; there is no
// teardown.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	accounts map[string]*models.Account
}

// NewStore creates an empty account store.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		accounts: make(map[string]*models.Account),
	}
}

func (s *Store) SaveUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

func (s *Store) SaveAccount(account *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
}

// LinkAccount appends accountID to the user's owned accounts under the store
// lock, so two concurrent account creations for one user cannot lose an
// append.
func (s *Store) LinkAccount(userID, accountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return false
	}
	user.AccountIDs = append(user.AccountIDs, accountID)
	return true
}

// GetUser returns a copy so callers cannot mutate the stored user or observe
// a concurrent LinkAccount mid-append.
func (s *Store) GetUser(id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *user
	cp.AccountIDs = append([]string(nil), user.AccountIDs...)
	return &cp, true
}

func (s *Store) GetAccount(id string) (*models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	return account, ok
}

func (s *Store) Users() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		cp := *user
		cp.AccountIDs = append([]string(nil), user.AccountIDs...)
		out = append(out, &cp)
	}
	return out
}

func (s *Store) Accounts() []*models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		out = append(out, account)
	}
	return out
}

// Compile-time check: ensure Store implements AccountStore
var _ interfaces.AccountStore = (*Store)(nil)
