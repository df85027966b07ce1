package memory

import (
	"context"
	"sync"

	interfaces "github.com/sheikh-saqib/concurrent-bank-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

// AuditStore keeps the outcome trail in memory. It is thread-safe for
// concurrent writes from multiple workers.
type AuditStore struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

// NewAuditStore creates an empty in-memory audit store.
func NewAuditStore() *AuditStore {
	return &AuditStore{
		entries: make([]models.AuditEntry, 0),
	}
}

// SaveEntry appends an audit entry. Always succeeds in memory.
func (s *AuditStore) SaveEntry(ctx context.Context, entry models.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return nil
}

// Entries returns a copy of all recorded entries so external code can't
// modify internal state.
func (s *AuditStore) Entries() ([]models.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]models.AuditEntry, len(s.entries))
	copy(copied, s.entries)
	return copied, nil
}

func (s *AuditStore) EntriesByAccount(accountID string) ([]models.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.AuditEntry
	for _, e := range s.entries {
		if e.SourceAccountID == accountID || e.TargetAccountID == accountID {
			result = append(result, e)
		}
	}
	return result, nil
}

// Compile-time check: ensure AuditStore implements the interface
var _ interfaces.AuditStore = (*AuditStore)(nil)
