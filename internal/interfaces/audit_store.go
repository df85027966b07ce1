package interfaces

import (
	"context"

	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

// AuditStore persists the outcome trail of processed transactions. It backs
// the audit observer and can be any storage implementation.
type AuditStore interface {
	SaveEntry(ctx context.Context, entry models.AuditEntry) error
	EntriesByAccount(accountID string) ([]models.AuditEntry, error)
	Entries() ([]models.AuditEntry, error)
}
