package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditEntry records the final outcome of one processed transaction. Entries
// are written by the audit observer after the transaction's locks have been
// released; they are a trail, not the source of truth for balances.
type AuditEntry struct {
	ID              string
	TransactionID   string
	Action          ActionType
	Amount          decimal.Decimal
	SourceAccountID string
	TargetAccountID string
	Success         bool
	Reason          string
	CreatedAt       time.Time
}
