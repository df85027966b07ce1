package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCompleted is the outcome event emitted for every processed
// transaction, success or failure.
type TransactionCompleted struct {
	TransactionID string          `json:"transaction_id"`
	Action        string          `json:"action"`
	SourceAccount string          `json:"source_account"`
	TargetAccount string          `json:"target_account,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Success       bool            `json:"success"`
	Reason        string          `json:"reason"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
