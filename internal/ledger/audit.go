package ledger

import (
	"context"

	"github.com/google/uuid"
	interfaces "github.com/sheikh-saqib/concurrent-bank-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

// AuditObserver records every completed transaction through an AuditStore.
// Recording is best-effort: a failing audit write must not disturb the pool,
// so store errors are swallowed here.
type AuditObserver struct {
	store interfaces.AuditStore
}

func NewAuditObserver(store interfaces.AuditStore) *AuditObserver {
	return &AuditObserver{store: store}
}

func (o *AuditObserver) TransactionCompleted(tx models.Transaction, success bool, reason string) {
	entry := models.AuditEntry{
		ID:              uuid.New().String(),
		TransactionID:   tx.ID,
		Action:          tx.Action,
		Amount:          tx.Amount,
		SourceAccountID: tx.SourceAccountID,
		TargetAccountID: tx.TargetAccountID,
		Success:         success,
		Reason:          reason,
		CreatedAt:       tx.CreatedAt,
	}
	_ = o.store.SaveEntry(context.Background(), entry)
}

var _ interfaces.TransactionObserver = (*AuditObserver)(nil)
