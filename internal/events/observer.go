package events

import (
	interfaces "github.com/sheikh-saqib/concurrent-bank-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
	eventmodels "github.com/sheikh-saqib/concurrent-bank-ledger/internal/models/events"
)

// PublishingObserver adapts an EventPublisher to the observer contract: every
// transaction outcome becomes a TransactionCompleted event on the configured
// topic. Publishing is best-effort; a broker error never fails the
// transaction that triggered it.
type PublishingObserver struct {
	publisher interfaces.EventPublisher
	topic     string
}

func NewPublishingObserver(publisher interfaces.EventPublisher, topic string) *PublishingObserver {
	return &PublishingObserver{
		publisher: publisher,
		topic:     topic,
	}
}

func (o *PublishingObserver) TransactionCompleted(tx models.Transaction, success bool, reason string) {
	event := eventmodels.TransactionCompleted{
		TransactionID: tx.ID,
		Action:        string(tx.Action),
		SourceAccount: tx.SourceAccountID,
		TargetAccount: tx.TargetAccountID,
		Amount:        tx.Amount,
		Success:       success,
		Reason:        reason,
		OccurredAt:    tx.CreatedAt,
	}
	_ = o.publisher.Publish(o.topic, event)
}

var _ interfaces.TransactionObserver = (*PublishingObserver)(nil)
