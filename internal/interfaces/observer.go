package interfaces

import "github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"

// TransactionObserver is notified once per processed transaction, after every
// lock the transaction held has been released. Observers may therefore call
// back into the ledger without deadlocking. For a single notification event
// observers run in subscription order.
type TransactionObserver interface {
	TransactionCompleted(tx models.Transaction, success bool, reason string)
}
