package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActionType names the operation a transaction performs.
type ActionType string

const (
	ActionDeposit  ActionType = "deposit"
	ActionWithdraw ActionType = "withdraw"
	ActionFreeze   ActionType = "freeze"
	ActionTransfer ActionType = "transfer"
)

// Transaction represents an intent to run one operation against the ledger.
// It is an immutable value: built once by the submitting caller, processed
// once by a worker, then discarded.
type Transaction struct {
	ID              string
	Action          ActionType
	Amount          decimal.Decimal
	SourceAccountID string
	TargetAccountID string // set only for transfers
	CreatedAt       time.Time
}

// NewTransaction builds a transaction with a generated identifier. targetID
// is ignored by every action except ActionTransfer; the amount is ignored by
// ActionFreeze.
func NewTransaction(action ActionType, amount decimal.Decimal, sourceID, targetID string) Transaction {
	return Transaction{
		ID:              uuid.New().String(),
		Action:          action,
		Amount:          amount,
		SourceAccountID: sourceID,
		TargetAccountID: targetID,
		CreatedAt:       time.Now(),
	}
}
