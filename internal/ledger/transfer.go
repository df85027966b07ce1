package ledger

import (
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// transfer moves tx.Amount from the source account to the target account
// while holding both locks, acquired in ascending id order. Every transfer in
// the system orders its acquisitions the same way, so two opposite-direction
// transfers between the same pair can never deadlock each other.
//
// Both legs are validated before either balance is touched: the deposit leg's
// only failure mode is a frozen target, so checking it up front means no
// partial state is ever written and no compensation path is needed.
func (s *Service) transfer(tx models.Transaction) error {
	if tx.SourceAccountID == tx.TargetAccountID {
		return ErrInvalidTarget
	}

	source, ok := s.store.GetAccount(tx.SourceAccountID)
	if !ok {
		return ErrAccountNotFound
	}
	target, ok := s.store.GetAccount(tx.TargetAccountID)
	if !ok {
		return ErrAccountNotFound
	}

	first, second := source, target
	if target.ID < source.ID {
		first, second = target, source
	}

	lockedFirst := first.Lock()
	defer lockedFirst.Unlock()
	lockedSecond := second.Lock()
	defer lockedSecond.Unlock() // inner releases first, outer last

	lockedSource, lockedTarget := lockedFirst, lockedSecond
	if first != source {
		lockedSource, lockedTarget = lockedSecond, lockedFirst
	}

	if tx.Amount.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidAmount
	}
	if lockedSource.Frozen() || lockedTarget.Frozen() {
		return ErrAccountFrozen
	}
	if lockedSource.Balance().Cmp(tx.Amount) < 0 {
		return ErrInsufficientFunds
	}

	lockedSource.SetBalance(lockedSource.Balance().Sub(tx.Amount))
	lockedTarget.SetBalance(lockedTarget.Balance().Add(tx.Amount))
	return nil
}
