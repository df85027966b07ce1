package ledger

import (
	"fmt"

	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// strategy applies one single-account operation. The caller must hold the
// account's lock for the full call; the locked handle enforces that.
type strategy interface {
	apply(acct *models.LockedAccount, amount decimal.Decimal) error
}

// strategyFor dispatches the action enum to its strategy. Transfer is a
// two-account protocol, not a strategy, and is deliberately absent here.
func strategyFor(action models.ActionType) (strategy, error) {
	switch action {
	case models.ActionDeposit:
		return depositStrategy{}, nil
	case models.ActionWithdraw:
		return withdrawStrategy{}, nil
	case models.ActionFreeze:
		return freezeStrategy{}, nil
	default:
		return nil, fmt.Errorf("no strategy for action %q", action)
	}
}

type depositStrategy struct{}

func (depositStrategy) apply(acct *models.LockedAccount, amount decimal.Decimal) error {
	if acct.Frozen() {
		return ErrAccountFrozen
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidAmount
	}
	acct.SetBalance(acct.Balance().Add(amount))
	return nil
}

type withdrawStrategy struct{}

func (withdrawStrategy) apply(acct *models.LockedAccount, amount decimal.Decimal) error {
	if acct.Frozen() {
		return ErrAccountFrozen
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidAmount
	}
	if acct.Balance().Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}
	acct.SetBalance(acct.Balance().Sub(amount))
	return nil
}

type freezeStrategy struct{}

// apply freezes the account. Idempotent: freezing an already-frozen account
// succeeds silently. The amount is ignored.
func (freezeStrategy) apply(acct *models.LockedAccount, _ decimal.Decimal) error {
	acct.Freeze()
	return nil
}
