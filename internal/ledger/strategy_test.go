package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// applyLocked runs a strategy under the account's lock, the way a worker does.
func applyLocked(acct *models.Account, st strategy, amount decimal.Decimal) error {
	locked := acct.Lock()
	defer locked.Unlock()
	return st.apply(locked, amount)
}

func TestDepositAddsToBalance(t *testing.T) {
	acct := models.NewAccount("user-1")
	seedBalance(acct, dec(t, "1000.00"))

	err := applyLocked(acct, depositStrategy{}, dec(t, "100.00"))
	require.NoError(t, err)
	require.True(t, acct.Balance().Equal(dec(t, "1100.00")))
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	acct := models.NewAccount("user-1")
	seedBalance(acct, dec(t, "50.00"))

	for _, amount := range []string{"0", "-10.00"} {
		err := applyLocked(acct, depositStrategy{}, dec(t, amount))
		require.ErrorIs(t, err, ErrInvalidAmount)
	}
	require.True(t, acct.Balance().Equal(dec(t, "50.00")))
}

func TestDepositRejectsFrozenAccount(t *testing.T) {
	acct := models.NewAccount("user-1")
	seedBalance(acct, dec(t, "50.00"))
	freeze(acct)

	err := applyLocked(acct, depositStrategy{}, dec(t, "50.00"))
	require.ErrorIs(t, err, ErrAccountFrozen)
	require.True(t, acct.Balance().Equal(dec(t, "50.00")))
}

func TestWithdrawSubtractsFromBalance(t *testing.T) {
	acct := models.NewAccount("user-1")
	seedBalance(acct, dec(t, "1000.00"))

	err := applyLocked(acct, withdrawStrategy{}, dec(t, "300.00"))
	require.NoError(t, err)
	require.True(t, acct.Balance().Equal(dec(t, "700.00")))

	// draining the full balance is allowed
	err = applyLocked(acct, withdrawStrategy{}, dec(t, "700.00"))
	require.NoError(t, err)
	require.True(t, acct.Balance().IsZero())
}

func TestWithdrawInsufficientFundsLeavesBalance(t *testing.T) {
	acct := models.NewAccount("user-1")
	seedBalance(acct, dec(t, "1000.00"))

	err := applyLocked(acct, withdrawStrategy{}, dec(t, "2000.00"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.True(t, acct.Balance().Equal(dec(t, "1000.00")))
}

func TestWithdrawRejectsNonPositiveAmount(t *testing.T) {
	acct := models.NewAccount("user-1")
	seedBalance(acct, dec(t, "10.00"))

	err := applyLocked(acct, withdrawStrategy{}, dec(t, "-1.00"))
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestWithdrawRejectsFrozenAccount(t *testing.T) {
	acct := models.NewAccount("user-1")
	seedBalance(acct, dec(t, "100.00"))
	freeze(acct)

	err := applyLocked(acct, withdrawStrategy{}, dec(t, "10.00"))
	require.ErrorIs(t, err, ErrAccountFrozen)
	require.True(t, acct.Balance().Equal(dec(t, "100.00")))
}

func TestFreezeIsIdempotent(t *testing.T) {
	acct := models.NewAccount("user-1")

	require.NoError(t, applyLocked(acct, freezeStrategy{}, decimal.Zero))
	require.True(t, acct.Frozen())

	// freezing again succeeds silently
	require.NoError(t, applyLocked(acct, freezeStrategy{}, decimal.Zero))
	require.True(t, acct.Frozen())
}

func TestStrategyForRejectsTransfer(t *testing.T) {
	_, err := strategyFor(models.ActionTransfer)
	require.Error(t, err)
}

func seedBalance(acct *models.Account, balance decimal.Decimal) {
	locked := acct.Lock()
	defer locked.Unlock()
	locked.SetBalance(balance)
}

func freeze(acct *models.Account) {
	locked := acct.Lock()
	defer locked.Unlock()
	locked.Freeze()
}
