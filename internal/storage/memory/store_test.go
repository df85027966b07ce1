package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

func TestSaveAndGetUser(t *testing.T) {
	store := NewStore()

	user := models.NewUser("vanya")
	store.SaveUser(user)

	got, ok := store.GetUser(user.ID)
	require.True(t, ok)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, "vanya", got.Nickname)

	_, ok = store.GetUser("missing")
	require.False(t, ok)
}

func TestGetUserReturnsCopy(t *testing.T) {
	store := NewStore()
	user := models.NewUser("vanya")
	store.SaveUser(user)
	require.True(t, store.LinkAccount(user.ID, "acct-1"))

	got, ok := store.GetUser(user.ID)
	require.True(t, ok)

	// mutating the copy must not reach the stored user
	got.AccountIDs[0] = "tampered"
	again, _ := store.GetUser(user.ID)
	require.Equal(t, []string{"acct-1"}, again.AccountIDs)
}

func TestSaveAndGetAccount(t *testing.T) {
	store := NewStore()

	account := models.NewAccount("user-1")
	store.SaveAccount(account)

	got, ok := store.GetAccount(account.ID)
	require.True(t, ok)
	// the same pointer comes back: the account's own lock guards its state
	require.Same(t, account, got)

	_, ok = store.GetAccount("missing")
	require.False(t, ok)
}

func TestLinkAccountUnknownUser(t *testing.T) {
	store := NewStore()
	require.False(t, store.LinkAccount("missing", "acct-1"))
}

func TestConcurrentLinkAccountLosesNothing(t *testing.T) {
	store := NewStore()
	user := models.NewUser("vanya")
	store.SaveUser(user)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			require.True(t, store.LinkAccount(user.ID, fmt.Sprintf("acct-%d", i)))
		}(i)
	}
	wg.Wait()

	got, ok := store.GetUser(user.ID)
	require.True(t, ok)
	require.Len(t, got.AccountIDs, n)
}

func TestConcurrentSavesAndLookups(t *testing.T) {
	store := NewStore()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			store.SaveAccount(models.NewAccount("user-1"))
		}()
		go func() {
			defer wg.Done()
			store.Accounts()
		}()
	}
	wg.Wait()

	require.Len(t, store.Accounts(), n)
}
