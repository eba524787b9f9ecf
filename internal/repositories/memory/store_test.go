package memory_test

import (
	"context"
	"testing"

	"github.com/fintrackpro/fintrack_app/internal/apperrors"
	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
	"github.com/fintrackpro/fintrack_app/internal/repositories/memory"
	"github.com/fintrackpro/fintrack_app/internal/seed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SeedIfEmptyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	snapshot := seed.DefaultSnapshot()

	seeded, err := store.SeedIfEmpty(ctx, "u1", snapshot)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = store.SeedIfEmpty(ctx, "u1", snapshot)
	require.NoError(t, err)
	assert.False(t, seeded, "second seed check must be a no-op")

	assert.Equal(t, len(snapshot.Accounts), store.Count("u1", portsrepo.KindAccount))
	assert.Equal(t, len(snapshot.Transactions), store.Count("u1", portsrepo.KindTransaction))
	assert.Equal(t, len(snapshot.Stocks), store.Count("u1", portsrepo.KindStock))
}

func TestStore_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.SeedIfEmpty(ctx, "u1", seed.DefaultSnapshot())
	require.NoError(t, err)

	snap, err := store.FetchAll(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, snap.Accounts)
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Stocks)
}

func TestStore_FetchAllSortsTransactionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.SeedIfEmpty(ctx, "u1", seed.DefaultSnapshot())
	require.NoError(t, err)

	snap, err := store.FetchAll(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, snap.Transactions)
	for i := 1; i < len(snap.Transactions); i++ {
		assert.False(t, snap.Transactions[i-1].Date.Before(snap.Transactions[i].Date))
	}
}

func TestStore_UpsertPartialMergesFields(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	acc := domain.Account{
		AccountID:    "acc_1",
		Name:         "Salary Account",
		BankName:     "CTBC Bank",
		AccountType:  domain.Checking,
		CurrencyCode: "TWD",
		Balance:      decimal.NewFromInt(1000),
	}
	require.NoError(t, store.Upsert(ctx, "u1", portsrepo.KindAccount, acc.AccountID, acc))

	require.NoError(t, store.UpsertPartial(ctx, "u1", portsrepo.KindAccount, acc.AccountID, map[string]any{
		"balance": decimal.NewFromInt(800),
	}))

	snap, err := store.FetchAll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, snap.Accounts, 1)
	assert.True(t, snap.Accounts[0].Balance.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, "Salary Account", snap.Accounts[0].Name, "untouched fields survive the partial write")
}

func TestStore_DeleteMissingIsNoError(t *testing.T) {
	store := memory.NewStore()
	assert.NoError(t, store.Delete(context.Background(), "u1", portsrepo.KindAccount, "ghost"))
}

func TestStore_UserRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.FindUserByID(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	user := domain.User{UserID: "u1", Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, store.SaveUser(ctx, user))

	found, err := store.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, *found)
}
