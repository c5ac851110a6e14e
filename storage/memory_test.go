package storage

import (
	"context"
	"testing"
	"time"

	"bankledger/bank"
	"bankledger/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-03 12:00 is a Wednesday noon, inside the withdrawal window.
var testNoon = time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)

func newTestStore() *MemoryStore {
	return NewMemoryStoreWithClock(func() time.Time { return testNoon })
}

func TestMemoryStoreAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		store := newTestStore()
		created, err := store.CreateAccount(ctx, decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.NotEmpty(t, created.AccountID)
		assert.True(t, created.Active)

		got, err := store.GetAccount(ctx, created.AccountID)
		require.NoError(t, err)
		assert.Equal(t, created.AccountID, got.AccountID)
		assert.True(t, got.Balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("negative initial balance is a domain error", func(t *testing.T) {
		store := newTestStore()
		_, err := store.CreateAccount(ctx, decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, bank.ErrNegativeInitialBalance)
	})

	t.Run("unknown account id", func(t *testing.T) {
		store := newTestStore()
		_, err := store.GetAccount(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deposit and withdraw mutate the stored account", func(t *testing.T) {
		store := newTestStore()
		acc, err := store.CreateAccount(ctx, decimal.NewFromInt(100))
		require.NoError(t, err)

		after, err := store.Deposit(ctx, acc.AccountID, decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.True(t, after.Balance.Equal(decimal.NewFromInt(150)))

		after, err = store.Withdraw(ctx, acc.AccountID, decimal.NewFromInt(70))
		require.NoError(t, err)
		assert.True(t, after.Balance.Equal(decimal.NewFromInt(80)))
	})

	t.Run("withdrawals honor the business window of the store clock", func(t *testing.T) {
		sunday := time.Date(2024, time.January, 7, 12, 0, 0, 0, time.UTC)
		store := NewMemoryStoreWithClock(func() time.Time { return sunday })
		acc, err := store.CreateAccount(ctx, decimal.NewFromInt(100))
		require.NoError(t, err)

		_, err = store.Withdraw(ctx, acc.AccountID, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, bank.ErrOutsideBusinessDays)
	})

	t.Run("deactivate", func(t *testing.T) {
		store := newTestStore()
		acc, err := store.CreateAccount(ctx, decimal.Zero)
		require.NoError(t, err)

		closed, err := store.Deactivate(ctx, acc.AccountID)
		require.NoError(t, err)
		assert.False(t, closed.Active)

		_, err = store.Deactivate(ctx, acc.AccountID)
		assert.ErrorIs(t, err, bank.ErrAlreadyDeactivated)
	})
}

func TestMemoryStoreTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("moves money and conserves the total", func(t *testing.T) {
		store := newTestStore()
		src, err := store.CreateAccount(ctx, decimal.NewFromInt(100))
		require.NoError(t, err)
		dst, err := store.CreateAccount(ctx, decimal.Zero)
		require.NoError(t, err)

		err = store.ExecuteTransfer(ctx, model.TransferRequest{
			SourceAccountID:      src.AccountID,
			DestinationAccountID: dst.AccountID,
			Amount:               decimal.NewFromInt(50),
		})
		require.NoError(t, err)

		srcAfter, err := store.GetAccount(ctx, src.AccountID)
		require.NoError(t, err)
		dstAfter, err := store.GetAccount(ctx, dst.AccountID)
		require.NoError(t, err)
		assert.True(t, srcAfter.Balance.Equal(decimal.NewFromInt(50)))
		assert.True(t, dstAfter.Balance.Equal(decimal.NewFromInt(50)))
	})

	t.Run("unknown accounts", func(t *testing.T) {
		store := newTestStore()
		src, err := store.CreateAccount(ctx, decimal.NewFromInt(100))
		require.NoError(t, err)

		err = store.ExecuteTransfer(ctx, model.TransferRequest{
			SourceAccountID:      src.AccountID,
			DestinationAccountID: "missing",
			Amount:               decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("self transfer is a domain error", func(t *testing.T) {
		store := newTestStore()
		acc, err := store.CreateAccount(ctx, decimal.NewFromInt(100))
		require.NoError(t, err)

		err = store.ExecuteTransfer(ctx, model.TransferRequest{
			SourceAccountID:      acc.AccountID,
			DestinationAccountID: acc.AccountID,
			Amount:               decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, bank.ErrSameAccount)
	})

	t.Run("insufficient funds leave both balances unchanged", func(t *testing.T) {
		store := newTestStore()
		src, err := store.CreateAccount(ctx, decimal.NewFromInt(30))
		require.NoError(t, err)
		dst, err := store.CreateAccount(ctx, decimal.NewFromInt(5))
		require.NoError(t, err)

		err = store.ExecuteTransfer(ctx, model.TransferRequest{
			SourceAccountID:      src.AccountID,
			DestinationAccountID: dst.AccountID,
			Amount:               decimal.NewFromInt(31),
		})
		assert.ErrorIs(t, err, bank.ErrInsufficientBalance)

		srcAfter, err := store.GetAccount(ctx, src.AccountID)
		require.NoError(t, err)
		dstAfter, err := store.GetAccount(ctx, dst.AccountID)
		require.NoError(t, err)
		assert.True(t, srcAfter.Balance.Equal(decimal.NewFromInt(30)))
		assert.True(t, dstAfter.Balance.Equal(decimal.NewFromInt(5)))
	})
}

func TestMemoryStoreUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		store := newTestStore()
		created, err := store.CreateUser(ctx, "Ada", "ada@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, created.UserID)
		assert.True(t, created.TotalBalance.IsZero())

		got, err := store.GetUser(ctx, created.UserID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", got.Name)
		assert.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("blank fields are domain errors", func(t *testing.T) {
		store := newTestStore()
		_, err := store.CreateUser(ctx, "   ", "ada@example.com")
		assert.ErrorIs(t, err, bank.ErrBlankName)
		_, err = store.CreateUser(ctx, "Ada", "")
		assert.ErrorIs(t, err, bank.ErrBlankEmail)
	})

	t.Run("attached accounts feed the total balance", func(t *testing.T) {
		store := newTestStore()
		u, err := store.CreateUser(ctx, "Ada", "ada@example.com")
		require.NoError(t, err)
		first, err := store.CreateAccount(ctx, decimal.NewFromInt(100))
		require.NoError(t, err)
		second, err := store.CreateAccount(ctx, decimal.NewFromInt(25))
		require.NoError(t, err)

		_, err = store.AttachAccount(ctx, u.UserID, first.AccountID)
		require.NoError(t, err)
		after, err := store.AttachAccount(ctx, u.UserID, second.AccountID)
		require.NoError(t, err)
		assert.Equal(t, []string{first.AccountID, second.AccountID}, after.AccountIDs)
		assert.True(t, after.TotalBalance.Equal(decimal.NewFromInt(125)))

		// The user tracks live references, so a later deposit shows up.
		_, err = store.Deposit(ctx, first.AccountID, decimal.NewFromInt(10))
		require.NoError(t, err)
		got, err := store.GetUser(ctx, u.UserID)
		require.NoError(t, err)
		assert.True(t, got.TotalBalance.Equal(decimal.NewFromInt(135)))
	})

	t.Run("attach validates both sides", func(t *testing.T) {
		store := newTestStore()
		u, err := store.CreateUser(ctx, "Ada", "ada@example.com")
		require.NoError(t, err)

		_, err = store.AttachAccount(ctx, "missing", "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
		_, err = store.AttachAccount(ctx, u.UserID, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
