package memory

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/pkg/wal"
)

func newClient(t *testing.T, nationalID string) *domain.Client {
	t.Helper()
	c, err := domain.NewClient(nationalID, domain.ClientProfile{FirstName: "Rosa", LastName: "Santos"})
	require.NoError(t, err)
	return c
}

func newAccount(clientID int64, typ domain.AccountType, balance string) *domain.BankAccount {
	return &domain.BankAccount{
		ClientID:       clientID,
		AccountType:    typ,
		Currency:       domain.CurrencyPEN,
		Balance:        decimal.RequireFromString(balance),
		OverdraftLimit: decimal.NewNullDecimal(decimal.Zero),
		CreationDate:   domain.DateOf(time.Now()),
	}
}

func TestMutexStore_RecoverFromWAL(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bank.wal")

	w, err := wal.Open(path)
	require.NoError(t, err)
	store, err := NewMutexStore(w)
	require.NoError(t, err)

	kept := newClient(t, "11223344")
	require.NoError(t, store.CreateClient(ctx, kept))
	gone := newClient(t, "55667788")
	require.NoError(t, store.CreateClient(ctx, gone))

	kept.Email = "rosa@mail.com"
	require.NoError(t, store.UpdateClient(ctx, kept))
	removed, err := store.DeleteClient(ctx, gone.ID)
	require.NoError(t, err)
	require.True(t, removed)

	acc := newAccount(kept.ID, domain.AccountTypeSavings, "0.00")
	require.NoError(t, store.InsertAccount(ctx, acc))
	_, err = store.UpdateBalance(ctx, acc.AccountNumber, func(a *domain.BankAccount) error {
		return a.Deposit(decimal.RequireFromString("300.00"))
	})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// 重新開啟後狀態一致
	w, err = wal.Open(path)
	require.NoError(t, err)
	defer w.Close()
	recovered, err := NewMutexStore(w)
	require.NoError(t, err)

	clients, err := recovered.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "11223344", clients[0].NationalID())
	assert.Equal(t, "rosa@mail.com", clients[0].Email)

	got, err := recovered.FindAccountByNumber(ctx, acc.AccountNumber)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("300.00")))

	// ID 不會重複使用
	next := newClient(t, "99999999")
	require.NoError(t, recovered.CreateClient(ctx, next))
	assert.Equal(t, gone.ID+1, next.ID)
	require.NoError(t, w.Close())

	// 寫入中斷留下半行紀錄，重啟時丟棄該行，之前的狀態完整保留
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, wal.FileModePrivate)
	require.NoError(t, err)
	_, err = f.WriteString(`{"op":"client.cre`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	w, err = wal.Open(path)
	require.NoError(t, err)
	defer w.Close()
	afterCrash, err := NewMutexStore(w)
	require.NoError(t, err)

	clients, err = afterCrash.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, next.ID, clients[1].ID)

	another := newClient(t, "12121212")
	require.NoError(t, afterCrash.CreateClient(ctx, another))
	assert.Equal(t, next.ID+1, another.ID)
}

func TestMutexStore_Constraints(t *testing.T) {
	ctx := context.Background()
	store, err := NewMutexStore(nil)
	require.NoError(t, err)

	c := newClient(t, "11223344")
	require.NoError(t, store.CreateClient(ctx, c))
	err = store.CreateClient(ctx, newClient(t, "11223344"))
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	err = store.InsertAccount(ctx, newAccount(c.ID+100, domain.AccountTypeSavings, "0"))
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	err = store.InsertAccount(ctx, newAccount(c.ID, domain.AccountTypeSavings, "-1"))
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	acc := newAccount(c.ID, domain.AccountTypeSavings, "10")
	require.NoError(t, store.InsertAccount(ctx, acc))
	assert.NotZero(t, acc.ID)
	assert.Len(t, acc.AccountNumber, domain.AccountNumberLength)

	_, err = store.DeleteClient(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	// 繞過業務規則直接寫負數，CHECK 會擋下並回報為 ErrPersistence
	_, err = store.UpdateBalance(ctx, acc.AccountNumber, func(a *domain.BankAccount) error {
		a.Balance = decimal.RequireFromString("-5")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrPersistence)
	got, err := store.FindAccountByNumber(ctx, acc.AccountNumber)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("10")))
}

func TestMutexStore_ConcurrentDeposits(t *testing.T) {
	ctx := context.Background()
	store, err := NewMutexStore(nil)
	require.NoError(t, err)

	c := newClient(t, "11223344")
	require.NoError(t, store.CreateClient(ctx, c))
	acc := newAccount(c.ID, domain.AccountTypeChecking, "0")
	require.NoError(t, store.InsertAccount(ctx, acc))

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.UpdateBalance(ctx, acc.AccountNumber, func(a *domain.BankAccount) error {
				return a.Deposit(decimal.RequireFromString("0.10"))
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.FindAccountByNumber(ctx, acc.AccountNumber)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("20.00")), got.Balance.String())
}

func TestMutexStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store, err := NewMutexStore(nil)
	require.NoError(t, err)

	c := newClient(t, "11223344")
	require.NoError(t, store.CreateClient(ctx, c))
	got, err := store.FindClientByID(ctx, c.ID)
	require.NoError(t, err)
	got.FirstName = "changed"

	again, err := store.FindClientByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rosa", again.FirstName)
}
