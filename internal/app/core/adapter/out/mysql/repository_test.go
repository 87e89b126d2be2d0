package mysql

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/pkg/mysql"
)

// setupTestClient 以 sqlite in-memory 取代 MySQL，schema 由同一份 Migrate 建立
func setupTestClient(t *testing.T) *mysql.Client {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	client, err := mysql.Open(sqlite.Open(dsn), mysql.Config{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(client.DB()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createClient(t *testing.T, repo *ClientRepository, nationalID string) *domain.Client {
	t.Helper()
	bd := time.Date(1998, 3, 21, 0, 0, 0, 0, time.UTC)
	c, err := domain.NewClient(nationalID, domain.ClientProfile{
		FirstName:   "Rosa",
		LastName:    "Santos",
		Email:       "rosa@mail.com",
		PhoneNumber: "987654321",
		BirthDate:   &bd,
		Address:     "Av. Primavera 123",
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateClient(context.Background(), c))
	require.NotZero(t, c.ID)
	return c
}

func openAccount(t *testing.T, repo *AccountRepository, clientID int64, typ domain.AccountType, balance string, limit decimal.NullDecimal) *domain.BankAccount {
	t.Helper()
	acc := &domain.BankAccount{
		ClientID:       clientID,
		AccountType:    typ,
		Currency:       domain.CurrencyUSD,
		Balance:        dec(balance),
		OverdraftLimit: limit,
		CreationDate:   time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.InsertAccount(context.Background(), acc))
	return acc
}

func TestClientRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(setupTestClient(t))

	created := createClient(t, repo, "11223344")

	byID, err := repo.FindClientByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "11223344", byID.NationalID())
	assert.Equal(t, "Rosa", byID.FirstName)
	require.NotNil(t, byID.BirthDate)
	assert.Equal(t, "1998-03-21", byID.BirthDate.Format("2006-01-02"))

	byNationalID, err := repo.FindClientByNationalID(ctx, "11223344")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNationalID.ID)

	_, err = repo.FindClientByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	_, err = repo.FindClientByNationalID(ctx, "00000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRepository_DuplicateNationalID(t *testing.T) {
	repo := NewClientRepository(setupTestClient(t))
	createClient(t, repo, "11223344")

	dup, err := domain.NewClient("11223344", domain.ClientProfile{FirstName: "Otra"})
	require.NoError(t, err)
	err = repo.CreateClient(context.Background(), dup)
	require.ErrorIs(t, err, domain.ErrConstraintViolation)
	assert.Zero(t, dup.ID)
}

func TestClientRepository_UpdateNeverWritesNationalID(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(setupTestClient(t))
	created := createClient(t, repo, "11223344")

	// 另一個身分證號的物件帶著相同 ID 來更新
	impostor, err := domain.NewClient("99999999", domain.ClientProfile{
		FirstName:   "Rosa",
		LastName:    "Santos",
		Email:       "rosa.actualizado@mail.com",
		PhoneNumber: "999888777",
		Address:     "Jr. Los Tulipanes 456",
	})
	require.NoError(t, err)
	impostor.ID = created.ID
	require.NoError(t, repo.UpdateClient(ctx, impostor))

	got, err := repo.FindClientByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "11223344", got.NationalID())
	assert.Equal(t, "rosa.actualizado@mail.com", got.Email)
	assert.Equal(t, "999888777", got.PhoneNumber)
	assert.Nil(t, got.BirthDate)

	// 相同內容再更新一次仍然算找到
	require.NoError(t, repo.UpdateClient(ctx, impostor))

	missing := domain.RestoreClient(created.ID+10, "x", domain.ClientProfile{})
	assert.ErrorIs(t, repo.UpdateClient(ctx, missing), domain.ErrClientNotFound)
}

func TestClientRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewClientRepository(client)
	accounts := NewAccountRepository(client)

	a := createClient(t, repo, "1")
	b := createClient(t, repo, "2")
	c := createClient(t, repo, "3")

	list, err := repo.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})

	removed, err := repo.DeleteClient(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteClient(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	openAccount(t, accounts, c.ID, domain.AccountTypeSavings, "0", decimal.NewNullDecimal(decimal.Zero))
	_, err = repo.DeleteClient(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestAccountRepository_InsertReturnsGeneratedFields(t *testing.T) {
	ctx := context.Background()
	client := setupTestClient(t)
	owner := createClient(t, NewClientRepository(client), "11223344")
	repo := NewAccountRepository(client)

	acc := openAccount(t, repo, owner.ID, domain.AccountTypeChecking, "200.00", decimal.NewNullDecimal(dec("500.00")))
	assert.NotZero(t, acc.ID)
	assert.Len(t, acc.AccountNumber, domain.AccountNumberLength)

	got, err := repo.FindAccountByNumber(ctx, acc.AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)
	assert.Equal(t, domain.AccountTypeChecking, got.AccountType)
	assert.Equal(t, domain.CurrencyUSD, got.Currency)
	assert.Equal(t, owner.ID, got.ClientID)
	assert.True(t, got.Balance.Equal(dec("200.00")))
	require.True(t, got.OverdraftLimit.Valid)
	assert.True(t, got.OverdraftLimit.Decimal.Equal(dec("500.00")))
	assert.Equal(t, "2026-10-18", got.CreationDate.Format("2006-01-02"))

	_, err = repo.FindAccountByNumber(ctx, "00000000000000")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepository_InsertForUnknownClient(t *testing.T) {
	repo := NewAccountRepository(setupTestClient(t))
	acc := &domain.BankAccount{
		ClientID:     4242,
		AccountType:  domain.AccountTypeSavings,
		Currency:     domain.CurrencyPEN,
		Balance:      decimal.Zero,
		CreationDate: time.Now(),
	}
	err := repo.InsertAccount(context.Background(), acc)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestAccountRepository_FindAccountsByClient(t *testing.T) {
	ctx := context.Background()
	client := setupTestClient(t)
	clients := NewClientRepository(client)
	repo := NewAccountRepository(client)
	owner := createClient(t, clients, "1")
	other := createClient(t, clients, "2")

	first := openAccount(t, repo, owner.ID, domain.AccountTypeSavings, "0", decimal.NewNullDecimal(decimal.Zero))
	openAccount(t, repo, other.ID, domain.AccountTypeSavings, "0", decimal.NewNullDecimal(decimal.Zero))
	second := openAccount(t, repo, owner.ID, domain.AccountTypeChecking, "0", decimal.NewNullDecimal(decimal.Zero))

	list, err := repo.FindAccountsByClient(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.AccountNumber, list[0].AccountNumber)
	assert.Equal(t, second.AccountNumber, list[1].AccountNumber)

	none, err := repo.FindAccountsByClient(ctx, other.ID+100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAccountRepository_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	client := setupTestClient(t)
	owner := createClient(t, NewClientRepository(client), "11223344")
	repo := NewAccountRepository(client)
	acc := openAccount(t, repo, owner.ID, domain.AccountTypeSavings, "0.00", decimal.NewNullDecimal(decimal.Zero))

	updated, err := repo.UpdateBalance(ctx, acc.AccountNumber, func(a *domain.BankAccount) error {
		return a.Deposit(dec("300.00"))
	})
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(dec("300.00")))

	// 業務規則拒絕時 rollback
	_, err = repo.UpdateBalance(ctx, acc.AccountNumber, func(a *domain.BankAccount) error {
		return a.Withdraw(dec("300.01"))
	})
	require.ErrorIs(t, err, domain.ErrSavingsNegativeBalance)

	// 繞過業務規則時由 CHECK 約束擋下，回報為 ErrPersistence
	_, err = repo.UpdateBalance(ctx, acc.AccountNumber, func(a *domain.BankAccount) error {
		a.Balance = dec("-1.00")
		return nil
	})
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.NotErrorIs(t, err, domain.ErrBusinessRuleViolation)

	got, err := repo.FindAccountByNumber(ctx, acc.AccountNumber)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("300.00")), got.Balance.String())

	_, err = repo.UpdateBalance(ctx, "00000000000000", func(a *domain.BankAccount) error { return nil })
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepository_NullOverdraftLimit(t *testing.T) {
	ctx := context.Background()
	client := setupTestClient(t)
	owner := createClient(t, NewClientRepository(client), "11223344")
	repo := NewAccountRepository(client)
	acc := openAccount(t, repo, owner.ID, domain.AccountTypeChecking, "0.00", decimal.NullDecimal{})

	got, err := repo.FindAccountByNumber(ctx, acc.AccountNumber)
	require.NoError(t, err)
	assert.False(t, got.OverdraftLimit.Valid)

	updated, err := repo.UpdateBalance(ctx, acc.AccountNumber, func(a *domain.BankAccount) error {
		return a.Withdraw(dec("500.00"))
	})
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(dec("-500.00")))
}

func TestAccountRepository_ConcurrentWithdrawals(t *testing.T) {
	ctx := context.Background()
	client := setupTestClient(t)
	owner := createClient(t, NewClientRepository(client), "11223344")
	repo := NewAccountRepository(client)
	acc := openAccount(t, repo, owner.ID, domain.AccountTypeSavings, "100.00", decimal.NewNullDecimal(decimal.Zero))

	// 20 筆 10.00 的提款只有 10 筆能成功
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateBalance(ctx, acc.AccountNumber, func(a *domain.BankAccount) error {
				return a.Withdraw(dec("10.00"))
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrSavingsNegativeBalance)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)
	got, err := repo.FindAccountByNumber(ctx, acc.AccountNumber)
	require.NoError(t, err)
	assert.True(t, got.Balance.IsZero(), got.Balance.String())
}
