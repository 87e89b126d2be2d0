package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-bank-records/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/internal/app/core/usecase"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type fixture struct {
	store    *memory.MutexStore
	registry *usecase.ClientRegistry
	ledger   *usecase.AccountLedger
	clientID int64
}

func setup(t *testing.T) *fixture {
	t.Helper()
	store, err := memory.NewMutexStore(nil)
	require.NoError(t, err)
	registry := usecase.NewClientRegistry(store, zap.NewNop())
	ledger := usecase.NewAccountLedger(store, zap.NewNop())

	client, err := domain.NewClient("11223344", domain.ClientProfile{FirstName: "Rosa", LastName: "Santos"})
	require.NoError(t, err)
	_, err = registry.Create(context.Background(), client)
	require.NoError(t, err)

	return &fixture{store: store, registry: registry, ledger: ledger, clientID: client.ID}
}

func (f *fixture) open(t *testing.T, typ domain.AccountType, cur domain.Currency, balance, limit string) *domain.BankAccount {
	t.Helper()
	req := usecase.OpenAccountRequest{
		ClientID:    f.clientID,
		AccountType: typ,
		Currency:    cur,
		Balance:     decPtr(balance),
	}
	if limit != "" {
		req.OverdraftLimit = decPtr(limit)
	}
	acc, err := f.ledger.OpenAccount(context.Background(), req)
	require.NoError(t, err)
	return acc
}

func (f *fixture) balance(t *testing.T, accountNumber string) decimal.Decimal {
	t.Helper()
	b, err := f.ledger.GetBalance(context.Background(), accountNumber)
	require.NoError(t, err)
	return b
}

// untouchedRepo 任何方法被呼叫都視為測試失敗
type untouchedRepo struct {
	t *testing.T
}

func (r untouchedRepo) InsertAccount(context.Context, *domain.BankAccount) error {
	r.t.Fatal("store accessed")
	return nil
}

func (r untouchedRepo) FindAccountByNumber(context.Context, string) (*domain.BankAccount, error) {
	r.t.Fatal("store accessed")
	return nil, nil
}

func (r untouchedRepo) FindAccountsByClient(context.Context, int64) ([]*domain.BankAccount, error) {
	r.t.Fatal("store accessed")
	return nil, nil
}

func (r untouchedRepo) UpdateBalance(context.Context, string, usecase.BalanceMutation) (*domain.BankAccount, error) {
	r.t.Fatal("store accessed")
	return nil, nil
}

// rejectingRepo 模擬資料庫 CHECK 約束擋下餘額寫入
type rejectingRepo struct {
	account *domain.BankAccount
}

func (r *rejectingRepo) InsertAccount(context.Context, *domain.BankAccount) error {
	return nil
}

func (r *rejectingRepo) FindAccountByNumber(context.Context, string) (*domain.BankAccount, error) {
	return r.account.Clone(), nil
}

func (r *rejectingRepo) FindAccountsByClient(context.Context, int64) ([]*domain.BankAccount, error) {
	return nil, nil
}

func (r *rejectingRepo) UpdateBalance(_ context.Context, _ string, mutate usecase.BalanceMutation) (*domain.BankAccount, error) {
	acc := r.account.Clone()
	if err := mutate(acc); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: update balance: %w", domain.ErrPersistence, errors.New("Error 3819: Check constraint 'chk_savings_balance' is violated."))
}

func TestAccountLedger_OpenAccountDefaults(t *testing.T) {
	f := setup(t)
	today := time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)
	ledger := usecase.NewAccountLedger(f.store, zap.NewNop())
	usecase.SetClock(ledger, func() time.Time { return today })

	acc, err := ledger.OpenAccount(context.Background(), usecase.OpenAccountRequest{
		ClientID:    f.clientID,
		AccountType: domain.AccountTypeChecking,
		Currency:    domain.CurrencyPEN,
	})
	require.NoError(t, err)
	assert.NotZero(t, acc.ID)
	assert.Len(t, acc.AccountNumber, domain.AccountNumberLength)
	assert.True(t, acc.Balance.IsZero())
	require.True(t, acc.OverdraftLimit.Valid)
	assert.True(t, acc.OverdraftLimit.Decimal.IsZero())
	assert.Equal(t, "2026-10-18", acc.CreationDate.Format("2006-01-02"))

	// 預設透支額度 0.00，因此 CHECKING 也不能低於 0
	_, err = ledger.Withdraw(context.Background(), acc.AccountNumber, dec("0.01"))
	assert.ErrorIs(t, err, domain.ErrOverdraftExceeded)
}

func TestAccountLedger_OpenAccountRoundTrip(t *testing.T) {
	f := setup(t)
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	acc, err := f.ledger.OpenAccount(context.Background(), usecase.OpenAccountRequest{
		ClientID:       f.clientID,
		AccountType:    domain.AccountTypeChecking,
		Currency:       domain.CurrencyUSD,
		Balance:        decPtr("200.00"),
		OverdraftLimit: decPtr("500.00"),
		CreationDate:   &created,
	})
	require.NoError(t, err)

	got, ok, err := f.ledger.FindByAccountNumber(context.Background(), acc.AccountNumber)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, acc.ID, got.ID)
	assert.True(t, got.Balance.Equal(dec("200.00")))
	assert.Equal(t, domain.AccountTypeChecking, got.AccountType)
	assert.Equal(t, domain.CurrencyUSD, got.Currency)
	assert.True(t, got.OverdraftLimit.Decimal.Equal(dec("500.00")))
	assert.Equal(t, f.clientID, got.ClientID)
	assert.True(t, got.CreationDate.Equal(created))
}

func TestAccountLedger_OpenAccountInvalidArgument(t *testing.T) {
	ledger := usecase.NewAccountLedger(untouchedRepo{t: t}, zap.NewNop())

	tests := []struct {
		name string
		req  usecase.OpenAccountRequest
	}{
		{"missing type", usecase.OpenAccountRequest{ClientID: 1, Currency: domain.CurrencyPEN}},
		{"unknown type", usecase.OpenAccountRequest{ClientID: 1, AccountType: "CREDIT", Currency: domain.CurrencyPEN}},
		{"missing currency", usecase.OpenAccountRequest{ClientID: 1, AccountType: domain.AccountTypeSavings}},
		{"unknown currency", usecase.OpenAccountRequest{ClientID: 1, AccountType: domain.AccountTypeSavings, Currency: "EUR"}},
		{"missing client", usecase.OpenAccountRequest{AccountType: domain.AccountTypeSavings, Currency: domain.CurrencyPEN}},
		{"sub-cent balance", usecase.OpenAccountRequest{ClientID: 1, AccountType: domain.AccountTypeSavings, Currency: domain.CurrencyPEN, Balance: decPtr("10.005")}},
		{"sub-cent overdraft limit", usecase.OpenAccountRequest{ClientID: 1, AccountType: domain.AccountTypeChecking, Currency: domain.CurrencyPEN, OverdraftLimit: decPtr("0.001")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.OpenAccount(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestAccountLedger_OpenAccountUnknownClient(t *testing.T) {
	f := setup(t)
	_, err := f.ledger.OpenAccount(context.Background(), usecase.OpenAccountRequest{
		ClientID:    f.clientID + 100,
		AccountType: domain.AccountTypeSavings,
		Currency:    domain.CurrencyPEN,
	})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestAccountLedger_NonPositiveAmount(t *testing.T) {
	f := setup(t)
	acc := f.open(t, domain.AccountTypeSavings, domain.CurrencyPEN, "100.00", "")
	guarded := usecase.NewAccountLedger(untouchedRepo{t: t}, zap.NewNop())

	for _, amount := range []string{"0", "0.00", "-0.01", "-100"} {
		t.Run(amount, func(t *testing.T) {
			_, err := f.ledger.Deposit(context.Background(), acc.AccountNumber, dec(amount))
			assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
			_, err = f.ledger.Withdraw(context.Background(), acc.AccountNumber, dec(amount))
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.True(t, f.balance(t, acc.AccountNumber).Equal(dec("100.00")))

			// 參數錯誤在存取資料庫之前就被擋下
			_, err = guarded.Deposit(context.Background(), acc.AccountNumber, dec(amount))
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			_, err = guarded.Withdraw(context.Background(), acc.AccountNumber, dec(amount))
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}

	_, err := guarded.Deposit(context.Background(), "  ", dec("1"))
	assert.ErrorIs(t, err, domain.ErrAccountNumberRequired)
	_, _, err = guarded.FindByAccountNumber(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = guarded.GetBalance(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAccountLedger_SubCentAmount(t *testing.T) {
	f := setup(t)
	acc := f.open(t, domain.AccountTypeSavings, domain.CurrencyPEN, "100.00", "")
	guarded := usecase.NewAccountLedger(untouchedRepo{t: t}, zap.NewNop())

	for _, amount := range []string{"0.005", "1.001", "99.999"} {
		t.Run(amount, func(t *testing.T) {
			_, err := f.ledger.Deposit(context.Background(), acc.AccountNumber, dec(amount))
			assert.ErrorIs(t, err, domain.ErrAmountPrecision)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			_, err = f.ledger.Withdraw(context.Background(), acc.AccountNumber, dec(amount))
			assert.ErrorIs(t, err, domain.ErrAmountPrecision)
			assert.True(t, f.balance(t, acc.AccountNumber).Equal(dec("100.00")))

			_, err = guarded.Deposit(context.Background(), acc.AccountNumber, dec(amount))
			assert.ErrorIs(t, err, domain.ErrAmountPrecision)
		})
	}

	// 尾端的 0 不影響精度
	got, err := f.ledger.Deposit(context.Background(), acc.AccountNumber, dec("1.000"))
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("101.00")))
}

func TestAccountLedger_UnknownAccount(t *testing.T) {
	f := setup(t)
	_, err := f.ledger.Deposit(context.Background(), "00000000000000", dec("1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.ledger.Withdraw(context.Background(), "00000000000000", dec("1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.ledger.GetBalance(context.Background(), "00000000000000")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	got, ok, err := f.ledger.FindByAccountNumber(context.Background(), "00000000000000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestAccountLedger_DepositThenBalance(t *testing.T) {
	f := setup(t)
	acc := f.open(t, domain.AccountTypeSavings, domain.CurrencyPEN, "0.10", "")

	for _, amount := range []string{"0.20", "0.01", "1234567.89", "0.30"} {
		before := f.balance(t, acc.AccountNumber)
		updated, err := f.ledger.Deposit(context.Background(), acc.AccountNumber, dec(amount))
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(before.Add(dec(amount))))
		assert.True(t, f.balance(t, acc.AccountNumber).Equal(before.Add(dec(amount))))
	}
	assert.Equal(t, "1234568.50", f.balance(t, acc.AccountNumber).StringFixed(2))
}

func TestAccountLedger_SavingsWithdraw(t *testing.T) {
	f := setup(t)
	acc := f.open(t, domain.AccountTypeSavings, domain.CurrencyPEN, "80.00", "")

	_, err := f.ledger.Withdraw(context.Background(), acc.AccountNumber, dec("80.01"))
	require.ErrorIs(t, err, domain.ErrBusinessRuleViolation)
	assert.ErrorIs(t, err, domain.ErrSavingsNegativeBalance)
	assert.True(t, f.balance(t, acc.AccountNumber).Equal(dec("80.00")))

	updated, err := f.ledger.Withdraw(context.Background(), acc.AccountNumber, dec("80.00"))
	require.NoError(t, err)
	assert.Equal(t, "0.00", updated.Balance.StringFixed(2))
}

func TestAccountLedger_CheckingWithdraw(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		limit   string
		amount  string
		ok      bool
	}{
		{"within limit", "100.00", "50.00", "120.00", true},
		{"exactly at limit", "100.00", "50.00", "150.00", true},
		{"one cent past limit", "100.00", "50.00", "150.01", false},
		{"zero limit", "10.00", "0.00", "10.01", false},
		{"already overdrawn", "-40.00", "50.00", "10.00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			acc := f.open(t, domain.AccountTypeChecking, domain.CurrencyUSD, tt.balance, tt.limit)

			_, err := f.ledger.Withdraw(context.Background(), acc.AccountNumber, dec(tt.amount))
			if tt.ok {
				require.NoError(t, err)
				assert.True(t, f.balance(t, acc.AccountNumber).Equal(dec(tt.balance).Sub(dec(tt.amount))))
				return
			}
			require.ErrorIs(t, err, domain.ErrBusinessRuleViolation)
			assert.Contains(t, err.Error(), tt.limit)
			assert.True(t, f.balance(t, acc.AccountNumber).Equal(dec(tt.balance)))
		})
	}
}

func TestAccountLedger_StoreRejectionIsPersistenceError(t *testing.T) {
	repo := &rejectingRepo{account: &domain.BankAccount{
		ID:             1,
		AccountNumber:  "12345678901234",
		Balance:        dec("10.00"),
		AccountType:    domain.AccountTypeChecking,
		Currency:       domain.CurrencyPEN,
		OverdraftLimit: decimal.NewNullDecimal(dec("100.00")),
		ClientID:       1,
	}}
	ledger := usecase.NewAccountLedger(repo, zap.NewNop())

	_, err := ledger.Withdraw(context.Background(), "12345678901234", dec("50.00"))
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.NotErrorIs(t, err, domain.ErrBusinessRuleViolation)
}

func TestAccountLedger_FindByClient(t *testing.T) {
	f := setup(t)
	first := f.open(t, domain.AccountTypeSavings, domain.CurrencyPEN, "0", "")
	second := f.open(t, domain.AccountTypeChecking, domain.CurrencyUSD, "0", "100")

	accounts, err := f.ledger.FindByClient(context.Background(), f.clientID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, first.AccountNumber, accounts[0].AccountNumber)
	assert.Equal(t, second.AccountNumber, accounts[1].AccountNumber)

	none, err := f.ledger.FindByClient(context.Background(), f.clientID+1)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAccountLedger_SavingsScenario(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	acc := f.open(t, domain.AccountTypeSavings, domain.CurrencyPEN, "0.00", "")

	_, err := f.ledger.Deposit(ctx, acc.AccountNumber, dec("300.00"))
	require.NoError(t, err)
	_, err = f.ledger.Withdraw(ctx, acc.AccountNumber, dec("50.00"))
	require.NoError(t, err)
	assert.Equal(t, "250.00", f.balance(t, acc.AccountNumber).StringFixed(2))

	_, err = f.ledger.Withdraw(ctx, acc.AccountNumber, dec("300.00"))
	require.ErrorIs(t, err, domain.ErrBusinessRuleViolation)
	assert.Equal(t, "250.00", f.balance(t, acc.AccountNumber).StringFixed(2))
}

func TestAccountLedger_CheckingScenario(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	acc := f.open(t, domain.AccountTypeChecking, domain.CurrencyUSD, "200.00", "500.00")

	updated, err := f.ledger.Deposit(ctx, acc.AccountNumber, dec("100.00"))
	require.NoError(t, err)
	assert.Equal(t, "300.00", updated.Balance.StringFixed(2))

	updated, err = f.ledger.Withdraw(ctx, acc.AccountNumber, dec("700.00"))
	require.NoError(t, err)
	assert.Equal(t, "-400.00", updated.Balance.StringFixed(2))
	assert.Equal(t, "-400.00", f.balance(t, acc.AccountNumber).StringFixed(2))
}
