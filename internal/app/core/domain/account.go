package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType 帳戶類型
type AccountType string

const (
	// 儲蓄帳戶，餘額不可為負
	AccountTypeSavings AccountType = "SAVINGS"
	// 支票帳戶，允許在透支額度內為負
	AccountTypeChecking AccountType = "CHECKING"
)

// Valid 是否為已知的帳戶類型
func (t AccountType) Valid() bool {
	return t == AccountTypeSavings || t == AccountTypeChecking
}

// Currency 幣別，不同幣別之間不做換匯
type Currency string

const (
	CurrencyPEN Currency = "PEN"
	CurrencyUSD Currency = "USD"
)

// Valid 是否為已知的幣別
func (c Currency) Valid() bool {
	return c == CurrencyPEN || c == CurrencyUSD
}

// DefaultOverdraftLimit 支票帳戶在資料庫中沒有透支額度 (NULL) 時使用的額度
var DefaultOverdraftLimit = decimal.RequireFromString("500.00")

// BankAccount 銀行帳戶
type BankAccount struct {
	ID            int64
	AccountNumber string
	Balance       decimal.Decimal
	AccountType   AccountType
	Currency      Currency
	CreationDate  time.Time
	// OverdraftLimit 只對 CHECKING 有意義，Valid=false 代表資料庫中為 NULL
	OverdraftLimit decimal.NullDecimal
	ClientID       int64
}

// Clone 回傳拷貝 (decimal 本身是不可變的值)
func (a *BankAccount) Clone() *BankAccount {
	cp := *a
	return &cp
}

// EffectiveOverdraftLimit 提款時實際套用的透支額度
func (a *BankAccount) EffectiveOverdraftLimit() decimal.Decimal {
	if !a.OverdraftLimit.Valid {
		return DefaultOverdraftLimit
	}
	return a.OverdraftLimit.Decimal
}

// Deposit 存款，沒有上限
func (a *BankAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw 提款
//
// 參數:
//
//	amount: 提款金額，必須大於 0
//
// 回傳:
//
//	error: ErrAmountMustBePositive / ErrSavingsNegativeBalance / ErrOverdraftExceeded
func (a *BankAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}

	newBalance := a.Balance.Sub(amount)
	switch a.AccountType {
	case AccountTypeSavings:
		if newBalance.IsNegative() {
			return ErrSavingsNegativeBalance
		}
	case AccountTypeChecking:
		limit := a.EffectiveOverdraftLimit()
		if newBalance.LessThan(limit.Neg()) {
			return overdraftExceeded(limit)
		}
	default:
		return fmt.Errorf("%w: unknown account type %q", ErrBusinessRuleViolation, a.AccountType)
	}

	a.Balance = newBalance
	return nil
}

// DateOf 只保留日期部分
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
