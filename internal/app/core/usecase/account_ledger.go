package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
)

// OpenAccountRequest 開戶請求，指標欄位為 nil 時套用預設值
type OpenAccountRequest struct {
	ClientID       int64
	AccountType    domain.AccountType
	Currency       domain.Currency
	Balance        *decimal.Decimal // 預設 0.00
	OverdraftLimit *decimal.Decimal // 預設 0.00
	CreationDate   *time.Time       // 預設今天
}

// AccountLedger 是帳務核心：開戶、存提款、查詢餘額
type AccountLedger struct {
	repo   AccountRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewAccountLedger(repo AccountRepository, logger *zap.Logger) *AccountLedger {
	return &AccountLedger{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// OpenAccount 開戶
//
// 參數:
//
//	ctx: 上下文
//	req: 開戶請求，AccountType / Currency / ClientID 必填
//
// 回傳:
//
//	*domain.BankAccount: 已寫入的帳戶，含資料庫分配的 ID 與帳號
//	error: ErrInvalidArgument / ErrConstraintViolation (客戶不存在) / ErrPersistence
func (l *AccountLedger) OpenAccount(ctx context.Context, req OpenAccountRequest) (*domain.BankAccount, error) {
	if req.AccountType == "" {
		return nil, domain.ErrAccountTypeRequired
	}
	if !req.AccountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", domain.ErrInvalidArgument, req.AccountType)
	}
	if req.Currency == "" {
		return nil, domain.ErrCurrencyRequired
	}
	if !req.Currency.Valid() {
		return nil, fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidArgument, req.Currency)
	}
	if req.ClientID <= 0 {
		return nil, domain.ErrClientIDRequired
	}
	if req.Balance != nil && !inCents(*req.Balance) {
		return nil, fmt.Errorf("%w: balance %s has more than 2 decimal places", domain.ErrInvalidArgument, req.Balance)
	}
	if req.OverdraftLimit != nil && !inCents(*req.OverdraftLimit) {
		return nil, fmt.Errorf("%w: overdraft limit %s has more than 2 decimal places", domain.ErrInvalidArgument, req.OverdraftLimit)
	}

	account := &domain.BankAccount{
		AccountType:    req.AccountType,
		Currency:       req.Currency,
		ClientID:       req.ClientID,
		Balance:        decimal.Zero,
		OverdraftLimit: decimal.NewNullDecimal(decimal.Zero),
		CreationDate:   domain.DateOf(l.now()),
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.OverdraftLimit != nil {
		account.OverdraftLimit = decimal.NewNullDecimal(*req.OverdraftLimit)
	}
	if req.CreationDate != nil {
		account.CreationDate = domain.DateOf(*req.CreationDate)
	}

	if err := l.repo.InsertAccount(ctx, account); err != nil {
		return nil, err
	}
	l.logger.Info("account opened",
		zap.String("account_number", account.AccountNumber),
		zap.Int64("client_id", account.ClientID),
		zap.String("type", string(account.AccountType)),
		zap.String("currency", string(account.Currency)),
	)
	return account, nil
}

// FindByAccountNumber 找不到時回傳 found=false，不視為錯誤
func (l *AccountLedger) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.BankAccount, bool, error) {
	if strings.TrimSpace(accountNumber) == "" {
		return nil, false, domain.ErrAccountNumberRequired
	}
	account, err := l.repo.FindAccountByNumber(ctx, accountNumber)
	return found(account, err)
}

// FindByClient 依 ID 遞增列出客戶的所有帳戶，沒有帳戶時回傳空 slice
func (l *AccountLedger) FindByClient(ctx context.Context, clientID int64) ([]*domain.BankAccount, error) {
	accounts, err := l.repo.FindAccountsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []*domain.BankAccount{}
	}
	return accounts, nil
}

// Deposit 存款
//
// 回傳:
//
//	*domain.BankAccount: 存款後的帳戶
//	error: ErrAmountMustBePositive / ErrAmountPrecision / ErrAccountNotFound / ErrPersistence
func (l *AccountLedger) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.BankAccount, error) {
	if err := checkMovement(accountNumber, amount); err != nil {
		return nil, err
	}
	account, err := l.repo.UpdateBalance(ctx, accountNumber, func(acc *domain.BankAccount) error {
		return acc.Deposit(amount)
	})
	if err != nil {
		return nil, err
	}
	l.logger.Info("deposit applied",
		zap.String("account_number", accountNumber),
		zap.String("amount", amount.String()),
		zap.String("balance", account.Balance.String()),
	)
	return account, nil
}

// Withdraw 提款
// SAVINGS 餘額不可為負，CHECKING 不可低於負的透支額度
//
// 回傳:
//
//	*domain.BankAccount: 提款後的帳戶
//	error: ErrAmountMustBePositive / ErrAmountPrecision / ErrAccountNotFound / ErrBusinessRuleViolation / ErrPersistence
func (l *AccountLedger) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.BankAccount, error) {
	if err := checkMovement(accountNumber, amount); err != nil {
		return nil, err
	}
	account, err := l.repo.UpdateBalance(ctx, accountNumber, func(acc *domain.BankAccount) error {
		return acc.Withdraw(amount)
	})
	if err != nil {
		if errors.Is(err, domain.ErrBusinessRuleViolation) {
			l.logger.Warn("withdrawal rejected",
				zap.String("account_number", accountNumber),
				zap.String("amount", amount.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}
	l.logger.Info("withdrawal applied",
		zap.String("account_number", accountNumber),
		zap.String("amount", amount.String()),
		zap.String("balance", account.Balance.String()),
	)
	return account, nil
}

// GetBalance 取得帳戶餘額
func (l *AccountLedger) GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	if strings.TrimSpace(accountNumber) == "" {
		return decimal.Zero, domain.ErrAccountNumberRequired
	}
	account, err := l.repo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// checkMovement 在存取資料庫之前先檢查參數
func checkMovement(accountNumber string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrAmountMustBePositive
	}
	if !inCents(amount) {
		return domain.ErrAmountPrecision
	}
	if strings.TrimSpace(accountNumber) == "" {
		return domain.ErrAccountNumberRequired
	}
	return nil
}

// inCents 尾端的 0 不算，1.000 合法，0.005 不合法
func inCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
