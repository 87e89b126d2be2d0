package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// 錯誤種類 (Kind)
// 具體錯誤都會包住其中一種，呼叫端以 errors.Is 判斷種類即可
var (
	// ErrInvalidArgument 呼叫端傳入的資料不符前置條件，一定在存取資料庫之前就被擋下
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound 參照的實體不存在
	ErrNotFound = errors.New("not found")

	// ErrBusinessRuleViolation 格式正確但被業務規則拒絕
	ErrBusinessRuleViolation = errors.New("business rule violation")

	// ErrConstraintViolation 資料庫因唯一鍵 / 外鍵 / CHECK 拒絕寫入
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrPersistence 其他儲存層錯誤 (連線、非預期的 SQL 錯誤)
	ErrPersistence = errors.New("persistence error")
)

var (
	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)

	// ErrAmountPrecision 金額最多兩位小數 (DECIMAL(15,2))
	ErrAmountPrecision = fmt.Errorf("%w: amount cannot have more than 2 decimal places", ErrInvalidArgument)

	// ErrNationalIDRequired 身分證號必填
	ErrNationalIDRequired = fmt.Errorf("%w: national id is required", ErrInvalidArgument)

	// ErrClientRequired 未傳入客戶
	ErrClientRequired = fmt.Errorf("%w: client is required", ErrInvalidArgument)

	// ErrClientIDRequired 更新時必須已有 ID
	ErrClientIDRequired = fmt.Errorf("%w: client id is required", ErrInvalidArgument)

	// ErrAccountTypeRequired 開戶時帳戶類型必填
	ErrAccountTypeRequired = fmt.Errorf("%w: account type is required", ErrInvalidArgument)

	// ErrCurrencyRequired 開戶時幣別必填
	ErrCurrencyRequired = fmt.Errorf("%w: currency is required", ErrInvalidArgument)

	// ErrAccountNumberRequired 帳號必填
	ErrAccountNumberRequired = fmt.Errorf("%w: account number is required", ErrInvalidArgument)

	// ErrClientNotFound 找不到客戶
	ErrClientNotFound = fmt.Errorf("client %w", ErrNotFound)

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)

	// ErrSavingsNegativeBalance 儲蓄帳戶餘額不可為負
	ErrSavingsNegativeBalance = fmt.Errorf("%w: savings balance cannot go negative", ErrBusinessRuleViolation)

	// ErrOverdraftExceeded 超過支票帳戶透支額度
	ErrOverdraftExceeded = fmt.Errorf("%w: exceeds permitted overdraft", ErrBusinessRuleViolation)
)

// overdraftExceeded 帶上實際使用的額度，方便呼叫端直接顯示
func overdraftExceeded(limit decimal.Decimal) error {
	return fmt.Errorf("%w of %s", ErrOverdraftExceeded, limit.StringFixed(2))
}
