package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
)

// sqlClient 對應資料庫的 clients 表
type sqlClient struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	NationalID  string     `gorm:"column:national_id;type:varchar(20);not null;uniqueIndex"`
	FirstName   string     `gorm:"type:varchar(100)"`
	LastName    string     `gorm:"type:varchar(100)"`
	Email       string     `gorm:"type:varchar(150)"`
	PhoneNumber string     `gorm:"type:varchar(30)"`
	BirthDate   *time.Time `gorm:"type:date"`
	Address     string     `gorm:"type:varchar(255)"`
}

func (*sqlClient) TableName() string {
	return "clients"
}

func newSQLClient(c *domain.Client) *sqlClient {
	return &sqlClient{
		ID:          c.ID,
		NationalID:  c.NationalID(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		BirthDate:   c.BirthDate,
		Address:     c.Address,
	}
}

func (row *sqlClient) toDomain() *domain.Client {
	return domain.RestoreClient(row.ID, row.NationalID, domain.ClientProfile{
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		PhoneNumber: row.PhoneNumber,
		BirthDate:   row.BirthDate,
		Address:     row.Address,
	})
}

// sqlBankAccount 對應資料庫的 bank_accounts 表
// 兩個 CHECK 約束與業務規則重複，作為縱深防禦
type sqlBankAccount struct {
	ID             int64               `gorm:"primaryKey;autoIncrement"`
	AccountNumber  string              `gorm:"type:varchar(20);not null;uniqueIndex"`
	Balance        decimal.Decimal     `gorm:"type:decimal(15,2);not null;check:chk_savings_balance,account_type <> 'SAVINGS' OR balance >= 0"`
	AccountType    string              `gorm:"type:varchar(10);not null"`
	Currency       string              `gorm:"type:varchar(3);not null"`
	CreationDate   time.Time           `gorm:"type:date;not null"`
	OverdraftLimit decimal.NullDecimal `gorm:"type:decimal(15,2);check:chk_checking_overdraft,account_type <> 'CHECKING' OR overdraft_limit IS NULL OR balance >= -overdraft_limit"`
	ClientID       int64               `gorm:"not null;index"`
	Client         *sqlClient          `gorm:"foreignKey:ClientID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (*sqlBankAccount) TableName() string {
	return "bank_accounts"
}

// BeforeCreate 在 INSERT 的同一次操作中產生帳號，Create 完成後直接回填到結構
func (row *sqlBankAccount) BeforeCreate(tx *gorm.DB) error {
	if row.AccountNumber == "" {
		row.AccountNumber = domain.NewAccountNumber()
	}
	return nil
}

func newSQLBankAccount(a *domain.BankAccount) *sqlBankAccount {
	return &sqlBankAccount{
		ID:             a.ID,
		AccountNumber:  a.AccountNumber,
		Balance:        a.Balance,
		AccountType:    string(a.AccountType),
		Currency:       string(a.Currency),
		CreationDate:   a.CreationDate,
		OverdraftLimit: a.OverdraftLimit,
		ClientID:       a.ClientID,
	}
}

func (row *sqlBankAccount) toDomain() *domain.BankAccount {
	return &domain.BankAccount{
		ID:             row.ID,
		AccountNumber:  row.AccountNumber,
		Balance:        row.Balance,
		AccountType:    domain.AccountType(row.AccountType),
		Currency:       domain.Currency(row.Currency),
		CreationDate:   domain.DateOf(row.CreationDate),
		OverdraftLimit: row.OverdraftLimit,
		ClientID:       row.ClientID,
	}
}

// Migrate 建立或更新資料表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&sqlClient{}, &sqlBankAccount{})
}
