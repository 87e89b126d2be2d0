package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
)

// opKind WAL 紀錄的操作類型
type opKind string

const (
	opCreateClient  opKind = "client.create"
	opUpdateClient  opKind = "client.update"
	opDeleteClient  opKind = "client.delete"
	opInsertAccount opKind = "account.insert"
	opSetBalance    opKind = "account.balance"
)

// record 是寫入 WAL 的一行
type record struct {
	Op            opKind           `json:"op"`
	Client        *clientRecord    `json:"client,omitempty"`
	Account       *accountRecord   `json:"account,omitempty"`
	ClientID      int64            `json:"client_id,omitempty"`
	AccountNumber string           `json:"account_number,omitempty"`
	Balance       *decimal.Decimal `json:"balance,omitempty"`
}

type clientRecord struct {
	ID          int64      `json:"id"`
	NationalID  string     `json:"national_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Address     string     `json:"address"`
}

func newClientRecord(c *domain.Client) *clientRecord {
	return &clientRecord{
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

func (r *clientRecord) toDomain() *domain.Client {
	return domain.RestoreClient(r.ID, r.NationalID, domain.ClientProfile{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		BirthDate:   r.BirthDate,
		Address:     r.Address,
	})
}

type accountRecord struct {
	ID             int64               `json:"id"`
	AccountNumber  string              `json:"account_number"`
	Balance        decimal.Decimal     `json:"balance"`
	AccountType    domain.AccountType  `json:"account_type"`
	Currency       domain.Currency     `json:"currency"`
	CreationDate   time.Time           `json:"creation_date"`
	OverdraftLimit decimal.NullDecimal `json:"overdraft_limit"`
	ClientID       int64               `json:"client_id"`
}

func newAccountRecord(a *domain.BankAccount) *accountRecord {
	return &accountRecord{
		ID:             a.ID,
		AccountNumber:  a.AccountNumber,
		Balance:        a.Balance,
		AccountType:    a.AccountType,
		Currency:       a.Currency,
		CreationDate:   a.CreationDate,
		OverdraftLimit: a.OverdraftLimit,
		ClientID:       a.ClientID,
	}
}

func (r *accountRecord) toDomain() *domain.BankAccount {
	return &domain.BankAccount{
		ID:             r.ID,
		AccountNumber:  r.AccountNumber,
		Balance:        r.Balance,
		AccountType:    r.AccountType,
		Currency:       r.Currency,
		CreationDate:   r.CreationDate,
		OverdraftLimit: r.OverdraftLimit,
		ClientID:       r.ClientID,
	}
}
