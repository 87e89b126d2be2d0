package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-records/pkg/mysql"
)

type AccountRepository struct {
	client *mysql.Client
}

func NewAccountRepository(client *mysql.Client) *AccountRepository {
	return &AccountRepository{
		client: client,
	}
}

// InsertAccount 寫入帳戶
// 帳號在 BeforeCreate 產生，ID 由 auto increment 回填，不需要再查詢一次
func (repo *AccountRepository) InsertAccount(ctx context.Context, account *domain.BankAccount) error {
	row := newSQLBankAccount(account)
	if err := repo.client.DB().WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return translate("insert account", err)
	}
	account.ID = row.ID
	account.AccountNumber = row.AccountNumber
	return nil
}

func (repo *AccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.BankAccount, error) {
	var row sqlBankAccount
	err := repo.client.DB().WithContext(ctx).Where("account_number = ?", accountNumber).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, persistence("find account", err)
	}
	return row.toDomain(), nil
}

// FindAccountsByClient 依 ID 遞增列出客戶的帳戶
func (repo *AccountRepository) FindAccountsByClient(ctx context.Context, clientID int64) ([]*domain.BankAccount, error) {
	var rows []sqlBankAccount
	err := repo.client.DB().WithContext(ctx).Where("client_id = ?", clientID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, persistence("list accounts", err)
	}
	accounts := make([]*domain.BankAccount, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, rows[i].toDomain())
	}
	return accounts, nil
}

// UpdateBalance 在同一個 Transaction 內以悲觀鎖讀取帳戶、執行業務規則、寫回餘額
// 同一帳戶的並發異動會在 SELECT ... FOR UPDATE 排隊，不會出現 lost update
//
// 參數:
//
//	ctx: 上下文
//	accountNumber: 帳號
//	mutate: 業務規則，回傳錯誤時 rollback
//
// 回傳:
//
//	*domain.BankAccount: 異動後的帳戶
//	error: ErrAccountNotFound / mutate 的錯誤 / ErrPersistence (含 CHECK 約束拒絕)
func (repo *AccountRepository) UpdateBalance(ctx context.Context, accountNumber string, mutate usecase.BalanceMutation) (*domain.BankAccount, error) {
	var updated *domain.BankAccount
	err := repo.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 取得鎖定帳號 悲觀鎖
		var row sqlBankAccount
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_number = ?", accountNumber).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAccountNotFound
		}
		if err != nil {
			return persistence("lock account", err)
		}

		account := row.toDomain()
		if err := mutate(account); err != nil {
			return err
		}

		res := tx.Model(&sqlBankAccount{}).Where("id = ?", row.ID).Update("balance", account.Balance)
		if res.Error != nil {
			return persistence(fmt.Sprintf("update balance of %s", accountNumber), res.Error)
		}
		if res.RowsAffected == 0 {
			return persistence(fmt.Sprintf("update balance of %s", accountNumber), errors.New("no rows updated"))
		}
		updated = account
		return nil
	})
	if err != nil {
		if isClassified(err) {
			return nil, err
		}
		return nil, persistence("balance transaction", err)
	}
	return updated, nil
}

var _ usecase.AccountRepository = (*AccountRepository)(nil)
