package usecase

import (
	"context"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
)

// ClientRepository 是客戶資料的儲存介面
// 找不到資料時回傳 domain.ErrClientNotFound
type ClientRepository interface {
	// CreateClient 寫入客戶並回填 ID
	CreateClient(ctx context.Context, client *domain.Client) error
	FindClientByID(ctx context.Context, id int64) (*domain.Client, error)
	FindClientByNationalID(ctx context.Context, nationalID string) (*domain.Client, error)
	// ListClients 依 ID 遞增排序
	ListClients(ctx context.Context) ([]*domain.Client, error)
	// UpdateClient 只更新 ClientProfile 欄位，不動身分證號
	UpdateClient(ctx context.Context, client *domain.Client) error
	// DeleteClient 回傳是否真的刪除了一筆
	DeleteClient(ctx context.Context, id int64) (bool, error)
}

// BalanceMutation 在帳戶被鎖定期間執行，回傳 nil 時 account.Balance 會被寫回
type BalanceMutation func(account *domain.BankAccount) error

// AccountRepository 是帳戶資料的儲存介面
// 找不到資料時回傳 domain.ErrAccountNotFound
type AccountRepository interface {
	// InsertAccount 寫入帳戶，並在同一次操作中回填 ID 與帳號
	InsertAccount(ctx context.Context, account *domain.BankAccount) error
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.BankAccount, error)
	// FindAccountsByClient 依 ID 遞增排序
	FindAccountsByClient(ctx context.Context, clientID int64) ([]*domain.BankAccount, error)
	// UpdateBalance 以帳戶為單位序列化餘額異動
	UpdateBalance(ctx context.Context, accountNumber string, mutate BalanceMutation) (*domain.BankAccount, error)
}
