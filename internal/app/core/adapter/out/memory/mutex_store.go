package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-records/pkg/wal"
)

var (
	errDuplicateNationalID    = errors.New("duplicate entry for clients.national_id")
	errDuplicateAccountNumber = errors.New("duplicate entry for bank_accounts.account_number")
	errClientHasAccounts      = errors.New("foreign key bank_accounts.client_id still references client")
	errUnknownClient          = errors.New("foreign key bank_accounts.client_id references missing client")
	errSavingsCheck           = errors.New("check constraint chk_savings_balance violated")
	errOverdraftCheck         = errors.New("check constraint chk_checking_overdraft violated")
)

// MutexStore 是一個使用 Mutex 實現的記憶體資料庫
// 同時實作 ClientRepository 與 AccountRepository，並模擬 MySQL 端的 unique / 外鍵 / CHECK 約束
//
// 結構:
//
//	clients / accounts: 資料 Map
//	mu: Mutex 用於保護所有資料，所有異動都在寫鎖內完成
//	wal: Write-Ahead Log 實例，nil 代表純記憶體 (測試用)
type MutexStore struct {
	mu sync.RWMutex

	clients     map[int64]*domain.Client
	nationalIDs map[string]int64
	lastClient  int64

	accounts       map[int64]*domain.BankAccount
	accountNumbers map[string]int64
	lastAccount    int64

	// Write-Ahead Logging
	wal *wal.WAL
}

// NewMutexStore 建立一個新的 MutexStore 實例，並由 WAL 恢復狀態
//
// 參數:
//
//	w: Write-Ahead Log 實例，可為 nil
//
// 回傳:
//
//	*MutexStore: MutexStore 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexStore(w *wal.WAL) (*MutexStore, error) {
	s := &MutexStore{
		clients:        make(map[int64]*domain.Client),
		nationalIDs:    make(map[string]int64),
		accounts:       make(map[int64]*domain.BankAccount),
		accountNumbers: make(map[string]int64),
		wal:            w,
	}
	if w == nil {
		return s, nil
	}
	// 只有建構時呼叫，無需 Lock (單執行緒)
	if err := wal.Replay(w, s.apply); err != nil {
		return nil, fmt.Errorf("recover from wal: %w", err)
	}
	return s, nil
}

// commit 先寫 WAL 再套用到記憶體，呼叫端必須持有寫鎖
func (s *MutexStore) commit(rec record) error {
	if s.wal != nil {
		if err := s.wal.Write(rec); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
	}
	return s.apply(rec)
}

// apply 把一筆紀錄套用到記憶體 (不寫入 WAL)
func (s *MutexStore) apply(rec record) error {
	switch rec.Op {
	case opCreateClient, opUpdateClient:
		c := rec.Client.toDomain()
		s.clients[c.ID] = c
		s.nationalIDs[c.NationalID()] = c.ID
		if c.ID > s.lastClient {
			s.lastClient = c.ID
		}
	case opDeleteClient:
		if c, ok := s.clients[rec.ClientID]; ok {
			delete(s.nationalIDs, c.NationalID())
			delete(s.clients, rec.ClientID)
		}
	case opInsertAccount:
		a := rec.Account.toDomain()
		s.accounts[a.ID] = a
		s.accountNumbers[a.AccountNumber] = a.ID
		if a.ID > s.lastAccount {
			s.lastAccount = a.ID
		}
	case opSetBalance:
		id, ok := s.accountNumbers[rec.AccountNumber]
		if !ok || rec.Balance == nil {
			return fmt.Errorf("%w: bad balance record for %s", domain.ErrPersistence, rec.AccountNumber)
		}
		s.accounts[id].Balance = *rec.Balance
	default:
		return fmt.Errorf("%w: unknown wal op %q", domain.ErrPersistence, rec.Op)
	}
	return nil
}

// CreateClient 寫入客戶並回填 ID
func (s *MutexStore) CreateClient(ctx context.Context, client *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nationalIDs[client.NationalID()]; ok {
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, errDuplicateNationalID)
	}
	stored := client.Clone()
	stored.ID = s.lastClient + 1
	if err := s.commit(record{Op: opCreateClient, Client: newClientRecord(stored)}); err != nil {
		return err
	}
	client.ID = stored.ID
	return nil
}

// FindClientByID 依 ID 查詢客戶
func (s *MutexStore) FindClientByID(ctx context.Context, id int64) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c.Clone(), nil
}

// FindClientByNationalID 依身分證號查詢客戶
func (s *MutexStore) FindClientByNationalID(ctx context.Context, nationalID string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nationalIDs[nationalID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return s.clients[id].Clone(), nil
}

// ListClients 依 ID 遞增列出所有客戶
func (s *MutexStore) ListClients(ctx context.Context) ([]*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateClient 只更新 ClientProfile，身分證號沿用已儲存的值
func (s *MutexStore) UpdateClient(ctx context.Context, client *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[client.ID]
	if !ok {
		return domain.ErrClientNotFound
	}
	updated := domain.RestoreClient(existing.ID, existing.NationalID(), client.ClientProfile)
	return s.commit(record{Op: opUpdateClient, Client: newClientRecord(updated)})
}

// DeleteClient 刪除客戶，仍持有帳戶時回傳 ErrConstraintViolation
func (s *MutexStore) DeleteClient(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return false, nil
	}
	for _, a := range s.accounts {
		if a.ClientID == id {
			return false, fmt.Errorf("%w: %w", domain.ErrConstraintViolation, errClientHasAccounts)
		}
	}
	if err := s.commit(record{Op: opDeleteClient, ClientID: id}); err != nil {
		return false, err
	}
	return true, nil
}

// InsertAccount 寫入帳戶，在同一個臨界區內分配 ID 與帳號
//
// 參數:
//
//	ctx: 上下文
//	account: 帳戶，成功後 ID / AccountNumber 會被回填
//
// 回傳:
//
//	error: ErrConstraintViolation (客戶不存在、違反 CHECK) / ErrPersistence
func (s *MutexStore) InsertAccount(ctx context.Context, account *domain.BankAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[account.ClientID]; !ok {
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, errUnknownClient)
	}
	if err := checkBalance(account); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, err)
	}

	stored := account.Clone()
	stored.ID = s.lastAccount + 1
	stored.AccountNumber = domain.NewAccountNumber()
	if _, taken := s.accountNumbers[stored.AccountNumber]; taken {
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, errDuplicateAccountNumber)
	}
	if err := s.commit(record{Op: opInsertAccount, Account: newAccountRecord(stored)}); err != nil {
		return err
	}
	account.ID = stored.ID
	account.AccountNumber = stored.AccountNumber
	return nil
}

// FindAccountByNumber 依帳號查詢帳戶
func (s *MutexStore) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.accountNumbers[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return s.accounts[id].Clone(), nil
}

// FindAccountsByClient 依 ID 遞增列出客戶的帳戶
func (s *MutexStore) FindAccountsByClient(ctx context.Context, clientID int64) ([]*domain.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.BankAccount, 0)
	for _, a := range s.accounts {
		if a.ClientID == clientID {
			out = append(out, a.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateBalance 在寫鎖內讀取、驗證並寫回餘額
//
// 參數:
//
//	ctx: 上下文
//	accountNumber: 帳號
//	mutate: 業務規則，回傳錯誤時不會寫入任何東西
//
// 回傳:
//
//	*domain.BankAccount: 異動後的帳戶
//	error: ErrAccountNotFound / mutate 的錯誤 / ErrPersistence (違反 CHECK)
func (s *MutexStore) UpdateBalance(ctx context.Context, accountNumber string, mutate usecase.BalanceMutation) (*domain.BankAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.accountNumbers[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	work := s.accounts[id].Clone()
	if err := mutate(work); err != nil {
		return nil, err
	}
	if err := checkBalance(work); err != nil {
		return nil, fmt.Errorf("%w: update balance of %s: %w", domain.ErrPersistence, accountNumber, err)
	}
	balance := work.Balance
	if err := s.commit(record{Op: opSetBalance, AccountNumber: accountNumber, Balance: &balance}); err != nil {
		return nil, err
	}
	return s.accounts[id].Clone(), nil
}

// checkBalance 對應 bank_accounts 表上的兩個 CHECK 約束
func checkBalance(a *domain.BankAccount) error {
	switch a.AccountType {
	case domain.AccountTypeSavings:
		if a.Balance.IsNegative() {
			return errSavingsCheck
		}
	case domain.AccountTypeChecking:
		if a.OverdraftLimit.Valid && a.Balance.LessThan(a.OverdraftLimit.Decimal.Neg()) {
			return errOverdraftCheck
		}
	}
	return nil
}

var (
	_ usecase.ClientRepository  = (*MutexStore)(nil)
	_ usecase.AccountRepository = (*MutexStore)(nil)
)
