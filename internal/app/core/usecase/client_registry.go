package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
)

// ClientRegistry 管理客戶身分資料
type ClientRegistry struct {
	repo   ClientRepository
	logger *zap.Logger
}

func NewClientRegistry(repo ClientRepository, logger *zap.Logger) *ClientRegistry {
	return &ClientRegistry{
		repo:   repo,
		logger: logger,
	}
}

// Create 建立客戶
//
// 參數:
//
//	ctx: 上下文
//	client: 由 domain.NewClient 建立的客戶
//
// 回傳:
//
//	*domain.Client: 已分配 ID 的客戶
//	error: ErrInvalidArgument (身分證號空白) / ErrConstraintViolation (身分證號重複) / ErrPersistence
func (r *ClientRegistry) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, domain.ErrClientRequired
	}
	if strings.TrimSpace(client.NationalID()) == "" {
		return nil, domain.ErrNationalIDRequired
	}
	if err := r.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}
	r.logger.Info("client created", zap.Int64("client_id", client.ID))
	return client, nil
}

// FindByID 找不到時回傳 found=false，不視為錯誤
func (r *ClientRegistry) FindByID(ctx context.Context, id int64) (*domain.Client, bool, error) {
	client, err := r.repo.FindClientByID(ctx, id)
	return found(client, err)
}

// FindByNationalID 找不到時回傳 found=false，不視為錯誤
func (r *ClientRegistry) FindByNationalID(ctx context.Context, nationalID string) (*domain.Client, bool, error) {
	client, err := r.repo.FindClientByNationalID(ctx, nationalID)
	return found(client, err)
}

// ListAll 依 ID 遞增列出所有客戶
func (r *ClientRegistry) ListAll(ctx context.Context) ([]*domain.Client, error) {
	return r.repo.ListClients(ctx)
}

// Update 更新客戶資料，身分證號永遠不會被寫入
//
// 回傳:
//
//	*domain.Client: 更新後重新讀出的客戶，身分證號為原本儲存的值
//	error: ErrClientIDRequired / ErrClientNotFound / ErrPersistence
func (r *ClientRegistry) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, domain.ErrClientRequired
	}
	if client.ID == 0 {
		return nil, domain.ErrClientIDRequired
	}
	if err := r.repo.UpdateClient(ctx, client); err != nil {
		return nil, err
	}
	stored, err := r.repo.FindClientByID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	r.logger.Info("client updated", zap.Int64("client_id", client.ID))
	return stored, nil
}

// Delete 回傳是否刪除了客戶，找不到不視為錯誤
// 仍持有帳戶的客戶會被外鍵擋下 (ErrConstraintViolation)
func (r *ClientRegistry) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := r.repo.DeleteClient(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		r.logger.Info("client deleted", zap.Int64("client_id", id))
	}
	return removed, nil
}

// found 把 ErrNotFound 轉成 found=false
func found[T any](v *T, err error) (*T, bool, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}
