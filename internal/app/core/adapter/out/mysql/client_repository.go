package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-records/pkg/mysql"
)

type ClientRepository struct {
	client *mysql.Client
}

func NewClientRepository(client *mysql.Client) *ClientRepository {
	return &ClientRepository{
		client: client,
	}
}

func (repo *ClientRepository) CreateClient(ctx context.Context, client *domain.Client) error {
	row := newSQLClient(client)
	if err := repo.client.DB().WithContext(ctx).Create(row).Error; err != nil {
		return translate("create client", err)
	}
	client.ID = row.ID
	return nil
}

func (repo *ClientRepository) FindClientByID(ctx context.Context, id int64) (*domain.Client, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *ClientRepository) FindClientByNationalID(ctx context.Context, nationalID string) (*domain.Client, error) {
	return repo.findOne(ctx, "national_id = ?", nationalID)
}

func (repo *ClientRepository) findOne(ctx context.Context, query string, arg any) (*domain.Client, error) {
	var row sqlClient
	err := repo.client.DB().WithContext(ctx).Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, persistence("find client", err)
	}
	return row.toDomain(), nil
}

// ListClients 依 ID 遞增列出所有客戶
func (repo *ClientRepository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	var rows []sqlClient
	if err := repo.client.DB().WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, persistence("list clients", err)
	}
	clients := make([]*domain.Client, 0, len(rows))
	for i := range rows {
		clients = append(clients, rows[i].toDomain())
	}
	return clients, nil
}

// UpdateClient 明確列出要更新的欄位，national_id 不在其中
func (repo *ClientRepository) UpdateClient(ctx context.Context, client *domain.Client) error {
	res := repo.client.DB().WithContext(ctx).
		Model(&sqlClient{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"first_name":   client.FirstName,
			"last_name":    client.LastName,
			"email":        client.Email,
			"phone_number": client.PhoneNumber,
			"birth_date":   client.BirthDate,
			"address":      client.Address,
		})
	if res.Error != nil {
		return translate("update client", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (repo *ClientRepository) DeleteClient(ctx context.Context, id int64) (bool, error) {
	res := repo.client.DB().WithContext(ctx).Delete(&sqlClient{}, id)
	if res.Error != nil {
		return false, translate("delete client", res.Error)
	}
	return res.RowsAffected > 0, nil
}

var _ usecase.ClientRepository = (*ClientRepository)(nil)
