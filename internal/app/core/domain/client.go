package domain

import (
	"strings"
	"time"
)

// ClientProfile 客戶可被更新的欄位
type ClientProfile struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	BirthDate   *time.Time // 可為空
	Address     string
}

// Client 客戶
// nationalID 不對外公開，只能透過 NewClient / RestoreClient 設定，之後不可變更
type Client struct {
	ID         int64
	nationalID string
	ClientProfile
}

// NewClient 建立一個尚未寫入資料庫的客戶
//
// 參數:
//
//	nationalID: 身分證號 (DNI)，不可為空白
//	profile: 其餘欄位
//
// 回傳:
//
//	*Client: 客戶
//	error: ErrNationalIDRequired
func NewClient(nationalID string, profile ClientProfile) (*Client, error) {
	if strings.TrimSpace(nationalID) == "" {
		return nil, ErrNationalIDRequired
	}
	profile.BirthDate = dateOrNil(profile.BirthDate)
	return &Client{
		nationalID:    nationalID,
		ClientProfile: profile,
	}, nil
}

// RestoreClient 由已持久化的資料重建客戶 (給儲存層使用)
func RestoreClient(id int64, nationalID string, profile ClientProfile) *Client {
	profile.BirthDate = dateOrNil(profile.BirthDate)
	return &Client{
		ID:            id,
		nationalID:    nationalID,
		ClientProfile: profile,
	}
}

// NationalID 身分證號
func (c *Client) NationalID() string {
	return c.nationalID
}

// Clone 回傳深拷貝
func (c *Client) Clone() *Client {
	cp := *c
	if c.BirthDate != nil {
		bd := *c.BirthDate
		cp.BirthDate = &bd
	}
	return &cp
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := DateOf(*t)
	return &d
}
