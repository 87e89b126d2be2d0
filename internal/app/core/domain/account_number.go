package domain

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// AccountNumberLength 帳號位數
const AccountNumberLength = 14

const accountNumberModulo = 100_000_000_000_000 // 10^14

// NewAccountNumber 產生一組 14 位數字帳號
// 由儲存層在寫入帳戶的同一次操作中呼叫，唯一性最終由資料庫的 unique index 保證
func NewAccountNumber() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[:8]) % accountNumberModulo
	return fmt.Sprintf("%0*d", AccountNumberLength, n)
}
