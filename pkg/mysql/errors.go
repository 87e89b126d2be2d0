package mysql

import (
	"errors"
	"strings"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL server error numbers
// 參考: https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	ErDupEntry                = 1062
	ErRowIsReferenced         = 1451
	ErNoReferencedRow         = 1452
	ErCheckConstraintViolated = 3819
)

// sqlite 的錯誤訊息，只在測試使用 sqlite dialector 時會出現
var sqliteConstraintMessages = []string{
	"UNIQUE constraint failed",
	"FOREIGN KEY constraint failed",
	"CHECK constraint failed",
}

// IsConstraintViolation 判斷錯誤是否為唯一鍵 / 外鍵 / CHECK 約束被違反
// 與連線中斷、語法錯誤等一般錯誤區分開來
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *driver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case ErDupEntry, ErRowIsReferenced, ErNoReferencedRow, ErCheckConstraintViolated:
			return true
		}
		return false
	}
	msg := err.Error()
	for _, m := range sqliteConstraintMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
