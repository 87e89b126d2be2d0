package mysql

import (
	"errors"
	"fmt"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/pkg/mysql"
)

// translate 把資料庫錯誤分類成 ErrConstraintViolation 或 ErrPersistence，保留原始錯誤
func translate(op string, err error) error {
	if mysql.IsConstraintViolation(err) {
		return fmt.Errorf("%w: %s: %w", domain.ErrConstraintViolation, op, err)
	}
	return persistence(op, err)
}

// persistence 一律視為 ErrPersistence (餘額寫入被 CHECK 擋下也屬於這類)
func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
}

// isClassified 錯誤是否已經帶有 domain 的錯誤種類
func isClassified(err error) bool {
	for _, kind := range []error{
		domain.ErrInvalidArgument,
		domain.ErrNotFound,
		domain.ErrBusinessRuleViolation,
		domain.ErrConstraintViolation,
		domain.ErrPersistence,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
