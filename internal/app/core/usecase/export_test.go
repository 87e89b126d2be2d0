package usecase

import "time"

// SetClock 讓測試固定「今天」
func SetClock(l *AccountLedger, now func() time.Time) {
	l.now = now
}
