package grpc

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	pb "github.com/JoeShih716/go-bank-records/proto/bankrecords/v1"
)

// 日期一律以 YYYY-MM-DD 傳輸，金額以字串傳輸
const dateLayout = "2006-01-02"

func toClientMessage(c *domain.Client) *pb.Client {
	msg := &pb.Client{
		Id:          c.ID,
		NationalId:  c.NationalID(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
	if c.BirthDate != nil {
		msg.BirthDate = c.BirthDate.Format(dateLayout)
	}
	return msg
}

// toProfile 取出可修改的欄位，nil 訊息視為全部空白
func toProfile(m *pb.Client) (domain.ClientProfile, error) {
	birthDate, err := parseDate("birth_date", m.GetBirthDate())
	if err != nil {
		return domain.ClientProfile{}, err
	}
	return domain.ClientProfile{
		FirstName:   m.GetFirstName(),
		LastName:    m.GetLastName(),
		Email:       m.GetEmail(),
		PhoneNumber: m.GetPhoneNumber(),
		BirthDate:   birthDate,
		Address:     m.GetAddress(),
	}, nil
}

// toAccountMessage 透支額度為 NULL 時 OverdraftLimit 留空
func toAccountMessage(a *domain.BankAccount) *pb.Account {
	msg := &pb.Account{
		Id:            a.ID,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance.StringFixed(2),
		AccountType:   string(a.AccountType),
		Currency:      string(a.Currency),
		CreationDate:  a.CreationDate.Format(dateLayout),
		ClientId:      a.ClientID,
	}
	if a.OverdraftLimit.Valid {
		msg.OverdraftLimit = a.OverdraftLimit.Decimal.StringFixed(2)
	}
	return msg
}

// parseDecimal 空字串回傳 nil
func parseDecimal(field, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a decimal", domain.ErrInvalidArgument, field, s)
	}
	return &d, nil
}

// parseDate 空字串回傳 nil
func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a YYYY-MM-DD date", domain.ErrInvalidArgument, field, s)
	}
	return &t, nil
}

// parseAmount 金額必填
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := parseDecimal("amount", s)
	if err != nil {
		return decimal.Zero, err
	}
	if d == nil {
		return decimal.Zero, domain.ErrAmountMustBePositive
	}
	return *d, nil
}
