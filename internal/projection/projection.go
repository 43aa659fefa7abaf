// Package projection renders service entities as the JSON records returned
// by the API. Projections never fail.
package projection

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// DateLayout renders dates as DD/MM/YYYY HH:MM:SS.
const DateLayout = "02/01/2006 15:04:05"

func FormatTime(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatOptionalTime returns nil for a nil time so that it encodes as null.
func FormatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := FormatTime(*t)
	return &formatted
}

// ParseTime accepts DateLayout or RFC 3339 and returns the time in UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err == nil {
		return t, nil
	}
	if t, rfcErr := time.Parse(time.RFC3339, s); rfcErr == nil {
		return t.UTC(), nil
	}
	return time.Time{}, err
}

type User struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
	Accounts []Account `json:"accounts"`
}

type Account struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

type Category struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Type     string `json:"type" enum:"EXPENSE,INCOME"`
}

type Transaction struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	AccountID       int64   `json:"account_id"`
	CategoryID      int64   `json:"category_id"`
	Amount          float64 `json:"amount"`
	Description     *string `json:"description"`
	TransactionDate string  `json:"transaction_date"`
	Type            string  `json:"type" enum:"EXPENSE,INCOME"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       *string `json:"updated_at"`
}

type Budget struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	CategoryID int64   `json:"category_id"`
	Amount     float64 `json:"amount"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  *string `json:"updated_at"`
}

type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// FromUser always renders accounts as a list, empty when there are none.
func FromUser(u *service.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		IsActive: u.IsActive,
		Accounts: FromAccounts(u.Accounts),
	}
}

func FromAccount(a *service.Account) Account {
	return Account{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Balance:   a.Balance,
		CreatedAt: FormatTime(a.CreatedAt),
		UpdatedAt: FormatOptionalTime(a.UpdatedAt),
	}
}

func FromCategory(c *service.Category) Category {
	return Category{
		ID:       c.ID,
		Category: c.Category,
		Type:     c.Type.String(),
	}
}

func FromTransaction(t *service.Transaction) Transaction {
	return Transaction{
		ID:              t.ID,
		UserID:          t.UserID,
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		Description:     t.Description,
		TransactionDate: FormatTime(t.TransactionDate),
		Type:            t.Type.String(),
		CreatedAt:       FormatTime(t.CreatedAt),
		UpdatedAt:       FormatOptionalTime(t.UpdatedAt),
	}
}

func FromBudget(b *service.Budget) Budget {
	return Budget{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		StartDate:  FormatTime(b.StartDate),
		EndDate:    FormatTime(b.EndDate),
		CreatedAt:  FormatTime(b.CreatedAt),
		UpdatedAt:  FormatOptionalTime(b.UpdatedAt),
	}
}

func FromNotification(n *service.Notification) Notification {
	return Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: FormatTime(n.CreatedAt),
	}
}
