package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage/account"
)

const maxAccountNameLength = 100

// Account represents an account in the service layer.
type Account struct {
	ID        int64
	UserID    int64
	Name      string
	Balance   float64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// AccountCreate is the input for creating an account. A nil Balance stores
// the default of 0.0.
type AccountCreate struct {
	UserID  int64
	Name    string
	Balance *float64
}

// AccountUpdate holds the fields to change; nil fields are left alone.
type AccountUpdate struct {
	Name    *string
	Balance *float64
}

// AccountFilter narrows ListAccounts.
type AccountFilter struct {
	UserID *int64
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: utcPtr(row.UpdatedAt),
	}
}
