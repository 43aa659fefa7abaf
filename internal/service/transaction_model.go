package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              int64
	UserID          int64
	AccountID       int64
	CategoryID      int64
	Amount          float64
	Description     *string
	TransactionDate time.Time
	Type            TransactionType
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// TransactionCreate is the input for creating a transaction. A zero
// TransactionDate stores the insertion time.
type TransactionCreate struct {
	UserID          int64
	AccountID       int64
	CategoryID      int64
	Amount          float64
	Description     *string
	TransactionDate time.Time
	Type            TransactionType
}

// TransactionUpdate holds the fields to change; nil fields are left alone.
// ClearDescription removes the description and wins over Description.
type TransactionUpdate struct {
	AccountID        *int64
	CategoryID       *int64
	Amount           *float64
	Description      *string
	ClearDescription bool
	TransactionDate  *time.Time
	Type             *TransactionType
}

// TransactionFilter narrows ListTransactions. From and To bound the
// transaction date inclusively.
type TransactionFilter struct {
	UserID     *int64
	AccountID  *int64
	CategoryID *int64
	From       *time.Time
	To         *time.Time
}

func transactionFromStorage(row *transaction.Transaction) (Transaction, error) {
	transactionType, err := transactionTypeFromStorage(row.Type)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		AccountID:       row.AccountID,
		CategoryID:      row.CategoryID,
		Amount:          row.Amount,
		Description:     row.Description,
		TransactionDate: row.TransactionDate.UTC(),
		Type:            transactionType,
		CreatedAt:       row.CreatedAt.UTC(),
		UpdatedAt:       utcPtr(row.UpdatedAt),
	}, nil
}
