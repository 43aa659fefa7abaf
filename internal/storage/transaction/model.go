package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/shopspring/decimal"
)

const (
	tableName  = "transactions"
	entityName = "transaction"
)

// TransactionType is the stored ordinal of a transaction type tag.
type TransactionType int16

const (
	TransactionTypeExpense TransactionType = 1
	TransactionTypeIncome  TransactionType = 2
)

// Transaction represents a transactions row.
type Transaction struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	AccountID       int64           `db:"account_id"`
	CategoryID      int64           `db:"category_id"`
	Amount          float64         `db:"amount"`
	Description     *string         `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	Type            TransactionType `db:"type"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       *time.Time      `db:"updated_at"`
}

// TransactionCreate is the input for inserting a transaction.
type TransactionCreate struct {
	UserID          int64
	AccountID       int64
	CategoryID      int64
	Amount          float64
	Description     *string
	TransactionDate time.Time // defaults to now if zero
	Type            TransactionType
}

// TransactionUpdate holds the columns to change; unset fields are left alone.
// Description can be cleared by setting it to null.
type TransactionUpdate struct {
	AccountID       omit.Val[int64]
	CategoryID      omit.Val[int64]
	Amount          omit.Val[float64]
	Description     omitnull.Val[string]
	TransactionDate omit.Val[time.Time]
	Type            omit.Val[TransactionType]
}

// TransactionFilter specifies filters for listing transactions. From and To
// bound transaction_date inclusively.
type TransactionFilter struct {
	UserID     *int64
	AccountID  *int64
	CategoryID *int64
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// CategoryTotal is one group of a user's transactions sharing a category and
// a type.
type CategoryTotal struct {
	CategoryID int64           `db:"category_id"`
	Category   string          `db:"category"`
	Type       TransactionType `db:"type"`
	Count      int64           `db:"count"`
	Total      decimal.Decimal `db:"total"`
}

// ITransactionReader defines the read operations on transactions.
type ITransactionReader interface {
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	TotalsByCategory(ctx context.Context, userID int64) ([]*CategoryTotal, error)
}

// ITransactionWriter defines the operations available inside a transaction.
type ITransactionWriter interface {
	ITransactionReader
	FindByIDForUpdate(ctx context.Context, id int64) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id int64) error
}
