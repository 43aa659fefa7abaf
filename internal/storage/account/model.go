package account

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
)

const (
	tableName  = "accounts"
	entityName = "account"
)

// Account represents an accounts row.
type Account struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	Name      string     `db:"name"`
	Balance   float64    `db:"balance"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// AccountCreate is the input for inserting an account. An unset Balance takes
// the column default of 0.0.
type AccountCreate struct {
	UserID  int64
	Name    string
	Balance omit.Val[float64]
}

// AccountUpdate holds the columns to change; unset fields are left alone.
type AccountUpdate struct {
	Name    omit.Val[string]
	Balance omit.Val[float64]
}

// AccountFilter specifies filters for listing accounts. UserIDs matches any
// of the given owners.
type AccountFilter struct {
	UserID  *int64
	UserIDs []int64
	Limit   int
	Offset  int
}

// IAccountReader defines the read operations on accounts.
type IAccountReader interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
}

// IAccountWriter defines the operations available inside a transaction.
type IAccountWriter interface {
	IAccountReader
	FindByIDForUpdate(ctx context.Context, id int64) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	Update(ctx context.Context, id int64, update *AccountUpdate) (*Account, error)
	Delete(ctx context.Context, id int64) error
}
