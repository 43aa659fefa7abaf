package budget

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
)

const (
	tableName  = "budgets"
	entityName = "budget"
)

// Budget represents a budgets row.
type Budget struct {
	ID         int64      `db:"id"`
	UserID     int64      `db:"user_id"`
	CategoryID int64      `db:"category_id"`
	Amount     float64    `db:"amount"`
	StartDate  time.Time  `db:"start_date"`
	EndDate    time.Time  `db:"end_date"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// BudgetCreate is the input for inserting a budget.
type BudgetCreate struct {
	UserID     int64
	CategoryID int64
	Amount     float64
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetUpdate holds the columns to change; unset fields are left alone.
type BudgetUpdate struct {
	CategoryID omit.Val[int64]
	Amount     omit.Val[float64]
	StartDate  omit.Val[time.Time]
	EndDate    omit.Val[time.Time]
}

// BudgetFilter specifies filters for listing budgets.
type BudgetFilter struct {
	UserID     *int64
	CategoryID *int64
	Limit      int
	Offset     int
}

// IBudgetReader defines the read operations on budgets.
type IBudgetReader interface {
	FindByID(ctx context.Context, id int64) (*Budget, error)
	List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error)
}

// IBudgetWriter defines the operations available inside a transaction.
type IBudgetWriter interface {
	IBudgetReader
	FindByIDForUpdate(ctx context.Context, id int64) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	Update(ctx context.Context, id int64, update *BudgetUpdate) (*Budget, error)
	Delete(ctx context.Context, id int64) error
}
