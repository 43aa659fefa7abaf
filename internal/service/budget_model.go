package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage/budget"
)

// Budget represents a budget in the service layer. StartDate is never after
// EndDate.
type Budget struct {
	ID         int64
	UserID     int64
	CategoryID int64
	Amount     float64
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// BudgetCreate is the input for creating a budget.
type BudgetCreate struct {
	UserID     int64
	CategoryID int64
	Amount     float64
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetUpdate holds the fields to change; nil fields are left alone.
type BudgetUpdate struct {
	CategoryID *int64
	Amount     *float64
	StartDate  *time.Time
	EndDate    *time.Time
}

// BudgetFilter narrows ListBudgets.
type BudgetFilter struct {
	UserID     *int64
	CategoryID *int64
}

func budgetFromStorage(row *budget.Budget) Budget {
	return Budget{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Amount:     row.Amount,
		StartDate:  row.StartDate.UTC(),
		EndDate:    row.EndDate.UTC(),
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  utcPtr(row.UpdatedAt),
	}
}
