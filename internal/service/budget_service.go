package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	store Store
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store Store) *BudgetService {
	return &BudgetService{store: store}
}

// CreateBudget stores a budget for an existing user and category.
func (s *BudgetService) CreateBudget(ctx context.Context, create BudgetCreate) (*Budget, error) {
	if err := validatePeriod(create.StartDate, create.EndDate); err != nil {
		return nil, err
	}

	var created *budget.Budget
	err := s.store.WithTx(ctx, func(w *storage.Writer) error {
		if _, err := w.Users.FindByID(ctx, create.UserID); err != nil {
			return err
		}
		if _, err := w.Categories.FindByID(ctx, create.CategoryID); err != nil {
			return err
		}

		var err error
		created, err = w.Budgets.Insert(ctx, &budget.BudgetCreate{
			UserID:     create.UserID,
			CategoryID: create.CategoryID,
			Amount:     create.Amount,
			StartDate:  create.StartDate,
			EndDate:    create.EndDate,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	converted := budgetFromStorage(created)
	return &converted, nil
}

// GetBudget retrieves a budget by ID.
func (s *BudgetService) GetBudget(ctx context.Context, id int64) (*Budget, error) {
	row, err := s.store.Read().Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := budgetFromStorage(row)
	return &converted, nil
}

// ListBudgets returns a page of budgets using cursor pagination.
func (s *BudgetService) ListBudgets(ctx context.Context, filter BudgetFilter, cursor *Cursor) ([]Budget, *Cursor, error) {
	limit, offset := pageBounds(cursor)

	rows, err := s.store.Read().Budgets.List(ctx, &budget.BudgetFilter{
		UserID:     filter.UserID,
		CategoryID: filter.CategoryID,
		Limit:      limit + 1,
		Offset:     offset,
	})
	if err != nil {
		return nil, nil, err
	}

	return paginate(rows, limit, offset, func(row *budget.Budget) (Budget, error) {
		return budgetFromStorage(row), nil
	})
}

// UpdateBudget changes the given fields and sets updated_at. The period is
// checked against the merged row while it is locked.
func (s *BudgetService) UpdateBudget(ctx context.Context, id int64, update BudgetUpdate) (*Budget, error) {
	change := budget.BudgetUpdate{
		CategoryID: omit.FromPtr(update.CategoryID),
		Amount:     omit.FromPtr(update.Amount),
		StartDate:  omit.FromPtr(update.StartDate),
		EndDate:    omit.FromPtr(update.EndDate),
	}

	var updated *budget.Budget
	err := s.store.WithTx(ctx, func(w *storage.Writer) error {
		existing, err := w.Budgets.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		start, end := existing.StartDate, existing.EndDate
		if update.StartDate != nil {
			start = *update.StartDate
		}
		if update.EndDate != nil {
			end = *update.EndDate
		}
		if err := validatePeriod(start, end); err != nil {
			return err
		}

		if update.CategoryID != nil {
			if _, err := w.Categories.FindByID(ctx, *update.CategoryID); err != nil {
				return err
			}
		}

		updated, err = w.Budgets.Update(ctx, id, &change)
		return err
	})
	if err != nil {
		return nil, err
	}

	converted := budgetFromStorage(updated)
	return &converted, nil
}

// DeleteBudget removes a budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(w *storage.Writer) error {
		return w.Budgets.Delete(ctx, id)
	})
}

func validatePeriod(start, end time.Time) error {
	if start.IsZero() {
		return apperr.Invalid("start_date", "is required")
	}
	if end.IsZero() {
		return apperr.Invalid("end_date", "is required")
	}
	if end.Before(start) {
		return apperr.Invalid("end_date", "must not be before start_date")
	}
	return nil
}
