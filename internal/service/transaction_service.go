package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	store Store
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store Store) *TransactionService {
	return &TransactionService{store: store}
}

// CreateTransaction records a transaction after checking that the user,
// account and category exist and that the account belongs to the user. The
// account balance is left untouched.
func (s *TransactionService) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	if !create.Type.Valid() {
		return nil, apperr.Invalid("type", "must be EXPENSE or INCOME")
	}

	var created *transaction.Transaction
	err := s.store.WithTx(ctx, func(w *storage.Writer) error {
		if _, err := w.Users.FindByID(ctx, create.UserID); err != nil {
			return err
		}
		if err := checkAccountOwner(ctx, w, create.AccountID, create.UserID); err != nil {
			return err
		}
		if _, err := w.Categories.FindByID(ctx, create.CategoryID); err != nil {
			return err
		}

		var err error
		created, err = w.Transactions.Insert(ctx, &transaction.TransactionCreate{
			UserID:          create.UserID,
			AccountID:       create.AccountID,
			CategoryID:      create.CategoryID,
			Amount:          create.Amount,
			Description:     create.Description,
			TransactionDate: create.TransactionDate,
			Type:            transactionTypeToStorage(create.Type),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	converted, err := transactionFromStorage(created)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.store.Read().Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted, err := transactionFromStorage(row)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// ListTransactions returns a page of transactions using cursor pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionFilter, cursor *Cursor) ([]Transaction, *Cursor, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, nil, apperr.Invalid("to", "must not be before from")
	}

	limit, offset := pageBounds(cursor)

	rows, err := s.store.Read().Transactions.List(ctx, &transaction.TransactionFilter{
		UserID:     filter.UserID,
		AccountID:  filter.AccountID,
		CategoryID: filter.CategoryID,
		From:       filter.From,
		To:         filter.To,
		Limit:      limit + 1,
		Offset:     offset,
	})
	if err != nil {
		return nil, nil, err
	}

	return paginate(rows, limit, offset, transactionFromStorage)
}

// UpdateTransaction changes the given fields and sets updated_at. A new
// account must belong to the transaction's user.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) (*Transaction, error) {
	change := transaction.TransactionUpdate{
		AccountID:       omit.FromPtr(update.AccountID),
		CategoryID:      omit.FromPtr(update.CategoryID),
		Amount:          omit.FromPtr(update.Amount),
		TransactionDate: omit.FromPtr(update.TransactionDate),
	}
	switch {
	case update.ClearDescription:
		change.Description = omitnull.FromPtr[string](nil)
	case update.Description != nil:
		change.Description = omitnull.From(*update.Description)
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, apperr.Invalid("type", "must be EXPENSE or INCOME")
		}
		change.Type = omit.From(transactionTypeToStorage(*update.Type))
	}

	var updated *transaction.Transaction
	err := s.store.WithTx(ctx, func(w *storage.Writer) error {
		existing, err := w.Transactions.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if update.AccountID != nil {
			if err := checkAccountOwner(ctx, w, *update.AccountID, existing.UserID); err != nil {
				return err
			}
		}
		if update.CategoryID != nil {
			if _, err := w.Categories.FindByID(ctx, *update.CategoryID); err != nil {
				return err
			}
		}

		updated, err = w.Transactions.Update(ctx, id, &change)
		return err
	})
	if err != nil {
		return nil, err
	}

	converted, err := transactionFromStorage(updated)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// DeleteTransaction removes a transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(w *storage.Writer) error {
		return w.Transactions.Delete(ctx, id)
	})
}

func checkAccountOwner(ctx context.Context, w *storage.Writer, accountID, userID int64) error {
	acc, err := w.Accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc.UserID != userID {
		return apperr.Invalid("account_id", "account %d does not belong to user %d", accountID, userID)
	}
	return nil
}
