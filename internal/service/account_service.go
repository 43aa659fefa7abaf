package service

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// AccountService handles account business logic.
type AccountService struct {
	store Store
}

// NewAccountService creates a new AccountService.
func NewAccountService(store Store) *AccountService {
	return &AccountService{store: store}
}

// CreateAccount creates an account for an existing user.
func (s *AccountService) CreateAccount(ctx context.Context, create AccountCreate) (*Account, error) {
	name, err := requireText("name", create.Name, maxAccountNameLength)
	if err != nil {
		return nil, err
	}

	var created *account.Account
	err = s.store.WithTx(ctx, func(w *storage.Writer) error {
		if _, err := w.Users.FindByID(ctx, create.UserID); err != nil {
			return err
		}

		var err error
		created, err = w.Accounts.Insert(ctx, &account.AccountCreate{
			UserID:  create.UserID,
			Name:    name,
			Balance: omit.FromPtr(create.Balance),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	converted := accountFromStorage(created)
	return &converted, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*Account, error) {
	row, err := s.store.Read().Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := accountFromStorage(row)
	return &converted, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, filter AccountFilter, cursor *Cursor) ([]Account, *Cursor, error) {
	limit, offset := pageBounds(cursor)

	rows, err := s.store.Read().Accounts.List(ctx, &account.AccountFilter{
		UserID: filter.UserID,
		Limit:  limit + 1,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	return paginate(rows, limit, offset, func(row *account.Account) (Account, error) {
		return accountFromStorage(row), nil
	})
}

// UpdateAccount changes the given fields and sets updated_at. Balances are
// only ever changed here, never as a side effect of transactions.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, update AccountUpdate) (*Account, error) {
	var change account.AccountUpdate
	if update.Name != nil {
		name, err := requireText("name", *update.Name, maxAccountNameLength)
		if err != nil {
			return nil, err
		}
		change.Name = omit.From(name)
	}
	change.Balance = omit.FromPtr(update.Balance)

	var updated *account.Account
	err := s.store.WithTx(ctx, func(w *storage.Writer) error {
		var err error
		updated, err = w.Accounts.Update(ctx, id, &change)
		return err
	})
	if err != nil {
		return nil, err
	}

	converted := accountFromStorage(updated)
	return &converted, nil
}

// DeleteAccount removes an account that no transaction references.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(w *storage.Writer) error {
		return w.Accounts.Delete(ctx, id)
	})
}
