package service

import (
	"context"
	"strings"

	"github.com/aarondl/opt/omit"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// UserService handles user business logic.
type UserService struct {
	store      Store
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(store Store, bcryptCost int) *UserService {
	return &UserService{store: store, bcryptCost: bcryptCost}
}

// CreateUser stores a new user with a hashed password. Emails are compared
// trimmed and lower-cased.
func (s *UserService) CreateUser(ctx context.Context, create UserCreate) (*User, error) {
	name, err := requireText("name", create.Name, maxUserNameLength)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(create.Email)
	if err != nil {
		return nil, err
	}
	hash, err := s.hashPassword(create.Password)
	if err != nil {
		return nil, err
	}

	var created User
	err = s.store.WithTx(ctx, func(w *storage.Writer) error {
		row, err := w.Users.Insert(ctx, &user.UserCreate{
			Name:     name,
			Email:    email,
			Password: hash,
			IsActive: create.IsActive,
		})
		if err != nil {
			return err
		}
		created = userFromStorage(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	created.Accounts = []Account{}
	return &created, nil
}

// GetUser retrieves a user and their accounts.
func (s *UserService) GetUser(ctx context.Context, id int64) (*User, error) {
	row, err := s.store.Read().Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withAccounts(ctx, row)
}

// ListUsers returns a page of users, each with their accounts.
func (s *UserService) ListUsers(ctx context.Context, cursor *Cursor) ([]User, *Cursor, error) {
	limit, offset := pageBounds(cursor)

	rows, err := s.store.Read().Users.List(ctx, &user.UserFilter{
		Limit:  limit + 1,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	users, nextCursor, err := paginate(rows, limit, offset, func(row *user.User) (User, error) {
		return userFromStorage(row), nil
	})
	if err != nil || len(users) == 0 {
		return nil, nil, err
	}

	ids := make([]int64, len(users))
	for i := range users {
		ids[i] = users[i].ID
		users[i].Accounts = []Account{}
	}
	accounts, err := s.store.Read().Accounts.List(ctx, &account.AccountFilter{UserIDs: ids})
	if err != nil {
		return nil, nil, err
	}

	byUser := make(map[int64]int, len(users))
	for i := range users {
		byUser[users[i].ID] = i
	}
	for _, acc := range accounts {
		if i, ok := byUser[acc.UserID]; ok {
			users[i].Accounts = append(users[i].Accounts, accountFromStorage(acc))
		}
	}

	return users, nextCursor, nil
}

// UpdateUser changes the given fields and sets updated_at.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update UserUpdate) (*User, error) {
	var change user.UserUpdate
	if update.Name != nil {
		name, err := requireText("name", *update.Name, maxUserNameLength)
		if err != nil {
			return nil, err
		}
		change.Name = omit.From(name)
	}
	if update.Email != nil {
		email, err := normalizeEmail(*update.Email)
		if err != nil {
			return nil, err
		}
		change.Email = omit.From(email)
	}
	if update.Password != nil {
		hash, err := s.hashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		change.Password = omit.From(hash)
	}
	change.IsActive = omit.FromPtr(update.IsActive)

	var updated *user.User
	err := s.store.WithTx(ctx, func(w *storage.Writer) error {
		var err error
		updated, err = w.Users.Update(ctx, id, &change)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.withAccounts(ctx, updated)
}

func (s *UserService) withAccounts(ctx context.Context, row *user.User) (*User, error) {
	u := userFromStorage(row)
	accounts, err := s.store.Read().Accounts.List(ctx, &account.AccountFilter{UserID: &row.ID})
	if err != nil {
		return nil, err
	}
	u.Accounts = make([]Account, len(accounts))
	for i, acc := range accounts {
		u.Accounts[i] = accountFromStorage(acc)
	}
	return &u, nil
}

// DeleteUser removes a user. It fails with a constraint error while anything
// still references the user.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(w *storage.Writer) error {
		return w.Users.Delete(ctx, id)
	})
}

func (s *UserService) hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", apperr.Invalid("password", "must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return "", apperr.Invalid("password", "must be at most %d bytes", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) (string, error) {
	normalized, err := requireText("email", strings.ToLower(email), maxEmailLength)
	if err != nil {
		return "", err
	}
	at := strings.Index(normalized, "@")
	if at <= 0 || at == len(normalized)-1 || strings.ContainsAny(normalized, " \t") {
		return "", apperr.Invalid("email", "must be an email address")
	}
	return normalized, nil
}
