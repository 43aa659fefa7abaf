package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage/user"
)

const (
	maxUserNameLength = 255
	maxEmailLength    = 255
	minPasswordLength = 8
	maxPasswordBytes  = 72
)

// User represents a user in the service layer. Accounts is only populated by
// GetUser and ListUsers.
type User struct {
	ID        int64
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	Accounts  []Account
}

// UserCreate is the input for creating a user. Password is plain text.
type UserCreate struct {
	Name     string
	Email    string
	Password string
	IsActive bool
}

// UserUpdate holds the fields to change; nil fields are left alone.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	IsActive *bool
}

func userFromStorage(row *user.User) User {
	return User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: utcPtr(row.UpdatedAt),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
