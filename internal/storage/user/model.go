package user

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
)

const (
	tableName  = "users"
	entityName = "user"
)

// User represents a users row.
type User struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// UserCreate is the input for inserting a user. Password is already hashed.
type UserCreate struct {
	Name     string
	Email    string
	Password string
	IsActive bool
}

// UserUpdate holds the columns to change; unset fields are left alone.
type UserUpdate struct {
	Name     omit.Val[string]
	Email    omit.Val[string]
	Password omit.Val[string]
	IsActive omit.Val[bool]
}

// UserFilter specifies filters for listing users.
type UserFilter struct {
	Limit  int
	Offset int
}

// IUserReader defines the read operations on users.
type IUserReader interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, filter *UserFilter) ([]*User, error)
}

// IUserWriter defines the operations available inside a transaction.
type IUserWriter interface {
	IUserReader
	FindByIDForUpdate(ctx context.Context, id int64) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Update(ctx context.Context, id int64, update *UserUpdate) (*User, error)
	Delete(ctx context.Context, id int64) error
}
