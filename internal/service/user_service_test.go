package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

func newUserTestService(t *testing.T) (*UserService, *tableMocks) {
	t.Helper()
	store, mocks := newFakeStore()
	t.Cleanup(func() {
		mocks.users.AssertExpectations(t)
		mocks.accounts.AssertExpectations(t)
	})
	return NewUserService(store, bcrypt.MinCost), mocks
}

func makeStorageUsers(n int) []*user.User {
	rows := make([]*user.User, n)
	for i := range rows {
		rows[i] = &user.User{
			ID:        int64(i + 1),
			Name:      "User",
			Email:     "user@example.com",
			IsActive:  true,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return rows
}

// -- CreateUser tests --

func TestCreateUser_HashesPasswordAndNormalizesEmail(t *testing.T) {
	svc, mocks := newUserTestService(t)

	var stored *user.UserCreate
	mocks.users.On("Insert", mock.Anything, mock.MatchedBy(func(c *user.UserCreate) bool {
		stored = c
		return true
	})).Return(&user.User{ID: 1, Name: "Ada", Email: "ada@example.com", IsActive: true}, nil)

	created, err := svc.CreateUser(context.Background(), UserCreate{
		Name:     "Ada",
		Email:    "  Ada@Example.COM ",
		Password: "correct horse",
		IsActive: true,
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.NotEqual(t, "correct horse", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct horse")))
	assert.Equal(t, int64(1), created.ID)
	assert.NotNil(t, created.Accounts)
	assert.Empty(t, created.Accounts)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, mocks := newUserTestService(t)

	dup := &apperr.ConstraintError{Kind: apperr.ConstraintUnique, Constraint: "uq_users_email", Field: "email"}
	mocks.users.On("Insert", mock.Anything, mock.Anything).Return(nil, dup)

	created, err := svc.CreateUser(context.Background(), UserCreate{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "password1",
	})

	assert.Nil(t, created)
	var ce *apperr.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "email", ce.Field)
}

func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name   string
		create UserCreate
		field  string
	}{
		{"empty name", UserCreate{Name: " ", Email: "a@b.c", Password: "password1"}, "name"},
		{"long name", UserCreate{Name: strings.Repeat("n", maxUserNameLength+1), Email: "a@b.c", Password: "password1"}, "name"},
		{"missing at", UserCreate{Name: "Ada", Email: "ada.example.com", Password: "password1"}, "email"},
		{"at at end", UserCreate{Name: "Ada", Email: "ada@", Password: "password1"}, "email"},
		{"long email", UserCreate{Name: "Ada", Email: strings.Repeat("e", maxEmailLength) + "@b.c", Password: "password1"}, "email"},
		{"short password", UserCreate{Name: "Ada", Email: "a@b.c", Password: "short"}, "password"},
		{"password over bcrypt limit", UserCreate{Name: "Ada", Email: "a@b.c", Password: strings.Repeat("p", maxPasswordBytes+1)}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserTestService(t)

			_, err := svc.CreateUser(context.Background(), tt.create)

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

// -- GetUser tests --

func TestGetUser_WithAccounts(t *testing.T) {
	svc, mocks := newUserTestService(t)

	mocks.users.On("FindByID", mock.Anything, int64(1)).Return(&user.User{ID: 1, Name: "Ada"}, nil)
	mocks.accounts.On("List", mock.Anything, mock.MatchedBy(func(f *account.AccountFilter) bool {
		return f.UserID != nil && *f.UserID == 1 && f.Limit == 0
	})).Return([]*account.Account{{ID: 10, UserID: 1, Name: "Checking"}}, nil)

	u, err := svc.GetUser(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, u.Accounts, 1)
	assert.Equal(t, int64(10), u.Accounts[0].ID)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, mocks := newUserTestService(t)

	mocks.users.On("FindByID", mock.Anything, int64(404)).Return(nil, apperr.NotFound("user", 404))

	_, err := svc.GetUser(context.Background(), 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

// -- ListUsers tests --

func TestListUsers_AccountsLoadedInOneQuery(t *testing.T) {
	svc, mocks := newUserTestService(t)

	mocks.users.On("List", mock.Anything, mock.Anything).Return(makeStorageUsers(3), nil)
	mocks.accounts.On("List", mock.Anything, mock.MatchedBy(func(f *account.AccountFilter) bool {
		return assert.ObjectsAreEqual([]int64{1, 2, 3}, f.UserIDs)
	})).Return([]*account.Account{
		{ID: 10, UserID: 1},
		{ID: 11, UserID: 3},
		{ID: 12, UserID: 3},
	}, nil).Once()

	users, next, err := svc.ListUsers(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, users, 3)
	assert.Len(t, users[0].Accounts, 1)
	assert.NotNil(t, users[1].Accounts)
	assert.Empty(t, users[1].Accounts)
	assert.Len(t, users[2].Accounts, 2)
}

func TestListUsers_NextCursor(t *testing.T) {
	svc, mocks := newUserTestService(t)

	mocks.users.On("List", mock.Anything, mock.MatchedBy(func(f *user.UserFilter) bool {
		return f.Limit == 3 && f.Offset == 4
	})).Return(makeStorageUsers(3), nil)
	mocks.accounts.On("List", mock.Anything, mock.Anything).Return([]*account.Account{}, nil)

	users, next, err := svc.ListUsers(context.Background(), &Cursor{Position: 4, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, &Cursor{Position: 6, Limit: 2}, next)
}

func TestListUsers_Empty(t *testing.T) {
	svc, mocks := newUserTestService(t)

	mocks.users.On("List", mock.Anything, mock.Anything).Return([]*user.User{}, nil)

	users, next, err := svc.ListUsers(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, users)
	assert.Nil(t, next)
	mocks.accounts.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

// -- UpdateUser tests --

func TestUpdateUser_PasswordRehashedOnlyWhenGiven(t *testing.T) {
	svc, mocks := newUserTestService(t)

	mocks.users.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(u *user.UserUpdate) bool {
		name, ok := u.Name.Get()
		return ok && name == "Grace" && u.Password.IsUnset() && u.Email.IsUnset()
	})).Return(&user.User{ID: 1, Name: "Grace"}, nil)
	mocks.accounts.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	u, err := svc.UpdateUser(context.Background(), 1, UserUpdate{Name: stringPtr("Grace")})

	require.NoError(t, err)
	assert.Equal(t, "Grace", u.Name)
}

func TestUpdateUser_NewPassword(t *testing.T) {
	svc, mocks := newUserTestService(t)

	mocks.users.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(u *user.UserUpdate) bool {
		hash, ok := u.Password.Get()
		return ok && bcrypt.CompareHashAndPassword([]byte(hash), []byte("new password")) == nil
	})).Return(&user.User{ID: 1}, nil)
	mocks.accounts.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.UpdateUser(context.Background(), 1, UserUpdate{Password: stringPtr("new password")})
	assert.NoError(t, err)
}

// -- DeleteUser tests --

func TestDeleteUser_Referenced(t *testing.T) {
	svc, mocks := newUserTestService(t)

	mocks.users.On("Delete", mock.Anything, int64(1)).
		Return(&apperr.ConstraintError{Kind: apperr.ConstraintForeignKey, Constraint: "fk_accounts_user"})

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1), apperr.ErrConstraint)
}
