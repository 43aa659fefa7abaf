package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/notification"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// fakeStore hands the same mocks to reads and to WithTx.
type fakeStore struct {
	reader *storage.Reader
	writer *storage.Writer
	txErr  error
}

func (f *fakeStore) Read() *storage.Reader {
	return f.reader
}

func (f *fakeStore) WithTx(_ context.Context, fn func(*storage.Writer) error) error {
	if f.txErr != nil {
		return f.txErr
	}
	return fn(f.writer)
}

// detachedStore runs the closure on its own goroutine and stops waiting once
// ctx ends, the way a queued write behaves when its caller gives up.
type detachedStore struct {
	*fakeStore
	done chan struct{}
}

func (d *detachedStore) WithTx(ctx context.Context, fn func(*storage.Writer) error) error {
	go func() {
		defer close(d.done)
		_ = fn(d.writer)
	}()
	<-ctx.Done()
	return ctx.Err()
}

type tableMocks struct {
	users         *mockUserTable
	accounts      *mockAccountTable
	categories    *mockCategoryTable
	transactions  *mockTransactionTable
	budgets       *mockBudgetTable
	notifications *mockNotificationTable
}

func newFakeStore() (*fakeStore, *tableMocks) {
	m := &tableMocks{
		users:         new(mockUserTable),
		accounts:      new(mockAccountTable),
		categories:    new(mockCategoryTable),
		transactions:  new(mockTransactionTable),
		budgets:       new(mockBudgetTable),
		notifications: new(mockNotificationTable),
	}
	store := &fakeStore{
		reader: &storage.Reader{
			Users:         m.users,
			Accounts:      m.accounts,
			Categories:    m.categories,
			Transactions:  m.transactions,
			Budgets:       m.budgets,
			Notifications: m.notifications,
		},
		writer: &storage.Writer{
			Users:         m.users,
			Accounts:      m.accounts,
			Categories:    m.categories,
			Transactions:  m.transactions,
			Budgets:       m.budgets,
			Notifications: m.notifications,
		},
	}
	return store, m
}

// -- users --

type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) FindByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) FindByIDForUpdate(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) List(ctx context.Context, filter *user.UserFilter) ([]*user.User, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*user.User)
	return rows, args.Error(1)
}

func (m *mockUserTable) Insert(ctx context.Context, create *user.UserCreate) (*user.User, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) Update(ctx context.Context, id int64, update *user.UserUpdate) (*user.User, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// -- accounts --

type mockAccountTable struct {
	mock.Mock
}

func (m *mockAccountTable) FindByID(ctx context.Context, id int64) (*account.Account, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*account.Account)
	return row, args.Error(1)
}

func (m *mockAccountTable) FindByIDForUpdate(ctx context.Context, id int64) (*account.Account, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*account.Account)
	return row, args.Error(1)
}

func (m *mockAccountTable) List(ctx context.Context, filter *account.AccountFilter) ([]*account.Account, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*account.Account)
	return rows, args.Error(1)
}

func (m *mockAccountTable) Insert(ctx context.Context, create *account.AccountCreate) (*account.Account, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*account.Account)
	return row, args.Error(1)
}

func (m *mockAccountTable) Update(ctx context.Context, id int64, update *account.AccountUpdate) (*account.Account, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*account.Account)
	return row, args.Error(1)
}

func (m *mockAccountTable) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// -- categories --

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) FindByID(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) List(ctx context.Context, filter *category.CategoryFilter) ([]*category.Category, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*category.Category)
	return rows, args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *category.CategoryCreate) (*category.Category, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) Update(ctx context.Context, id int64, update *category.CategoryUpdate) (*category.Category, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// -- transactions --

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) FindByIDForUpdate(ctx context.Context, id int64) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) TotalsByCategory(ctx context.Context, userID int64) ([]*transaction.CategoryTotal, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*transaction.CategoryTotal)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, id int64, update *transaction.TransactionUpdate) (*transaction.Transaction, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// -- budgets --

type mockBudgetTable struct {
	mock.Mock
}

func (m *mockBudgetTable) FindByID(ctx context.Context, id int64) (*budget.Budget, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*budget.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) FindByIDForUpdate(ctx context.Context, id int64) (*budget.Budget, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*budget.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) List(ctx context.Context, filter *budget.BudgetFilter) ([]*budget.Budget, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*budget.Budget)
	return rows, args.Error(1)
}

func (m *mockBudgetTable) Insert(ctx context.Context, create *budget.BudgetCreate) (*budget.Budget, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*budget.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) Update(ctx context.Context, id int64, update *budget.BudgetUpdate) (*budget.Budget, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*budget.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// -- notifications --

type mockNotificationTable struct {
	mock.Mock
}

func (m *mockNotificationTable) FindByID(ctx context.Context, id int64) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*notification.Notification)
	return row, args.Error(1)
}

func (m *mockNotificationTable) List(ctx context.Context, filter *notification.NotificationFilter) ([]*notification.Notification, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*notification.Notification)
	return rows, args.Error(1)
}

func (m *mockNotificationTable) Insert(ctx context.Context, create *notification.NotificationCreate) (*notification.Notification, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*notification.Notification)
	return row, args.Error(1)
}

func (m *mockNotificationTable) MarkRead(ctx context.Context, id int64) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*notification.Notification)
	return row, args.Error(1)
}

func (m *mockNotificationTable) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
