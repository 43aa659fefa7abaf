package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

func newSummaryTestService(t *testing.T) (*SummaryService, *tableMocks) {
	t.Helper()
	store, mocks := newFakeStore()
	t.Cleanup(func() {
		mocks.users.AssertExpectations(t)
		mocks.transactions.AssertExpectations(t)
	})
	return NewSummaryService(store), mocks
}

func TestGetSummary_NoTransactions(t *testing.T) {
	svc, mocks := newSummaryTestService(t)

	mocks.users.On("FindByID", mock.Anything, int64(1)).Return(&user.User{ID: 1}, nil)
	mocks.transactions.On("TotalsByCategory", mock.Anything, int64(1)).Return([]*transaction.CategoryTotal{}, nil)

	summary, err := svc.GetSummary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TransactionCount)
	assert.Len(t, summary.CountByType, 2)
	assert.Len(t, summary.TotalByType, 2)
	assert.True(t, summary.TotalByType[TransactionTypeIncome].IsZero())
	assert.NotNil(t, summary.Categories)
	assert.Empty(t, summary.Categories)
}

func TestGetSummary_Totals(t *testing.T) {
	svc, mocks := newSummaryTestService(t)

	mocks.users.On("FindByID", mock.Anything, int64(1)).Return(&user.User{ID: 1}, nil)
	mocks.transactions.On("TotalsByCategory", mock.Anything, int64(1)).Return([]*transaction.CategoryTotal{
		{CategoryID: 1, Category: "Groceries", Type: transaction.TransactionTypeExpense, Count: 2, Total: decimal.RequireFromString("-30.10")},
		{CategoryID: 2, Category: "Rent", Type: transaction.TransactionTypeExpense, Count: 1, Total: decimal.RequireFromString("-900")},
		{CategoryID: 3, Category: "Salary", Type: transaction.TransactionTypeIncome, Count: 1, Total: decimal.RequireFromString("2500.5")},
	}, nil)

	summary, err := svc.GetSummary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.TransactionCount)
	assert.Equal(t, int64(3), summary.CountByType[TransactionTypeExpense])
	assert.Equal(t, int64(1), summary.CountByType[TransactionTypeIncome])
	assert.Equal(t, "-930.1", summary.TotalByType[TransactionTypeExpense].String())
	assert.Equal(t, "2500.5", summary.TotalByType[TransactionTypeIncome].String())
	require.Len(t, summary.Categories, 3)
	assert.Equal(t, "Rent", summary.Categories[1].Category)
}

func TestGetSummary_UserMissing(t *testing.T) {
	svc, mocks := newSummaryTestService(t)

	mocks.users.On("FindByID", mock.Anything, int64(1)).Return(nil, apperr.NotFound("user", 1))

	_, err := svc.GetSummary(context.Background(), 1)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	mocks.transactions.AssertNotCalled(t, "TotalsByCategory", mock.Anything, mock.Anything)
}
