package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/openapi"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

// mockTransactionService is a mock for transactionService.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id int64) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, filter service.TransactionFilter, cursor *service.Cursor) ([]service.Transaction, *service.Cursor, error) {
	args := m.Called(ctx, filter, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.Cursor)
	return txs, next, args.Error(2)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id int64, update service.TransactionUpdate) (*service.Transaction, error) {
	args := m.Called(ctx, id, update)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// newTestAPI registers the handlers against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, openapi.Config())
	Register(api, svc)
	return api
}

var txDate = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func storedTransaction() *service.Transaction {
	return &service.Transaction{
		ID:              9,
		UserID:          1,
		AccountID:       2,
		CategoryID:      3,
		Amount:          -20,
		TransactionDate: txDate,
		Type:            service.TransactionTypeExpense,
		CreatedAt:       txDate,
	}
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	description := "Coffee"
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			UserID:          1,
			AccountID:       2,
			CategoryID:      3,
			Amount:          -4.5,
			Description:     &description,
			TransactionDate: "15/01/2025 10:30:00",
			Type:            "expense",
		},
	}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), create.AccountID)
	assert.Equal(t, -4.5, create.Amount)
	assert.Equal(t, "Coffee", *create.Description)
	assert.Equal(t, service.TransactionTypeExpense, create.Type)
	assert.Equal(t, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), create.TransactionDate)
}

func TestParseCreateTransactionInput_RFC3339Date(t *testing.T) {
	input := &CreateTransactionInput{Body: CreateTransactionBody{Type: "INCOME", TransactionDate: "2025-01-15T10:30:00Z"}}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, create.TransactionDate.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))
}

func TestParseCreateTransactionInput_ValidInputWithoutDate(t *testing.T) {
	input := &CreateTransactionInput{Body: CreateTransactionBody{UserID: 1, AccountID: 2, CategoryID: 3, Type: "INCOME"}}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, create.TransactionDate.IsZero())
	assert.Nil(t, create.Description)
}

func TestParseCreateTransactionInput_EmptyDescriptionIsNone(t *testing.T) {
	empty := ""
	input := &CreateTransactionInput{Body: CreateTransactionBody{UserID: 1, AccountID: 2, CategoryID: 3, Type: "EXPENSE", Description: &empty}}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Nil(t, create.Description)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(c service.TransactionCreate) bool {
		return c.UserID == 1 &&
			c.AccountID == 2 &&
			c.CategoryID == 3 &&
			c.Amount == -20 &&
			c.Type == service.TransactionTypeExpense &&
			c.TransactionDate.Equal(txDate)
	})).Return(storedTransaction(), nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		UserID:          1,
		AccountID:       2,
		CategoryID:      3,
		Amount:          -20,
		TransactionDate: txDate.Format(time.RFC3339),
		Type:            "EXPENSE",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body projection.Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(9), body.ID)
	assert.Equal(t, "EXPENSE", body.Type)
	assert.Equal(t, "01/06/2025 12:00:00", body.TransactionDate)
	assert.Nil(t, body.UpdatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", map[string]any{
		"user_id": 1,
		// account_id, category_id, type omitted
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		UserID:     1,
		AccountID:  2,
		CategoryID: 3,
		Type:       "REFUND",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.type")
	mockSvc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_InvalidTransactionDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		UserID:          1,
		AccountID:       2,
		CategoryID:      3,
		Type:            "EXPENSE",
		TransactionDate: "not-a-date",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.transaction_date")
	mockSvc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_AccountMissing(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, apperr.NotFound("account", 2))

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{UserID: 1, AccountID: 2, CategoryID: 3, Type: "EXPENSE"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransaction_AccountOfAnotherUser(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, apperr.Invalid("account_id", "account 2 does not belong to user 1"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{UserID: 1, AccountID: 2, CategoryID: 3, Type: "EXPENSE"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.account_id")
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{UserID: 1, AccountID: 2, CategoryID: 3, Type: "EXPENSE"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

// -- update and delete --

func TestParseUpdateTransactionInput_EmptyDescriptionClears(t *testing.T) {
	empty := ""
	update, err := parseUpdateTransactionInput(&UpdateTransactionInput{Body: UpdateTransactionBody{Description: &empty}})

	assert.NoError(t, err)
	assert.True(t, update.ClearDescription)
	assert.Nil(t, update.Description)
}

func TestHTTP_UpdateTransaction_Fields(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, int64(9), mock.MatchedBy(func(u service.TransactionUpdate) bool {
		return u.Amount != nil && *u.Amount == -25 &&
			u.Type != nil && *u.Type == service.TransactionTypeIncome &&
			u.TransactionDate != nil && u.TransactionDate.Equal(txDate) &&
			u.AccountID == nil && !u.ClearDescription
	})).Return(storedTransaction(), nil)

	resp := newTestAPI(t, mockSvc).Patch("/v1/transactions/9", map[string]any{
		"amount":           -25,
		"type":             "income",
		"transaction_date": "01/06/2025 12:00:00",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, int64(9), mock.Anything).Return(nil, apperr.NotFound("transaction", 9))

	resp := newTestAPI(t, mockSvc).Patch("/v1/transactions/9", map[string]any{"amount": 1})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetTransaction(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransaction", mock.Anything, int64(9)).Return(storedTransaction(), nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/transactions/9")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"description":null`)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, int64(9)).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/transactions/9")

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
