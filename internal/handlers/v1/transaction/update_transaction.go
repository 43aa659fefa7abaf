package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

type UpdateTransactionInput struct {
	IDPath
	Body UpdateTransactionBody
}

// UpdateTransactionBody lists the fields to change. An empty description
// removes it.
type UpdateTransactionBody struct {
	AccountID       *int64   `json:"account_id,omitempty" minimum:"1"`
	CategoryID      *int64   `json:"category_id,omitempty" minimum:"1"`
	Amount          *float64 `json:"amount,omitempty"`
	Description     *string  `json:"description,omitempty"`
	TransactionDate *string  `json:"transaction_date,omitempty" doc:"DD/MM/YYYY HH:MM:SS or RFC 3339"`
	Type            *string  `json:"type,omitempty" doc:"EXPENSE or INCOME, any case"`
}

type UpdateTransactionOutput struct {
	Body projection.Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id int64, update service.TransactionUpdate) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update a transaction",
		Description: "Changes the given fields. A new account must belong to the transaction's user.",
		Tags:        []string{tag},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.TransactionUpdate, error) {
	update := service.TransactionUpdate{
		AccountID:  input.Body.AccountID,
		CategoryID: input.Body.CategoryID,
		Amount:     input.Body.Amount,
	}

	if d := input.Body.Description; d != nil {
		if *d == "" {
			update.ClearDescription = true
		} else {
			update.Description = d
		}
	}

	if input.Body.TransactionDate != nil {
		t, err := parseDate("transaction_date", *input.Body.TransactionDate)
		if err != nil {
			return service.TransactionUpdate{}, err
		}
		update.TransactionDate = &t
	}

	if input.Body.Type != nil {
		t, err := parseType(*input.Body.Type)
		if err != nil {
			return service.TransactionUpdate{}, err
		}
		update.Type = &t
	}

	return update, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("transactionID", input.ID)

	update, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("updateTransactionMs")
	updated, err := h.TransactionService.UpdateTransaction(ctx, input.ID, update)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "update transaction", err)
	}

	return &UpdateTransactionOutput{Body: projection.FromTransaction(updated)}, nil
}
