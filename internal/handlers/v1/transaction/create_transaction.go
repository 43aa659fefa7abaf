package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionBody is the request body fields for creating a transaction.
type CreateTransactionBody struct {
	UserID          int64   `json:"user_id" minimum:"1" doc:"Owning user"`
	AccountID       int64   `json:"account_id" minimum:"1" doc:"Account of the user the transaction is booked on"`
	CategoryID      int64   `json:"category_id" minimum:"1" doc:"Category of the transaction"`
	Amount          float64 `json:"amount,omitempty" doc:"Signed amount, defaults to 0.0"`
	Description     *string `json:"description,omitempty" doc:"Free text"`
	TransactionDate string  `json:"transaction_date,omitempty" doc:"DD/MM/YYYY HH:MM:SS or RFC 3339, defaults to now"`
	Type            string  `json:"type" doc:"EXPENSE or INCOME, any case"`
}

// CreateTransactionOutput is the response for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   projection.Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transactions",
		Summary:     "Create a transaction",
		Description: "Records a transaction on an account of the user. The account balance is not changed.",
		Tags:        []string{tag},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	transactionType, err := parseType(input.Body.Type)
	if err != nil {
		return service.TransactionCreate{}, err
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = parseDate("transaction_date", input.Body.TransactionDate)
		if err != nil {
			return service.TransactionCreate{}, err
		}
	}

	// An empty description is stored as none, the same as clearing it on update.
	description := input.Body.Description
	if description != nil && *description == "" {
		description = nil
	}

	return service.TransactionCreate{
		UserID:          input.Body.UserID,
		AccountID:       input.Body.AccountID,
		CategoryID:      input.Body.CategoryID,
		Amount:          input.Body.Amount,
		Description:     description,
		TransactionDate: transactionDate,
		Type:            transactionType,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createTransactionMs")
	created, err := h.TransactionService.CreateTransaction(ctx, create)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "create transaction", err)
	}

	logData.AddData("transactionID", created.ID)

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   projection.FromTransaction(created),
	}, nil
}
