package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/listing"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	listing.CursorQuery
	UserID     int64  `query:"user_id" minimum:"0" doc:"Only transactions of this user"`
	AccountID  int64  `query:"account_id" minimum:"0" doc:"Only transactions on this account"`
	CategoryID int64  `query:"category_id" minimum:"0" doc:"Only transactions in this category"`
	From       string `query:"from" doc:"Earliest transaction_date, inclusive"`
	To         string `query:"to" doc:"Latest transaction_date, inclusive"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body listing.Page[projection.Transaction]
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter service.TransactionFilter, cursor *service.Cursor) ([]service.Transaction, *service.Cursor, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a paginated list of transactions filtered by user, account, category and date range.",
		Tags:        []string{tag},
	}, h.handle)
}

// parseListTransactionsInput turns the query into a filter. Zero ids and
// empty dates mean no restriction.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionFilter, error) {
	filter := service.TransactionFilter{
		UserID:     listing.OptionalID(input.UserID),
		AccountID:  listing.OptionalID(input.AccountID),
		CategoryID: listing.OptionalID(input.CategoryID),
	}

	var err error
	if filter.From, err = optionalQueryDate("from", input.From); err != nil {
		return service.TransactionFilter{}, err
	}
	if filter.To, err = optionalQueryDate("to", input.To); err != nil {
		return service.TransactionFilter{}, err
	}
	return filter, nil
}

func optionalQueryDate(param, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := projection.ParseTime(value)
	if err != nil {
		return nil, apierror.InvalidQuery(param, value, err)
	}
	return &t, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	transactions, next, err := h.TransactionService.ListTransactions(ctx, filter, input.Cursor())
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "list transactions", err)
	}

	logData.AddData("transactionCount", len(transactions))

	return &ListTransactionsOutput{Body: listing.NewPage(projection.FromTransactions(transactions), next)}, nil
}
