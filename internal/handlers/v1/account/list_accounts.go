package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/listing"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	listing.CursorQuery
	UserID int64 `query:"user_id" minimum:"0" doc:"Only accounts of this user"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body listing.Page[projection.Account]
}

type accountLister interface {
	ListAccounts(ctx context.Context, filter service.AccountFilter, cursor *service.Cursor) ([]service.Account, *service.Cursor, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns a paginated list of accounts, optionally of one user.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listAccountsMs")
	accounts, next, err := h.AccountService.ListAccounts(ctx, service.AccountFilter{
		UserID: listing.OptionalID(input.UserID),
	}, input.Cursor())
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "list accounts", err)
	}

	logData.AddData("accountCount", len(accounts))

	return &ListAccountsOutput{Body: listing.NewPage(projection.FromAccounts(accounts), next)}, nil
}
