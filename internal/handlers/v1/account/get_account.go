package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

type GetAccountOutput struct {
	Body projection.Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, id int64) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/accounts/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}",
		Summary:     "Get an account",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *IDPath) (*GetAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("accountID", input.ID)

	stopTimer := logData.AddTiming("getAccountMs")
	acc, err := h.AccountService.GetAccount(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "get account", err)
	}

	return &GetAccountOutput{Body: projection.FromAccount(acc)}, nil
}
