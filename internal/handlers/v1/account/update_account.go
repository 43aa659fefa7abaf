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

type UpdateAccountInput struct {
	IDPath
	Body UpdateAccountBody
}

// UpdateAccountBody lists the fields to change. The balance is only ever set
// here, transactions never move it.
type UpdateAccountBody struct {
	Name    *string  `json:"name,omitempty" minLength:"1" maxLength:"100"`
	Balance *float64 `json:"balance,omitempty"`
}

type UpdateAccountOutput struct {
	Body projection.Account
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, id int64, update service.AccountUpdate) (*service.Account, error)
}

// UpdateAccountHandler handles PATCH /v1/accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/accounts/{id}",
		Summary:     "Update an account",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("accountID", input.ID)

	stopTimer := logData.AddTiming("updateAccountMs")
	updated, err := h.AccountService.UpdateAccount(ctx, input.ID, service.AccountUpdate{
		Name:    input.Body.Name,
		Balance: input.Body.Balance,
	})
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "update account", err)
	}

	return &UpdateAccountOutput{Body: projection.FromAccount(updated)}, nil
}
