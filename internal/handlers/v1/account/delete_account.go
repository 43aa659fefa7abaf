package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
)

type DeleteAccountOutput struct{}

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id int64) error
}

// DeleteAccountHandler handles DELETE /v1/accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/accounts/{id}",
		Summary:       "Delete an account",
		Description:   "Deletes an account. Fails with 409 while transactions reference it.",
		Tags:          []string{tag},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *IDPath) (*DeleteAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("accountID", input.ID)

	stopTimer := logData.AddTiming("deleteAccountMs")
	err := h.AccountService.DeleteAccount(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "delete account", err)
	}

	return &DeleteAccountOutput{}, nil
}
