package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
)

type DeleteUserOutput struct{}

type userDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

// DeleteUserHandler handles DELETE /v1/users/{id}.
type DeleteUserHandler struct {
	UserService userDeleter
}

func NewDeleteUserHandler(svc userDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{UserService: svc}
}

func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-user",
		Method:        http.MethodDelete,
		Path:          "/v1/users/{id}",
		Summary:       "Delete a user",
		Description:   "Deletes a user. Fails with 409 while accounts, transactions, budgets or notifications reference it.",
		Tags:          []string{tag},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *IDPath) (*DeleteUserOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.ID)

	stopTimer := logData.AddTiming("deleteUserMs")
	err := h.UserService.DeleteUser(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "delete user", err)
	}

	return &DeleteUserOutput{}, nil
}
