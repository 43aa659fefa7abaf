package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

type GetUserOutput struct {
	Body projection.User
}

type userGetter interface {
	GetUser(ctx context.Context, id int64) (*service.User, error)
}

// GetUserHandler handles GET /v1/users/{id}.
type GetUserHandler struct {
	UserService userGetter
}

func NewGetUserHandler(svc userGetter) *GetUserHandler {
	return &GetUserHandler{UserService: svc}
}

func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/v1/users/{id}",
		Summary:     "Get a user",
		Description: "Returns a user together with their accounts.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *IDPath) (*GetUserOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.ID)

	stopTimer := logData.AddTiming("getUserMs")
	u, err := h.UserService.GetUser(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "get user", err)
	}

	return &GetUserOutput{Body: projection.FromUser(u)}, nil
}
