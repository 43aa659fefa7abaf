package user

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

type ListUsersInput struct {
	listing.CursorQuery
}

type ListUsersOutput struct {
	Body listing.Page[projection.User]
}

type userLister interface {
	ListUsers(ctx context.Context, cursor *service.Cursor) ([]service.User, *service.Cursor, error)
}

// ListUsersHandler handles GET /v1/users.
type ListUsersHandler struct {
	UserService userLister
}

func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc}
}

func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/v1/users",
		Summary:     "List users",
		Description: "Returns a paginated list of users with their accounts.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listUsersMs")
	users, next, err := h.UserService.ListUsers(ctx, input.Cursor())
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "list users", err)
	}

	logData.AddData("userCount", len(users))

	return &ListUsersOutput{Body: listing.NewPage(projection.FromUsers(users), next)}, nil
}
