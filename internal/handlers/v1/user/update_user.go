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

type UpdateUserInput struct {
	IDPath
	Body UpdateUserBody
}

// UpdateUserBody lists the fields to change. Absent fields are left alone.
type UpdateUserBody struct {
	Name     *string `json:"name,omitempty" minLength:"1" maxLength:"255"`
	Email    *string `json:"email,omitempty" minLength:"3" maxLength:"255"`
	Password *string `json:"password,omitempty" minLength:"8" maxLength:"72"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type UpdateUserOutput struct {
	Body projection.User
}

type userUpdater interface {
	UpdateUser(ctx context.Context, id int64, update service.UserUpdate) (*service.User, error)
}

// UpdateUserHandler handles PATCH /v1/users/{id}.
type UpdateUserHandler struct {
	UserService userUpdater
}

func NewUpdateUserHandler(svc userUpdater) *UpdateUserHandler {
	return &UpdateUserHandler{UserService: svc}
}

func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPatch,
		Path:        "/v1/users/{id}",
		Summary:     "Update a user",
		Description: "Changes the given fields. A new password is hashed again.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.ID)

	stopTimer := logData.AddTiming("updateUserMs")
	updated, err := h.UserService.UpdateUser(ctx, input.ID, service.UserUpdate{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Password: input.Body.Password,
		IsActive: input.Body.IsActive,
	})
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "update user", err)
	}

	return &UpdateUserOutput{Body: projection.FromUser(updated)}, nil
}
