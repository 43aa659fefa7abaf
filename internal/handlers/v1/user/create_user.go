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

// CreateUserInput is the Huma input for creating a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserBody is the request body for creating a user.
type CreateUserBody struct {
	Name     string `json:"name" minLength:"1" maxLength:"255" doc:"Display name"`
	Email    string `json:"email" minLength:"3" maxLength:"255" doc:"Unique email address, stored lower-cased"`
	Password string `json:"password" minLength:"8" maxLength:"72" doc:"Plain text password, stored as a bcrypt hash"`
	IsActive *bool  `json:"is_active,omitempty" doc:"Defaults to true"`
}

// CreateUserOutput is the response for creating a user.
type CreateUserOutput struct {
	Status int
	Body   projection.User
}

type userCreator interface {
	CreateUser(ctx context.Context, create service.UserCreate) (*service.User, error)
}

// CreateUserHandler handles POST /v1/users.
type CreateUserHandler struct {
	UserService userCreator
}

func NewCreateUserHandler(svc userCreator) *CreateUserHandler {
	return &CreateUserHandler{UserService: svc}
}

func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-user",
		Method:      http.MethodPost,
		Path:        "/v1/users",
		Summary:     "Create a user",
		Description: "Creates a user. The email must not be in use.",
		Tags:        []string{tag},
	}, h.handle)
}

func parseCreateUserInput(input *CreateUserInput) service.UserCreate {
	isActive := true
	if input.Body.IsActive != nil {
		isActive = *input.Body.IsActive
	}
	return service.UserCreate{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Password: input.Body.Password,
		IsActive: isActive,
	}
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("createUserMs")
	created, err := h.UserService.CreateUser(ctx, parseCreateUserInput(input))
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "create user", err)
	}

	logData.AddData("userID", created.ID)

	return &CreateUserOutput{
		Status: http.StatusCreated,
		Body:   projection.FromUser(created),
	}, nil
}
