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

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	UserID  int64    `json:"user_id" minimum:"1" doc:"Owning user"`
	Name    string   `json:"name" minLength:"1" maxLength:"100" doc:"Account name"`
	Balance *float64 `json:"balance,omitempty" doc:"Opening balance, defaults to 0.0"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   projection.Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, create service.AccountCreate) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/accounts",
		Summary:     "Create an account",
		Description: "Creates an account for an existing user.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("createAccountMs")
	created, err := h.AccountService.CreateAccount(ctx, service.AccountCreate{
		UserID:  input.Body.UserID,
		Name:    input.Body.Name,
		Balance: input.Body.Balance,
	})
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "create account", err)
	}

	logData.AddData("accountID", created.ID)

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   projection.FromAccount(created),
	}, nil
}
