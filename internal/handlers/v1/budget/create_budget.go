package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

type CreateBudgetInput struct {
	Body CreateBudgetBody
}

type CreateBudgetBody struct {
	UserID     int64   `json:"user_id" minimum:"1" doc:"Owning user"`
	CategoryID int64   `json:"category_id" minimum:"1" doc:"Budgeted category"`
	Amount     float64 `json:"amount" doc:"Budgeted amount"`
	StartDate  string  `json:"start_date" minLength:"1" doc:"DD/MM/YYYY HH:MM:SS or RFC 3339"`
	EndDate    string  `json:"end_date" minLength:"1" doc:"DD/MM/YYYY HH:MM:SS or RFC 3339, not before start_date"`
}

type CreateBudgetOutput struct {
	Status int
	Body   projection.Budget
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, create service.BudgetCreate) (*service.Budget, error)
}

// CreateBudgetHandler handles POST /v1/budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budgets",
		Summary:     "Create a budget",
		Description: "Creates a budget of a user for one category over a period.",
		Tags:        []string{tag},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (service.BudgetCreate, error) {
	start, err := parseDate("start_date", input.Body.StartDate)
	if err != nil {
		return service.BudgetCreate{}, err
	}
	end, err := parseDate("end_date", input.Body.EndDate)
	if err != nil {
		return service.BudgetCreate{}, err
	}
	return service.BudgetCreate{
		UserID:     input.Body.UserID,
		CategoryID: input.Body.CategoryID,
		Amount:     input.Body.Amount,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createBudgetMs")
	created, err := h.BudgetService.CreateBudget(ctx, create)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "create budget", err)
	}

	logData.AddData("budgetID", created.ID)

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   projection.FromBudget(created),
	}, nil
}
