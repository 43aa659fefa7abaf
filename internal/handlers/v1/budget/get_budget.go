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

type GetBudgetOutput struct {
	Body projection.Budget
}

type budgetGetter interface {
	GetBudget(ctx context.Context, id int64) (*service.Budget, error)
}

// GetBudgetHandler handles GET /v1/budgets/{id}.
type GetBudgetHandler struct {
	BudgetService budgetGetter
}

func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/{id}",
		Summary:     "Get a budget",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *IDPath) (*GetBudgetOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("budgetID", input.ID)

	stopTimer := logData.AddTiming("getBudgetMs")
	b, err := h.BudgetService.GetBudget(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "get budget", err)
	}

	return &GetBudgetOutput{Body: projection.FromBudget(b)}, nil
}
