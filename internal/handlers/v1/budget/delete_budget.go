package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
)

type DeleteBudgetOutput struct{}

type budgetDeleter interface {
	DeleteBudget(ctx context.Context, id int64) error
}

// DeleteBudgetHandler handles DELETE /v1/budgets/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/v1/budgets/{id}",
		Summary:       "Delete a budget",
		Tags:          []string{tag},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *IDPath) (*DeleteBudgetOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("budgetID", input.ID)

	stopTimer := logData.AddTiming("deleteBudgetMs")
	err := h.BudgetService.DeleteBudget(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "delete budget", err)
	}

	return &DeleteBudgetOutput{}, nil
}
