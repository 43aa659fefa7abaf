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

type UpdateBudgetInput struct {
	IDPath
	Body UpdateBudgetBody
}

type UpdateBudgetBody struct {
	CategoryID *int64   `json:"category_id,omitempty" minimum:"1"`
	Amount     *float64 `json:"amount,omitempty"`
	StartDate  *string  `json:"start_date,omitempty"`
	EndDate    *string  `json:"end_date,omitempty"`
}

type UpdateBudgetOutput struct {
	Body projection.Budget
}

type budgetUpdater interface {
	UpdateBudget(ctx context.Context, id int64, update service.BudgetUpdate) (*service.Budget, error)
}

// UpdateBudgetHandler handles PATCH /v1/budgets/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPatch,
		Path:        "/v1/budgets/{id}",
		Summary:     "Update a budget",
		Description: "Changes the given fields. The resulting period must still end on or after its start.",
		Tags:        []string{tag},
	}, h.handle)
}

func parseUpdateBudgetInput(input *UpdateBudgetInput) (service.BudgetUpdate, error) {
	update := service.BudgetUpdate{
		CategoryID: input.Body.CategoryID,
		Amount:     input.Body.Amount,
	}
	if input.Body.StartDate != nil {
		start, err := parseDate("start_date", *input.Body.StartDate)
		if err != nil {
			return service.BudgetUpdate{}, err
		}
		update.StartDate = &start
	}
	if input.Body.EndDate != nil {
		end, err := parseDate("end_date", *input.Body.EndDate)
		if err != nil {
			return service.BudgetUpdate{}, err
		}
		update.EndDate = &end
	}
	return update, nil
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("budgetID", input.ID)

	update, err := parseUpdateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("updateBudgetMs")
	updated, err := h.BudgetService.UpdateBudget(ctx, input.ID, update)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "update budget", err)
	}

	return &UpdateBudgetOutput{Body: projection.FromBudget(updated)}, nil
}
