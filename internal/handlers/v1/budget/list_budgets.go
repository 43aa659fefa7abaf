package budget

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

type ListBudgetsInput struct {
	listing.CursorQuery
	UserID     int64 `query:"user_id" minimum:"0" doc:"Only budgets of this user"`
	CategoryID int64 `query:"category_id" minimum:"0" doc:"Only budgets of this category"`
}

type ListBudgetsOutput struct {
	Body listing.Page[projection.Budget]
}

type budgetLister interface {
	ListBudgets(ctx context.Context, filter service.BudgetFilter, cursor *service.Cursor) ([]service.Budget, *service.Cursor, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listBudgetsMs")
	budgets, next, err := h.BudgetService.ListBudgets(ctx, service.BudgetFilter{
		UserID:     listing.OptionalID(input.UserID),
		CategoryID: listing.OptionalID(input.CategoryID),
	}, input.Cursor())
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "list budgets", err)
	}

	logData.AddData("budgetCount", len(budgets))

	return &ListBudgetsOutput{Body: listing.NewPage(projection.FromBudgets(budgets), next)}, nil
}
