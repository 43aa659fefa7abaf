package budget

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/projection"
)

const tag = "Budgets"

// IDPath addresses a single budget.
type IDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"Budget id"`
}

type budgetService interface {
	budgetCreator
	budgetGetter
	budgetLister
	budgetUpdater
	budgetDeleter
}

// Register registers every budget operation with the Huma API.
func Register(api huma.API, svc budgetService) {
	NewCreateBudgetHandler(svc).Register(api)
	NewGetBudgetHandler(svc).Register(api)
	NewListBudgetsHandler(svc).Register(api)
	NewUpdateBudgetHandler(svc).Register(api)
	NewDeleteBudgetHandler(svc).Register(api)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := projection.ParseTime(value)
	if err != nil {
		return time.Time{}, apierror.InvalidBody(field, value, err)
	}
	return t, nil
}
