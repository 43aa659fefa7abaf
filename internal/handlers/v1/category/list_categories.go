package category

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

type ListCategoriesInput struct {
	listing.CursorQuery
	Type string `query:"type" doc:"Only categories of this type, EXPENSE or INCOME"`
}

type ListCategoriesOutput struct {
	Body listing.Page[projection.Category]
}

type categoryLister interface {
	ListCategories(ctx context.Context, filter service.CategoryFilter, cursor *service.Cursor) ([]service.Category, *service.Cursor, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	var filter service.CategoryFilter
	if input.Type != "" {
		categoryType, err := service.ParseCategoryType(input.Type)
		if err != nil {
			return nil, apierror.InvalidQuery("type", input.Type, err)
		}
		filter.Type = &categoryType
	}

	stopTimer := logData.AddTiming("listCategoriesMs")
	categories, next, err := h.CategoryService.ListCategories(ctx, filter, input.Cursor())
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "list categories", err)
	}

	logData.AddData("categoryCount", len(categories))

	return &ListCategoriesOutput{Body: listing.NewPage(projection.FromCategories(categories), next)}, nil
}
