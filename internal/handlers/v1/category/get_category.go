package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

type GetCategoryOutput struct {
	Body projection.Category
}

type categoryGetter interface {
	GetCategory(ctx context.Context, id int64) (*service.Category, error)
}

// GetCategoryHandler handles GET /v1/categories/{id}.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/categories/{id}",
		Summary:     "Get a category",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *IDPath) (*GetCategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryID", input.ID)

	stopTimer := logData.AddTiming("getCategoryMs")
	c, err := h.CategoryService.GetCategory(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "get category", err)
	}

	return &GetCategoryOutput{Body: projection.FromCategory(c)}, nil
}
