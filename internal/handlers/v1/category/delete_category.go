package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
)

type DeleteCategoryOutput struct{}

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id int64) error
}

// DeleteCategoryHandler handles DELETE /v1/categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/categories/{id}",
		Summary:       "Delete a category",
		Description:   "Deletes a category. Fails with 409 while transactions or budgets reference it.",
		Tags:          []string{tag},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *IDPath) (*DeleteCategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryID", input.ID)

	stopTimer := logData.AddTiming("deleteCategoryMs")
	err := h.CategoryService.DeleteCategory(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "delete category", err)
	}

	return &DeleteCategoryOutput{}, nil
}
