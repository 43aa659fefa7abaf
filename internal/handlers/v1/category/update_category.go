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

type UpdateCategoryInput struct {
	IDPath
	Body UpdateCategoryBody
}

type UpdateCategoryBody struct {
	Category *string `json:"category,omitempty" minLength:"1" maxLength:"50"`
	Type     *string `json:"type,omitempty" doc:"EXPENSE or INCOME, any case"`
}

type UpdateCategoryOutput struct {
	Body projection.Category
}

type categoryUpdater interface {
	UpdateCategory(ctx context.Context, id int64, update service.CategoryUpdate) (*service.Category, error)
}

// UpdateCategoryHandler handles PATCH /v1/categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/categories/{id}",
		Summary:     "Update a category",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryID", input.ID)

	update := service.CategoryUpdate{Category: input.Body.Category}
	if input.Body.Type != nil {
		categoryType, err := parseType("type", *input.Body.Type)
		if err != nil {
			return nil, err
		}
		update.Type = &categoryType
	}

	stopTimer := logData.AddTiming("updateCategoryMs")
	updated, err := h.CategoryService.UpdateCategory(ctx, input.ID, update)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "update category", err)
	}

	return &UpdateCategoryOutput{Body: projection.FromCategory(updated)}, nil
}
