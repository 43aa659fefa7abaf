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

type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type CreateCategoryBody struct {
	Category string `json:"category" minLength:"1" maxLength:"50" doc:"Unique category name"`
	Type     string `json:"type" doc:"EXPENSE or INCOME, any case"`
}

type CreateCategoryOutput struct {
	Status int
	Body   projection.Category
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, create service.Category) (*service.Category, error)
}

// CreateCategoryHandler handles POST /v1/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/categories",
		Summary:     "Create a category",
		Description: "Creates a category. Names are unique across all users.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	categoryType, err := parseType("type", input.Body.Type)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createCategoryMs")
	created, err := h.CategoryService.CreateCategory(ctx, service.Category{
		Category: input.Body.Category,
		Type:     categoryType,
	})
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "create category", err)
	}

	logData.AddData("categoryID", created.ID)

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   projection.FromCategory(created),
	}, nil
}
