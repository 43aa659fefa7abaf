package category

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/service"
)

const tag = "Categories"

// IDPath addresses a single category.
type IDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"Category id"`
}

type categoryService interface {
	categoryCreator
	categoryGetter
	categoryLister
	categoryUpdater
	categoryDeleter
}

// Register registers every category operation with the Huma API.
func Register(api huma.API, svc categoryService) {
	NewCreateCategoryHandler(svc).Register(api)
	NewGetCategoryHandler(svc).Register(api)
	NewListCategoriesHandler(svc).Register(api)
	NewUpdateCategoryHandler(svc).Register(api)
	NewDeleteCategoryHandler(svc).Register(api)
}

func parseType(field, value string) (service.CategoryType, error) {
	t, err := service.ParseCategoryType(value)
	if err != nil {
		return 0, apierror.InvalidBody(field, value, err)
	}
	return t, nil
}
