package service

import (
	"github.com/carson-networks/ledger-server/internal/storage/category"
)

const maxCategoryLength = 50

// Category represents a category in the service layer.
type Category struct {
	ID       int64
	Category string
	Type     CategoryType
}

// CategoryUpdate holds the fields to change; nil fields are left alone.
type CategoryUpdate struct {
	Category *string
	Type     *CategoryType
}

// CategoryFilter narrows ListCategories.
type CategoryFilter struct {
	Type *CategoryType
}

func categoryFromStorage(row *category.Category) (Category, error) {
	categoryType, err := categoryTypeFromStorage(row.Type)
	if err != nil {
		return Category{}, err
	}
	return Category{
		ID:       row.ID,
		Category: row.Category,
		Type:     categoryType,
	}, nil
}
