package category

import (
	"context"

	"github.com/aarondl/opt/omit"
)

const (
	tableName  = "categories"
	entityName = "category"
)

// CategoryType is the stored ordinal of a category type tag.
type CategoryType int16

const (
	CategoryTypeExpense CategoryType = 1
	CategoryTypeIncome  CategoryType = 2
)

// Category represents a categories row.
type Category struct {
	ID       int64        `db:"id"`
	Category string       `db:"category"`
	Type     CategoryType `db:"type"`
}

// CategoryCreate is the input for inserting a category.
type CategoryCreate struct {
	Category string
	Type     CategoryType
}

// CategoryUpdate holds the columns to change; unset fields are left alone.
type CategoryUpdate struct {
	Category omit.Val[string]
	Type     omit.Val[CategoryType]
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	Type   *CategoryType
	Limit  int
	Offset int
}

// ICategoryReader defines the read operations on categories.
type ICategoryReader interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
}

// ICategoryWriter defines the operations available inside a transaction.
type ICategoryWriter interface {
	ICategoryReader
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, id int64, update *CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, id int64) error
}
