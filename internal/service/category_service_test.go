package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/storage/category"
)

func newCategoryTestService(t *testing.T) (*CategoryService, *tableMocks) {
	t.Helper()
	store, mocks := newFakeStore()
	t.Cleanup(func() { mocks.categories.AssertExpectations(t) })
	return NewCategoryService(store), mocks
}

// -- CreateCategory tests --

func TestCreateCategory_Success(t *testing.T) {
	svc, mocks := newCategoryTestService(t)

	mocks.categories.On("Insert", mock.Anything, &category.CategoryCreate{
		Category: "Groceries",
		Type:     category.CategoryTypeExpense,
	}).Return(&category.Category{ID: 1, Category: "Groceries", Type: category.CategoryTypeExpense}, nil)

	created, err := svc.CreateCategory(context.Background(), Category{Category: " Groceries ", Type: CategoryTypeExpense})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, CategoryTypeExpense, created.Type)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	svc, mocks := newCategoryTestService(t)

	mocks.categories.On("Insert", mock.Anything, mock.Anything).
		Return(nil, &apperr.ConstraintError{Kind: apperr.ConstraintUnique, Constraint: "uq_categories_category", Field: "category"})

	_, err := svc.CreateCategory(context.Background(), Category{Category: "Groceries", Type: CategoryTypeExpense})
	assert.ErrorIs(t, err, apperr.ErrConstraint)
}

func TestCreateCategory_Validation(t *testing.T) {
	svc, _ := newCategoryTestService(t)

	_, err := svc.CreateCategory(context.Background(), Category{Category: strings.Repeat("c", maxCategoryLength+1), Type: CategoryTypeIncome})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "category", ve.Field)

	_, err = svc.CreateCategory(context.Background(), Category{Category: "Salary"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Field)
}

// -- ListCategories tests --

func TestListCategories_TypeFilter(t *testing.T) {
	svc, mocks := newCategoryTestService(t)

	mocks.categories.On("List", mock.Anything, mock.MatchedBy(func(f *category.CategoryFilter) bool {
		return f.Type != nil && *f.Type == category.CategoryTypeIncome
	})).Return([]*category.Category{{ID: 2, Category: "Salary", Type: category.CategoryTypeIncome}}, nil)

	income := CategoryTypeIncome
	page, _, err := svc.ListCategories(context.Background(), CategoryFilter{Type: &income}, nil)

	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Salary", page[0].Category)
}

// -- UpdateCategory tests --

func TestUpdateCategory_Type(t *testing.T) {
	svc, mocks := newCategoryTestService(t)

	mocks.categories.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(u *category.CategoryUpdate) bool {
		v, ok := u.Type.Get()
		return ok && v == category.CategoryTypeExpense && u.Category.IsUnset()
	})).Return(&category.Category{ID: 2, Category: "Salary", Type: category.CategoryTypeExpense}, nil)

	expense := CategoryTypeExpense
	updated, err := svc.UpdateCategory(context.Background(), 2, CategoryUpdate{Type: &expense})

	require.NoError(t, err)
	assert.Equal(t, CategoryTypeExpense, updated.Type)
}

// -- DeleteCategory tests --

func TestDeleteCategory_NotFound(t *testing.T) {
	svc, mocks := newCategoryTestService(t)

	mocks.categories.On("Delete", mock.Anything, int64(2)).Return(apperr.NotFound("category", 2))

	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), 2), apperr.ErrNotFound)
}
