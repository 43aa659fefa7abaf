package service

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
)

// CategoryService handles category business logic.
type CategoryService struct {
	store Store
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store Store) *CategoryService {
	return &CategoryService{store: store}
}

// CreateCategory stores a category. Names are globally unique.
func (s *CategoryService) CreateCategory(ctx context.Context, create Category) (*Category, error) {
	name, err := requireText("category", create.Category, maxCategoryLength)
	if err != nil {
		return nil, err
	}
	if !create.Type.Valid() {
		return nil, apperr.Invalid("type", "must be EXPENSE or INCOME")
	}

	var created *category.Category
	err = s.store.WithTx(ctx, func(w *storage.Writer) error {
		var err error
		created, err = w.Categories.Insert(ctx, &category.CategoryCreate{
			Category: name,
			Type:     categoryTypeToStorage(create.Type),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	converted, err := categoryFromStorage(created)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// GetCategory retrieves a category by ID.
func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*Category, error) {
	row, err := s.store.Read().Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted, err := categoryFromStorage(row)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// ListCategories returns a page of categories using cursor pagination.
func (s *CategoryService) ListCategories(ctx context.Context, filter CategoryFilter, cursor *Cursor) ([]Category, *Cursor, error) {
	limit, offset := pageBounds(cursor)

	storageFilter := &category.CategoryFilter{
		Limit:  limit + 1,
		Offset: offset,
	}
	if filter.Type != nil {
		storageType := categoryTypeToStorage(*filter.Type)
		storageFilter.Type = &storageType
	}

	rows, err := s.store.Read().Categories.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	return paginate(rows, limit, offset, categoryFromStorage)
}

// UpdateCategory changes the given fields.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, update CategoryUpdate) (*Category, error) {
	var change category.CategoryUpdate
	if update.Category != nil {
		name, err := requireText("category", *update.Category, maxCategoryLength)
		if err != nil {
			return nil, err
		}
		change.Category = omit.From(name)
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, apperr.Invalid("type", "must be EXPENSE or INCOME")
		}
		change.Type = omit.From(categoryTypeToStorage(*update.Type))
	}

	var updated *category.Category
	err := s.store.WithTx(ctx, func(w *storage.Writer) error {
		var err error
		updated, err = w.Categories.Update(ctx, id, &change)
		return err
	})
	if err != nil {
		return nil, err
	}

	converted, err := categoryFromStorage(updated)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// DeleteCategory removes a category that no transaction or budget references.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(w *storage.Writer) error {
		return w.Categories.Delete(ctx, id)
	})
}
