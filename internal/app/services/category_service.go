package services

import (
	"context"
	"errors"
	"strings"

	"github.com/naveen/management/internal/app/models"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/app/repositories"
	"github.com/naveen/management/internal/pkg/apperrors"
	"github.com/naveen/management/internal/pkg/helpers"
)

// CategoryStore is the store access the category service needs.
type CategoryStore interface {
	ListByName(ctx context.Context) ([]*models.Category, error)
	ListNewestFirst(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
	CountReferences(ctx context.Context, id int64) (int64, error)
}

// CategoryService handles category-related operations, including the
// referential guard protecting deletes.
type CategoryService struct {
	categories CategoryStore
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListCategoriesByName retrieves all categories ordered by name.
func (s *CategoryService) ListCategoriesByName(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.ListByName(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return categories, nil
}

// ListCategoriesNewestFirst retrieves all categories ordered newest-first.
func (s *CategoryService) ListCategoriesNewestFirst(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if category == nil {
		return nil, apperrors.NewNotFoundError("Category not found")
	}
	return category, nil
}

// CreateCategory validates and creates a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Category name is required")
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: helpers.NullableString(req.Description),
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryDuplicate) {
			return nil, apperrors.NewConflictError(apperrors.MsgCategoryDuplicate)
		}
		return nil, apperrors.NewStoreError(err)
	}

	return category, nil
}

// UpdateCategory validates and replaces a category's fields.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Category name is required")
	}

	category := &models.Category{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: helpers.NullableString(req.Description),
	}

	if err := s.categories.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return nil, apperrors.NewNotFoundError("Category not found")
		case errors.Is(err, repositories.ErrCategoryDuplicate):
			return nil, apperrors.NewConflictError(apperrors.MsgCategoryDuplicate)
		default:
			return nil, apperrors.NewStoreError(err)
		}
	}

	return category, nil
}

// DeleteCategory removes a category after checking that no student or
// product still references it. The check and the delete are separate
// statements; the FK constraints are declared ON DELETE SET NULL, so a
// reference inserted in the narrow window between them degrades to a
// cleared reference, never to a dangling one.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	referenced, err := s.categories.CountReferences(ctx, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if referenced > 0 {
		return apperrors.NewBlockedDeleteError(apperrors.MsgCategoryInUse)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}
