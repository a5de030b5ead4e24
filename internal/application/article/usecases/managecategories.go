package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/article/dto"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// ListCategoriesUseCase returns the category catalog for the blog filter
// and the operator category table.
type ListCategoriesUseCase struct {
	categoryRepo article.CategoryRepository
}

func NewListCategoriesUseCase(categoryRepo article.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return dto.NewCategoryResponses(categories), nil
}

// CreateCategoryUseCase adds a category catalog entry.
type CreateCategoryUseCase struct {
	categoryRepo article.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo article.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, title string) (*dto.CategoryResponse, error) {
	category, err := article.NewCategory(title)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if stderrors.Is(err, article.ErrCategoryExists) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("category title already exists")
		}
		uc.logger.Errorw("failed to create category", "title", title, "error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	uc.logger.Infow("category created", "category_id", category.ID(), "title", category.Title())
	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

// RenameCategoryUseCase renames a catalog entry.
type RenameCategoryUseCase struct {
	categoryRepo article.CategoryRepository
	logger       logger.Interface
}

func NewRenameCategoryUseCase(categoryRepo article.CategoryRepository, logger logger.Interface) *RenameCategoryUseCase {
	return &RenameCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *RenameCategoryUseCase) Execute(ctx context.Context, categoryID uint, title string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	if err := category.Rename(title); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if stderrors.Is(err, article.ErrCategoryExists) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("category title already exists")
		}
		uc.logger.Errorw("failed to rename category", "category_id", categoryID, "error", err)
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	uc.logger.Infow("category renamed", "category_id", categoryID, "title", category.Title())
	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

// DeleteCategoryUseCase removes a catalog entry. Attached articles simply
// lose the tag; they are never deleted with it.
type DeleteCategoryUseCase struct {
	categoryRepo article.CategoryRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(categoryRepo article.CategoryRepository, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, categoryID uint) error {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil {
		return errors.NewNotFoundError("category not found")
	}

	if err := uc.categoryRepo.Delete(ctx, categoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "category_id", categoryID, "error", err)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	uc.logger.Infow("category deleted", "category_id", categoryID, "title", category.Title())
	return nil
}
