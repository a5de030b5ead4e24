package usecases

import (
	"context"

	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/shared/errors"
)

// SubmissionNotifier alerts the operator mailbox when an article enters
// the review queue.
type SubmissionNotifier interface {
	SendSubmissionNotice(kind, title, agentName string) error
}

// categoryIndex loads the catalog once and indexes entries by ID so a
// result page needs a single catalog query.
func categoryIndex(ctx context.Context, categoryRepo article.CategoryRepository) (map[uint]*article.Category, error) {
	categories, err := categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[uint]*article.Category, len(categories))
	for _, c := range categories {
		index[c.ID()] = c
	}
	return index, nil
}

// resolveCategories loads the referenced categories and fails validation
// when any ID is unknown.
func resolveCategories(ctx context.Context, categoryRepo article.CategoryRepository, ids []uint) ([]*article.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	categories, err := categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, errors.NewValidationError("unknown category")
	}
	return categories, nil
}
