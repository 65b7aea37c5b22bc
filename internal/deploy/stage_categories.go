package deploy

import (
	"context"
	"fmt"
	"strings"

	"shopsync/internal/remote"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// CategoryCreate is the payload for creating a category subtree. ParentPath
// is the slash-separated path of the parent node, empty for root categories.
type CategoryCreate struct {
	ParentPath string
	Category   models.Category
}

// GetName returns the category name for logging and accounting.
func (c CategoryCreate) GetName() string { return c.Category.Name }

// CategoriesStage applies category tree changes. Unlike the other entity
// stages it runs sequentially in declaration order: a parent created in
// this run must exist before its sibling subtrees reference it.
type CategoriesStage struct{}

func (s *CategoriesStage) Name() string { return "Categories" }

func (s *CategoriesStage) EntityType() string { return models.EntityTypeCategories }

func (s *CategoriesStage) Skip(dc *Context) bool {
	return len(actionable(dc.Summary, s.EntityType())) == 0
}

func (s *CategoriesStage) Execute(ctx context.Context, dc *Context) error {
	results := actionable(dc.Summary, s.EntityType())

	var successes []string
	var failures []apperrors.EntityFailure
	for _, result := range results {
		if err := s.apply(ctx, dc, result); err != nil {
			failures = append(failures, apperrors.EntityFailure{Entity: result.EntityName, Err: err})
		} else {
			successes = append(successes, result.EntityName)
		}
	}
	return apperrors.NewStageAggregate("category deployment finished with failures", successes, failures)
}

func (s *CategoriesStage) apply(ctx context.Context, dc *Context, result models.DiffResult) error {
	switch result.Operation {
	case models.OperationCreate:
		cat, ok := result.Desired.(models.Category)
		if !ok {
			return apperrors.New(apperrors.ErrCodeInternal, "category create result carries no payload")
		}
		_, err := dc.Store.CreateEntity(ctx, remote.SectionCategories, CategoryCreate{
			ParentPath: parentPath(result.EntityName),
			Category:   cat,
		})
		return err

	case models.OperationUpdate:
		current, ok := result.Current.(models.RemoteCategory)
		if !ok {
			return apperrors.New(apperrors.ErrCodeInternal, "category update result carries no remote identity")
		}
		cat, _ := result.Desired.(models.Category)
		_, err := dc.Store.UpdateEntity(ctx, remote.SectionCategories, current.ID, cat)
		return err

	default:
		return apperrors.New(apperrors.ErrCodeInternal,
			fmt.Sprintf("unexpected category operation %s", result.Operation))
	}
}

func parentPath(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
