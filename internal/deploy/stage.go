package deploy

import (
	"context"

	"shopsync/pkg/models"
)

// Stage is one unit of the deployment pipeline, responsible for applying
// one configuration section's changes. Skip must be a pure predicate.
// Execute may return an ordinary error (stage failed) or a
// *errors.StageAggregateError (partial credit for independent sub-entities).
type Stage interface {
	Name() string
	EntityType() string
	Skip(dc *Context) bool
	Execute(ctx context.Context, dc *Context) error
}

// Registry returns the pipeline stages in their mandatory execution order.
// The order is a contract, not a convenience: attributes must exist before
// product and page types assign them, and types before anything that
// references them. Do not reorder without updating the order test.
func Registry() []Stage {
	return []Stage{
		&ShopStage{},
		&ChannelsStage{},
		&AttributesStage{},
		&ProductTypesStage{},
		&PageTypesStage{},
		&CategoriesStage{},
	}
}

// actionable returns the results a stage will actually act on. Deletions
// are reported by the diff but never executed by deployment, so they are
// excluded from stage totals.
func actionable(summary *models.DiffSummary, entityType string) []models.DiffResult {
	var out []models.DiffResult
	for _, r := range summary.ResultsFor(entityType) {
		if r.Operation != models.OperationDelete {
			out = append(out, r)
		}
	}
	return out
}
