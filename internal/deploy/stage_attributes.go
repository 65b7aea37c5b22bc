package deploy

import (
	"context"

	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// AttributesStage materializes the global attribute section: creating
// missing attributes and appending new choice values. All resolution goes
// through the run's shared resolver, so attributes created here are visible
// to the product-type and page-type stages from the cache without another
// remote lookup.
type AttributesStage struct{}

func (s *AttributesStage) Name() string { return "Attributes" }

func (s *AttributesStage) EntityType() string { return models.EntityTypeAttributes }

func (s *AttributesStage) Skip(dc *Context) bool {
	return len(actionable(dc.Summary, s.EntityType())) == 0
}

func (s *AttributesStage) Execute(ctx context.Context, dc *Context) error {
	results := actionable(dc.Summary, s.EntityType())

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.EntityName
	}

	successes, failures := runParallel(ctx, names, dc.Workers, func(ctx context.Context, i int) error {
		def, ok := results[i].Desired.(models.AttributeInput)
		if !ok {
			return apperrors.New(apperrors.ErrCodeInternal, "attribute result carries no definition")
		}
		_, err := dc.Resolver.Resolve(ctx, []models.AttributeInput{def}, models.AttributeKindProduct, nil)
		return err
	})
	return apperrors.NewStageAggregate("attribute deployment finished with failures", successes, failures)
}
