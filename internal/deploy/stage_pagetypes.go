package deploy

import (
	"context"
	"fmt"

	"shopsync/internal/remote"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// PageTypesStage creates and updates page (content) types and their
// attribute assignments, mirroring ProductTypesStage for the content kind.
type PageTypesStage struct{}

func (s *PageTypesStage) Name() string { return "Page Types" }

func (s *PageTypesStage) EntityType() string { return models.EntityTypePageTypes }

func (s *PageTypesStage) Skip(dc *Context) bool {
	return len(actionable(dc.Summary, s.EntityType())) == 0
}

// Execute runs sequentially in declaration order: a page type may reference
// an attribute another page type earlier in the document defines inline, so
// resolution order must follow the document.
func (s *PageTypesStage) Execute(ctx context.Context, dc *Context) error {
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
	return apperrors.NewStageAggregate("page type deployment finished with failures", successes, failures)
}

func (s *PageTypesStage) apply(ctx context.Context, dc *Context, result models.DiffResult) error {
	local, ok := s.localType(dc, result.EntityName)
	if !ok {
		return apperrors.New(apperrors.ErrCodeInternal,
			fmt.Sprintf("page type %q not found in configuration", result.EntityName))
	}

	switch result.Operation {
	case models.OperationCreate:
		entity, err := dc.Store.CreateEntity(ctx, remote.SectionPageTypes, local)
		if err != nil {
			return err
		}
		return s.assign(ctx, dc, entity.ID, local.Attributes, nil)

	case models.OperationUpdate:
		current, ok := result.Current.(*models.RemotePageType)
		if !ok {
			return apperrors.New(apperrors.ErrCodeInternal, "page type update result carries no remote identity")
		}
		if err := s.assign(ctx, dc, current.ID, local.Attributes, assignedNames(current.Attributes)); err != nil {
			return err
		}
		for _, def := range local.Attributes {
			if err := dc.Resolver.EnsureValues(ctx, def, models.AttributeKindContent); err != nil {
				return err
			}
		}
		return nil

	default:
		return apperrors.New(apperrors.ErrCodeInternal,
			fmt.Sprintf("unexpected page type operation %s", result.Operation))
	}
}

func (s *PageTypesStage) assign(ctx context.Context, dc *Context, ownerID string, inputs []models.AttributeInput, alreadyAssigned map[string]bool) error {
	ids, err := dc.Resolver.Resolve(ctx, inputs, models.AttributeKindContent, alreadyAssigned)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := dc.Store.AssignAttributes(ctx, ownerID, ids, remote.RoleContentAttribute); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeAssignmentFailed,
			fmt.Sprintf("failed to assign %d attribute(s)", len(ids)))
	}
	return nil
}

func (s *PageTypesStage) localType(dc *Context, name string) (models.PageType, bool) {
	for _, pt := range dc.Config.PageTypes {
		if pt.Name == name {
			return pt, true
		}
	}
	return models.PageType{}, false
}
