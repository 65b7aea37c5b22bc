package deploy

import (
	"context"
	"fmt"

	"shopsync/internal/remote"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// ProductTypesStage creates and updates product types and wires their
// attribute assignments. Attribute identity goes through the shared
// resolver, so a name referenced by several types resolves once per run.
type ProductTypesStage struct{}

func (s *ProductTypesStage) Name() string { return "Product Types" }

func (s *ProductTypesStage) EntityType() string { return models.EntityTypeProductTypes }

func (s *ProductTypesStage) Skip(dc *Context) bool {
	return len(actionable(dc.Summary, s.EntityType())) == 0
}

// Execute runs sequentially in declaration order: a type may reference an
// attribute another type earlier in the document defines inline, so
// resolution order must follow the document.
func (s *ProductTypesStage) Execute(ctx context.Context, dc *Context) error {
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
	return apperrors.NewStageAggregate("product type deployment finished with failures", successes, failures)
}

func (s *ProductTypesStage) apply(ctx context.Context, dc *Context, result models.DiffResult) error {
	local, ok := s.localType(dc, result.EntityName)
	if !ok {
		return apperrors.New(apperrors.ErrCodeInternal,
			fmt.Sprintf("product type %q not found in configuration", result.EntityName))
	}

	switch result.Operation {
	case models.OperationCreate:
		entity, err := dc.Store.CreateEntity(ctx, remote.SectionProductTypes, local)
		if err != nil {
			return err
		}
		if err := s.assign(ctx, dc, entity.ID, local.ProductAttributes, remote.RoleProductAttribute, nil); err != nil {
			return err
		}
		return s.assign(ctx, dc, entity.ID, local.VariantAttributes, remote.RoleVariantAttribute, nil)

	case models.OperationUpdate:
		current, ok := result.Current.(*models.RemoteProductType)
		if !ok {
			return apperrors.New(apperrors.ErrCodeInternal, "product type update result carries no remote identity")
		}
		if local.IsShippingRequired != current.IsShippingRequired {
			if _, err := dc.Store.UpdateEntity(ctx, remote.SectionProductTypes, current.ID, local); err != nil {
				return err
			}
		}
		if err := s.assign(ctx, dc, current.ID, local.ProductAttributes, remote.RoleProductAttribute, assignedNames(current.ProductAttributes)); err != nil {
			return err
		}
		if err := s.assign(ctx, dc, current.ID, local.VariantAttributes, remote.RoleVariantAttribute, assignedNames(current.VariantAttributes)); err != nil {
			return err
		}
		// Already-assigned inline definitions may still have grown their
		// value sets; append those without re-assigning.
		for _, def := range append(append([]models.AttributeInput(nil), local.ProductAttributes...), local.VariantAttributes...) {
			if err := dc.Resolver.EnsureValues(ctx, def, models.AttributeKindProduct); err != nil {
				return err
			}
		}
		return nil

	default:
		return apperrors.New(apperrors.ErrCodeInternal,
			fmt.Sprintf("unexpected product type operation %s", result.Operation))
	}
}

func (s *ProductTypesStage) assign(ctx context.Context, dc *Context, ownerID string, inputs []models.AttributeInput, role remote.AttributeRole, alreadyAssigned map[string]bool) error {
	ids, err := dc.Resolver.Resolve(ctx, inputs, models.AttributeKindProduct, alreadyAssigned)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := dc.Store.AssignAttributes(ctx, ownerID, ids, role); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeAssignmentFailed,
			fmt.Sprintf("failed to assign %d attribute(s)", len(ids)))
	}
	return nil
}

func (s *ProductTypesStage) localType(dc *Context, name string) (models.ProductType, bool) {
	for _, pt := range dc.Config.ProductTypes {
		if pt.Name == name {
			return pt, true
		}
	}
	return models.ProductType{}, false
}

func assignedNames(attrs []models.RemoteAttribute) map[string]bool {
	names := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		names[a.Name] = true
	}
	return names
}
