package attribute

import (
	"context"
	"fmt"

	"shopsync/internal/remote"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// Diagnostic receives non-fatal resolver notices, e.g. an inline definition
// that was matched to an already-existing remote attribute.
type Diagnostic func(message string)

// Resolver resolves attribute references and inline definitions to concrete
// remote identifiers. Attributes are global: within one run the same name
// resolves to the same identifier everywhere and is created at most once.
// All resolution state lives in the shared run cache, so a second resolver
// over the same cache starts with everything the first one learned.
type Resolver struct {
	store remote.Store
	cache *Cache
	diag  Diagnostic
}

// NewResolver creates a resolver bound to one run's cache.
func NewResolver(store remote.Store, cache *Cache, diag Diagnostic) *Resolver {
	if diag == nil {
		diag = func(string) {}
	}
	return &Resolver{store: store, cache: cache, diag: diag}
}

// Resolve turns attribute inputs into remote identifiers, in input order.
// Names listed in alreadyAssigned are dropped without resolution so an
// owner is never re-assigned an attribute it already carries. Referenced
// names that cannot be found after one batched lookup are a hard failure.
func (r *Resolver) Resolve(ctx context.Context, inputs []models.AttributeInput, kind models.AttributeKind, alreadyAssigned map[string]bool) ([]string, error) {
	if err := ValidateInputs(inputs, "attributes"); err != nil {
		return nil, err
	}

	var pending []models.AttributeInput
	seen := make(map[string]bool)
	for _, input := range inputs {
		if alreadyAssigned[input.Name] || seen[input.Name] {
			continue
		}
		seen[input.Name] = true
		pending = append(pending, input)
	}
	if len(pending) == 0 {
		return nil, nil
	}

	var referenced []string
	for _, input := range pending {
		if input.IsReference() {
			if _, ok := r.cache.Get(input.Name, kind); !ok {
				referenced = append(referenced, input.Name)
			}
		}
	}
	if len(referenced) > 0 {
		if err := r.fetchBatch(ctx, referenced, kind); err != nil {
			return nil, err
		}
	}

	ids := make([]string, 0, len(pending))
	for _, input := range pending {
		if input.IsReference() {
			attr, ok := r.cache.Get(input.Name, kind)
			if !ok {
				return nil, apperrors.ResolutionError([]string{input.Name}, string(kind))
			}
			ids = append(ids, attr.ID)
			continue
		}

		attr, err := r.ensure(ctx, input, kind)
		if err != nil {
			return nil, err
		}
		ids = append(ids, attr.ID)
	}
	return ids, nil
}

// Lookup returns the remote attributes for the given names, tolerating
// absence: names with no remote counterpart are simply missing from the
// result. Used by the diff engine to compare references against the
// resolved attribute's current values.
func (r *Resolver) Lookup(ctx context.Context, names []string, kind models.AttributeKind) (map[string]models.RemoteAttribute, error) {
	var misses []string
	out := make(map[string]models.RemoteAttribute)
	for _, name := range names {
		if attr, ok := r.cache.Get(name, kind); ok {
			out[name] = attr
		} else {
			misses = append(misses, name)
		}
	}
	if len(misses) > 0 {
		if err := r.fetchBatch(ctx, misses, kind); err != nil {
			return nil, err
		}
		for _, name := range misses {
			if attr, ok := r.cache.Get(name, kind); ok {
				out[name] = attr
			}
		}
	}
	return out, nil
}

// EnsureValues makes sure an inline definition's choice values all exist on
// the remote attribute, appending any that are missing. Used for attributes
// that are already assigned to their owner and therefore skipped by Resolve.
func (r *Resolver) EnsureValues(ctx context.Context, def models.AttributeInput, kind models.AttributeKind) error {
	if def.IsReference() || len(def.Values) == 0 {
		return nil
	}
	_, err := r.ensure(ctx, def, kind)
	return err
}

// ensure resolves an inline definition, creating the attribute only when
// no attribute of that name exists anywhere on the platform. Missing choice
// values are appended to an existing attribute, never removed.
func (r *Resolver) ensure(ctx context.Context, def models.AttributeInput, kind models.AttributeKind) (models.RemoteAttribute, error) {
	if attr, ok := r.cache.Get(def.Name, kind); ok {
		return r.appendMissingValues(ctx, attr, def)
	}

	if err := r.fetchBatch(ctx, []string{def.Name}, kind); err != nil {
		return models.RemoteAttribute{}, err
	}
	if attr, ok := r.cache.Get(def.Name, kind); ok {
		r.diag(fmt.Sprintf("attribute %q already exists remotely, reusing %s", def.Name, attr.ID))
		return r.appendMissingValues(ctx, attr, def)
	}

	created, err := r.store.CreateAttribute(ctx, def, kind)
	if err != nil {
		return models.RemoteAttribute{}, apperrors.Wrap(err, apperrors.ErrCodeAttributeConflict,
			fmt.Sprintf("failed to create attribute %q", def.Name))
	}
	r.cache.Put(*created)
	return *created, nil
}

func (r *Resolver) appendMissingValues(ctx context.Context, attr models.RemoteAttribute, def models.AttributeInput) (models.RemoteAttribute, error) {
	missing := missingValues(def.Values, attr.Values)
	if len(missing) == 0 {
		return attr, nil
	}
	if err := r.store.AppendAttributeValues(ctx, attr.ID, missing); err != nil {
		return models.RemoteAttribute{}, apperrors.Wrap(err, apperrors.ErrCodeAttributeConflict,
			fmt.Sprintf("failed to append values to attribute %q", attr.Name))
	}
	attr.Values = append(attr.Values, missing...)
	r.cache.Replace(attr)
	return attr, nil
}

func (r *Resolver) fetchBatch(ctx context.Context, names []string, kind models.AttributeKind) error {
	attrs, err := r.store.FindAttributesByName(ctx, names, kind)
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		r.cache.Put(attr)
	}
	return nil
}

// missingValues returns values present in desired but not in current,
// preserving desired order.
func missingValues(desired, current []string) []string {
	have := make(map[string]bool, len(current))
	for _, v := range current {
		have[v] = true
	}
	var missing []string
	for _, v := range desired {
		if !have[v] {
			missing = append(missing, v)
		}
	}
	return missing
}
