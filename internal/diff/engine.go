package diff

import (
	"context"

	"shopsync/internal/attribute"
	"shopsync/internal/remote"
	"shopsync/pkg/models"
)

// Options controls which sections the engine compares.
type Options struct {
	// Include restricts comparison to the named sections (entity type
	// labels). Empty means all sections.
	Include []string
}

// Engine walks the local configuration and the live remote snapshot section
// by section and produces a DiffSummary. The engine is read-only: it never
// mutates remote state, and it surfaces store errors to the caller unchanged.
type Engine struct {
	store    remote.Store
	resolver *attribute.Resolver
	include  map[string]bool
}

// NewEngine creates a reconciliation engine.
func NewEngine(store remote.Store, resolver *attribute.Resolver, opts Options) *Engine {
	var include map[string]bool
	if len(opts.Include) > 0 {
		include = make(map[string]bool, len(opts.Include))
		for _, s := range opts.Include {
			include[s] = true
		}
	}
	return &Engine{store: store, resolver: resolver, include: include}
}

// Compare reconciles the local configuration against the live snapshot.
// Sections run in a fixed order and results follow local declaration order,
// so output is deterministic and reviewable.
func (e *Engine) Compare(ctx context.Context, cfg *models.Configuration) (*models.DiffSummary, error) {
	snapshot, err := e.store.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.DiffSummary{}

	if e.enabled(models.EntityTypeShop) {
		if r := CompareShop(cfg.Shop, snapshot.Shop); r != nil {
			summary.Add(*r)
		}
	}

	if e.enabled(models.EntityTypeChannels) && (len(cfg.Channels) > 0 || len(snapshot.Channels) > 0) {
		summary.Add(e.compareChannels(cfg.Channels, snapshot.Channels)...)
	}

	if e.enabled(models.EntityTypeAttributes) && (len(cfg.Attributes) > 0 || len(snapshot.Attributes) > 0) {
		results, err := e.compareAttributes(ctx, cfg.Attributes, snapshot.Attributes)
		if err != nil {
			return nil, err
		}
		summary.Add(results...)
	}

	if e.enabled(models.EntityTypeProductTypes) && (len(cfg.ProductTypes) > 0 || len(snapshot.ProductTypes) > 0) {
		results, err := e.compareProductTypes(ctx, cfg.ProductTypes, snapshot.ProductTypes)
		if err != nil {
			return nil, err
		}
		summary.Add(results...)
	}

	if e.enabled(models.EntityTypePageTypes) && (len(cfg.PageTypes) > 0 || len(snapshot.PageTypes) > 0) {
		results, err := e.comparePageTypes(ctx, cfg.PageTypes, snapshot.PageTypes)
		if err != nil {
			return nil, err
		}
		summary.Add(results...)
	}

	if e.enabled(models.EntityTypeCategories) && (len(cfg.Categories) > 0 || len(snapshot.Categories) > 0) {
		summary.Add(CompareCategories(cfg.Categories, snapshot.Categories)...)
	}

	return summary, nil
}

func (e *Engine) enabled(section string) bool {
	if e.include == nil {
		return true
	}
	return e.include[section]
}

func (e *Engine) compareChannels(local []models.Channel, remoteChannels []models.RemoteChannel) []models.DiffResult {
	remoteByKey := make(map[string]models.RemoteChannel, len(remoteChannels))
	for _, rc := range remoteChannels {
		remoteByKey[rc.NaturalKey()] = rc
	}
	localKeys := make(map[string]bool, len(local))

	var results []models.DiffResult
	for _, lc := range local {
		localKeys[lc.NaturalKey()] = true
		if rc, ok := remoteByKey[lc.NaturalKey()]; ok {
			if r := CompareChannel(lc, &rc); r != nil {
				results = append(results, *r)
			}
		} else if r := CompareChannel(lc, nil); r != nil {
			results = append(results, *r)
		}
	}
	for _, rc := range remoteChannels {
		if !localKeys[rc.NaturalKey()] {
			results = append(results, DeletedChannel(rc))
		}
	}
	return results
}

func (e *Engine) compareAttributes(ctx context.Context, local []models.AttributeInput, remoteAttrs []models.RemoteAttribute) ([]models.DiffResult, error) {
	resolved, err := e.resolveReferences(ctx, local, models.AttributeKindProduct)
	if err != nil {
		return nil, err
	}

	remoteByName := make(map[string]models.RemoteAttribute, len(remoteAttrs))
	for _, ra := range remoteAttrs {
		remoteByName[ra.Name] = ra
	}
	localNames := make(map[string]bool, len(local))

	var results []models.DiffResult
	for _, la := range local {
		localNames[la.Name] = true

		desired := la
		if la.IsReference() {
			// A reference in the global section is compared against the
			// resolved attribute, never treated as an inline definition.
			attr, ok := resolved[la.Name]
			if !ok {
				if ra, exists := remoteByName[la.Name]; exists {
					attr = ra
					ok = true
				}
			}
			if !ok {
				continue
			}
			desired.Values = attr.Values
		}

		if ra, ok := remoteByName[la.Name]; ok {
			if r := CompareAttribute(desired, &ra); r != nil {
				results = append(results, *r)
			}
		} else if r := CompareAttribute(desired, nil); r != nil {
			results = append(results, *r)
		}
	}
	for _, ra := range remoteAttrs {
		if !localNames[ra.Name] {
			results = append(results, models.DiffResult{
				Operation:  models.OperationDelete,
				EntityType: models.EntityTypeAttributes,
				EntityName: ra.Name,
				Current:    ra,
			})
		}
	}
	return results, nil
}

func (e *Engine) compareProductTypes(ctx context.Context, local []models.ProductType, remoteTypes []models.RemoteProductType) ([]models.DiffResult, error) {
	var refs []models.AttributeInput
	for _, pt := range local {
		refs = append(refs, pt.ProductAttributes...)
		refs = append(refs, pt.VariantAttributes...)
	}
	resolved, err := e.resolveReferences(ctx, refs, models.AttributeKindProduct)
	if err != nil {
		return nil, err
	}

	remoteByName := make(map[string]models.RemoteProductType, len(remoteTypes))
	for _, rt := range remoteTypes {
		remoteByName[rt.Name] = rt
	}
	localNames := make(map[string]bool, len(local))

	var results []models.DiffResult
	for _, pt := range local {
		localNames[pt.Name] = true
		if rt, ok := remoteByName[pt.Name]; ok {
			if r := CompareProductType(pt, &rt, resolved); r != nil {
				results = append(results, *r)
			}
		} else if r := CompareProductType(pt, nil, resolved); r != nil {
			results = append(results, *r)
		}
	}
	for _, rt := range remoteTypes {
		if !localNames[rt.Name] {
			results = append(results, models.DiffResult{
				Operation:  models.OperationDelete,
				EntityType: models.EntityTypeProductTypes,
				EntityName: rt.Name,
				Current:    rt,
			})
		}
	}
	return results, nil
}

func (e *Engine) comparePageTypes(ctx context.Context, local []models.PageType, remoteTypes []models.RemotePageType) ([]models.DiffResult, error) {
	var refs []models.AttributeInput
	for _, pt := range local {
		refs = append(refs, pt.Attributes...)
	}
	resolved, err := e.resolveReferences(ctx, refs, models.AttributeKindContent)
	if err != nil {
		return nil, err
	}

	remoteByName := make(map[string]models.RemotePageType, len(remoteTypes))
	for _, rt := range remoteTypes {
		remoteByName[rt.Name] = rt
	}
	localNames := make(map[string]bool, len(local))

	var results []models.DiffResult
	for _, pt := range local {
		localNames[pt.Name] = true
		if rt, ok := remoteByName[pt.Name]; ok {
			if r := ComparePageType(pt, &rt, resolved); r != nil {
				results = append(results, *r)
			}
		} else if r := ComparePageType(pt, nil, resolved); r != nil {
			results = append(results, *r)
		}
	}
	for _, rt := range remoteTypes {
		if !localNames[rt.Name] {
			results = append(results, models.DiffResult{
				Operation:  models.OperationDelete,
				EntityType: models.EntityTypePageTypes,
				EntityName: rt.Name,
				Current:    rt,
			})
		}
	}
	return results, nil
}

// resolveReferences looks up the referenced attribute names of a section in
// one batched call so comparisons see the resolved attribute's current
// values. Absence is tolerated here; it just means the owning entity will
// diff as a CREATE or an assignment.
func (e *Engine) resolveReferences(ctx context.Context, inputs []models.AttributeInput, kind models.AttributeKind) (map[string]models.RemoteAttribute, error) {
	var names []string
	seen := make(map[string]bool)
	for _, input := range inputs {
		if input.IsReference() && !seen[input.Name] {
			seen[input.Name] = true
			names = append(names, input.Name)
		}
	}
	if len(names) == 0 {
		return map[string]models.RemoteAttribute{}, nil
	}
	return e.resolver.Lookup(ctx, names, kind)
}
