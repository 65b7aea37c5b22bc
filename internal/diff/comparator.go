package diff

import (
	"fmt"

	"shopsync/pkg/models"
)

// The comparators in this file are pure: one local entity against one remote
// entity of the same kind, producing field-level changes. Matching by natural
// key happens in the engine; a nil remote means CREATE, a nil local means
// DELETE, and a comparison with no differing fields produces no result.

// CompareShop compares the singleton shop section. The shop always exists
// remotely, so the only possible operation is UPDATE.
func CompareShop(local, remote *models.ShopSettings) *models.DiffResult {
	if local == nil {
		return nil
	}
	if remote == nil {
		remote = &models.ShopSettings{}
	}

	var changes []models.Change
	changes = appendStringChange(changes, "defaultMailSenderName", remote.DefaultMailSenderName, local.DefaultMailSenderName)
	changes = appendStringChange(changes, "defaultMailSenderAddress", remote.DefaultMailSenderAddress, local.DefaultMailSenderAddress)
	changes = appendBoolChange(changes, "displayGrossPrices", remote.DisplayGrossPrices, local.DisplayGrossPrices)
	changes = appendBoolChange(changes, "trackInventoryByDefault", remote.TrackInventoryByDefault, local.TrackInventoryByDefault)
	changes = appendBoolChange(changes, "fulfillmentAutoApprove", remote.FulfillmentAutoApprove, local.FulfillmentAutoApprove)
	changes = appendStringChange(changes, "defaultWeightUnit", remote.DefaultWeightUnit, local.DefaultWeightUnit)

	if len(changes) == 0 {
		return nil
	}
	return &models.DiffResult{
		Operation:  models.OperationUpdate,
		EntityType: models.EntityTypeShop,
		EntityName: "Shop",
		Changes:    changes,
		Current:    remote,
		Desired:    local,
	}
}

// CompareChannel compares one channel against its remote counterpart.
func CompareChannel(local models.Channel, remote *models.RemoteChannel) *models.DiffResult {
	if remote == nil {
		return &models.DiffResult{
			Operation:  models.OperationCreate,
			EntityType: models.EntityTypeChannels,
			EntityName: local.Name,
			Desired:    local,
		}
	}

	var changes []models.Change
	if local.Name != remote.Name {
		changes = append(changes, scalarChange("name", remote.Name, local.Name))
	}
	if local.CurrencyCode != remote.CurrencyCode {
		changes = append(changes, scalarChange("currencyCode", remote.CurrencyCode, local.CurrencyCode))
	}
	if local.DefaultCountry != remote.DefaultCountry {
		changes = append(changes, scalarChange("defaultCountry", remote.DefaultCountry, local.DefaultCountry))
	}
	if local.IsActive != remote.IsActive {
		changes = append(changes, scalarChange("isActive", remote.IsActive, local.IsActive))
	}

	if len(changes) == 0 {
		return nil
	}
	return &models.DiffResult{
		Operation:  models.OperationUpdate,
		EntityType: models.EntityTypeChannels,
		EntityName: local.Name,
		Changes:    changes,
		Current:    remote,
		Desired:    local,
	}
}

// DeletedChannel builds the DELETE result for a channel with no local
// counterpart.
func DeletedChannel(remote models.RemoteChannel) models.DiffResult {
	return models.DiffResult{
		Operation:  models.OperationDelete,
		EntityType: models.EntityTypeChannels,
		EntityName: remote.Name,
		Current:    remote,
	}
}

// CompareAttribute compares one global attribute definition. Choice-value
// sets only ever grow: locally added values become changes, values that
// exist only remotely are reported without a removal instruction.
func CompareAttribute(local models.AttributeInput, remote *models.RemoteAttribute) *models.DiffResult {
	if remote == nil {
		return &models.DiffResult{
			Operation:  models.OperationCreate,
			EntityType: models.EntityTypeAttributes,
			EntityName: local.Name,
			Desired:    local,
		}
	}

	changes := attributeValueChanges("values", local.Values, remote.Values)
	if len(changes) == 0 {
		return nil
	}
	return &models.DiffResult{
		Operation:  models.OperationUpdate,
		EntityType: models.EntityTypeAttributes,
		EntityName: local.Name,
		Changes:    changes,
		Current:    remote,
		Desired:    local,
	}
}

// CompareProductType compares a product type including its attribute lists.
// Reference inputs are compared against the resolved attribute's current
// values, supplied by the caller, so a reference never diffs as a phantom
// inline definition.
func CompareProductType(local models.ProductType, remote *models.RemoteProductType, resolved map[string]models.RemoteAttribute) *models.DiffResult {
	if remote == nil {
		return &models.DiffResult{
			Operation:  models.OperationCreate,
			EntityType: models.EntityTypeProductTypes,
			EntityName: local.Name,
			Desired:    local,
		}
	}

	var changes []models.Change
	if local.IsShippingRequired != remote.IsShippingRequired {
		changes = append(changes, scalarChange("isShippingRequired", remote.IsShippingRequired, local.IsShippingRequired))
	}
	changes = append(changes, compareAttributeList("productAttributes", local.ProductAttributes, remote.ProductAttributes, resolved)...)
	changes = append(changes, compareAttributeList("variantAttributes", local.VariantAttributes, remote.VariantAttributes, resolved)...)

	if len(changes) == 0 {
		return nil
	}
	return &models.DiffResult{
		Operation:  models.OperationUpdate,
		EntityType: models.EntityTypeProductTypes,
		EntityName: local.Name,
		Changes:    changes,
		Current:    remote,
		Desired:    local,
	}
}

// ComparePageType compares a page type including its attribute list.
func ComparePageType(local models.PageType, remote *models.RemotePageType, resolved map[string]models.RemoteAttribute) *models.DiffResult {
	if remote == nil {
		return &models.DiffResult{
			Operation:  models.OperationCreate,
			EntityType: models.EntityTypePageTypes,
			EntityName: local.Name,
			Desired:    local,
		}
	}

	changes := compareAttributeList("attributes", local.Attributes, remote.Attributes, resolved)
	if len(changes) == 0 {
		return nil
	}
	return &models.DiffResult{
		Operation:  models.OperationUpdate,
		EntityType: models.EntityTypePageTypes,
		EntityName: local.Name,
		Changes:    changes,
		Current:    remote,
		Desired:    local,
	}
}

// CompareCategories walks both category trees. A subtree present only
// locally is a single CREATE of the whole subtree, not of each leaf.
// Nested entity names use slash-separated paths for reviewable output.
func CompareCategories(local []models.Category, remote []models.RemoteCategory) []models.DiffResult {
	return compareCategoryLevel(local, remote, "")
}

func compareCategoryLevel(local []models.Category, remote []models.RemoteCategory, parent string) []models.DiffResult {
	remoteBySlug := make(map[string]models.RemoteCategory, len(remote))
	for _, rc := range remote {
		remoteBySlug[rc.Slug] = rc
	}
	localSlugs := make(map[string]bool, len(local))

	var results []models.DiffResult
	for _, lc := range local {
		localSlugs[lc.Slug] = true
		path := categoryPath(parent, lc.Name)

		rc, exists := remoteBySlug[lc.Slug]
		if !exists {
			results = append(results, models.DiffResult{
				Operation:  models.OperationCreate,
				EntityType: models.EntityTypeCategories,
				EntityName: path,
				Desired:    lc,
			})
			continue
		}

		if lc.Name != rc.Name {
			results = append(results, models.DiffResult{
				Operation:  models.OperationUpdate,
				EntityType: models.EntityTypeCategories,
				EntityName: path,
				Changes:    []models.Change{scalarChange("name", rc.Name, lc.Name)},
				Current:    rc,
				Desired:    lc,
			})
		}
		results = append(results, compareCategoryLevel(lc.Subcategories, rc.Subcategories, path)...)
	}

	for _, rc := range remote {
		if !localSlugs[rc.Slug] {
			results = append(results, models.DiffResult{
				Operation:  models.OperationDelete,
				EntityType: models.EntityTypeCategories,
				EntityName: categoryPath(parent, rc.Name),
				Current:    rc,
			})
		}
	}
	return results
}

// compareAttributeList compares one attribute slot of an owning schema.
// An attribute declared locally but not assigned remotely becomes an
// assignment change; assigned attributes get growth-only value comparison.
func compareAttributeList(field string, local []models.AttributeInput, remote []models.RemoteAttribute, resolved map[string]models.RemoteAttribute) []models.Change {
	remoteByName := make(map[string]models.RemoteAttribute, len(remote))
	for _, ra := range remote {
		remoteByName[ra.Name] = ra
	}

	var changes []models.Change
	for _, input := range local {
		assigned, ok := remoteByName[input.Name]
		if !ok {
			changes = append(changes, models.Change{
				Field:        field,
				CurrentValue: nil,
				DesiredValue: input.Name,
				Description:  fmt.Sprintf("assign attribute %q", input.Name),
			})
			continue
		}

		desiredValues := input.Values
		if input.IsReference() {
			if attr, ok := resolved[input.Name]; ok {
				desiredValues = attr.Values
			} else {
				desiredValues = assigned.Values
			}
		}
		for _, c := range attributeValueChanges(field, desiredValues, assigned.Values) {
			c.Description = fmt.Sprintf("attribute %q: %s", input.Name, c.Description)
			changes = append(changes, c)
		}
	}
	return changes
}

// attributeValueChanges computes the set difference of choice values.
// Additions become actionable changes; remote-only values are reported but
// never produce a removal instruction.
func attributeValueChanges(field string, desired, current []string) []models.Change {
	currentSet := make(map[string]bool, len(current))
	for _, v := range current {
		currentSet[v] = true
	}
	desiredSet := make(map[string]bool, len(desired))

	var changes []models.Change
	for _, v := range desired {
		desiredSet[v] = true
		if !currentSet[v] {
			changes = append(changes, models.Change{
				Field:        field,
				CurrentValue: nil,
				DesiredValue: v,
				Description:  fmt.Sprintf("add value %q", v),
			})
		}
	}
	for _, v := range current {
		if !desiredSet[v] {
			changes = append(changes, models.Change{
				Field:        field,
				CurrentValue: v,
				DesiredValue: nil,
				Description:  fmt.Sprintf("value %q exists only remotely; values are never removed", v),
			})
		}
	}
	return changes
}

func categoryPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func scalarChange(field string, current, desired interface{}) models.Change {
	return models.Change{
		Field:        field,
		CurrentValue: current,
		DesiredValue: desired,
		Description:  fmt.Sprintf("%s: %v -> %v", field, current, desired),
	}
}

func appendStringChange(changes []models.Change, field string, current, desired *string) []models.Change {
	if desired == nil {
		return changes
	}
	cur := ""
	if current != nil {
		cur = *current
	}
	if cur == *desired {
		return changes
	}
	return append(changes, scalarChange(field, cur, *desired))
}

func appendBoolChange(changes []models.Change, field string, current, desired *bool) []models.Change {
	if desired == nil {
		return changes
	}
	cur := false
	if current != nil {
		cur = *current
	}
	if cur == *desired {
		return changes
	}
	return append(changes, scalarChange(field, cur, *desired))
}
