package deploy

import (
	"fmt"

	"shopsync/internal/attribute"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// Preflight validates the local configuration before any network call:
// duplicate natural keys within a section and attribute definition
// constraints. A preflight failure maps to ExitValidationFailed.
func Preflight(cfg *models.Configuration) error {
	if err := checkDuplicates("channel", channelKeys(cfg.Channels)); err != nil {
		return err
	}
	if err := checkDuplicates("attribute", attributeNames(cfg.Attributes)); err != nil {
		return err
	}
	if err := checkDuplicates("product type", productTypeNames(cfg.ProductTypes)); err != nil {
		return err
	}
	if err := checkDuplicates("page type", pageTypeNames(cfg.PageTypes)); err != nil {
		return err
	}
	if err := checkCategoryTree(cfg.Categories, ""); err != nil {
		return err
	}

	if err := attribute.ValidateInputs(cfg.Attributes, "attributes"); err != nil {
		return err
	}
	for _, pt := range cfg.ProductTypes {
		path := fmt.Sprintf("productTypes(%s)", pt.Name)
		if err := attribute.ValidateInputs(pt.ProductAttributes, path+".productAttributes"); err != nil {
			return err
		}
		if err := attribute.ValidateInputs(pt.VariantAttributes, path+".variantAttributes"); err != nil {
			return err
		}
	}
	for _, pt := range cfg.PageTypes {
		path := fmt.Sprintf("pageTypes(%s).attributes", pt.Name)
		if err := attribute.ValidateInputs(pt.Attributes, path); err != nil {
			return err
		}
	}
	return nil
}

// Policy controls deployment-wide safety switches.
type Policy struct {
	// FailOnDelete blocks the run before any stage executes when the diff
	// contains deletions or remote-only attribute values. Deletions are
	// never executed either way; this makes their presence fatal.
	FailOnDelete bool
}

// CheckPolicy inspects an approved diff against the deployment policy.
func CheckPolicy(summary *models.DiffSummary, policy Policy) error {
	if !policy.FailOnDelete {
		return nil
	}
	if summary.Deletes > 0 {
		return apperrors.PolicyBlockedError(
			fmt.Sprintf("%d deletion(s) detected and the fail-on-delete policy is active", summary.Deletes))
	}
	for _, r := range summary.Results {
		for _, c := range r.Changes {
			if c.DesiredValue == nil && c.CurrentValue != nil {
				return apperrors.PolicyBlockedError(fmt.Sprintf(
					"%s %q has remote-only values and the fail-on-delete policy is active",
					r.EntityType, r.EntityName))
			}
		}
	}
	return nil
}

func checkDuplicates(section string, keys []string) error {
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return apperrors.DuplicateKeyError(section, k)
		}
		seen[k] = true
	}
	return nil
}

func checkCategoryTree(categories []models.Category, parent string) error {
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if seen[c.Slug] {
			section := "category"
			if parent != "" {
				section = fmt.Sprintf("category under %q", parent)
			}
			return apperrors.DuplicateKeyError(section, c.Slug)
		}
		seen[c.Slug] = true
		if err := checkCategoryTree(c.Subcategories, c.Slug); err != nil {
			return err
		}
	}
	return nil
}

func channelKeys(channels []models.Channel) []string {
	keys := make([]string, len(channels))
	for i, c := range channels {
		keys[i] = c.NaturalKey()
	}
	return keys
}

func attributeNames(attrs []models.AttributeInput) []string {
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.Name
	}
	return names
}

func productTypeNames(types []models.ProductType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return names
}

func pageTypeNames(types []models.PageType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return names
}
