package attribute

import (
	"fmt"

	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// variantSelectableTypes is the fixed set of input types that may carry
// variantSelection. The platform rejects the flag on anything else, so it
// is caught here before any remote mutation.
var variantSelectableTypes = map[models.AttributeInputType]bool{
	models.InputTypeDropdown: true,
	models.InputTypeSwatch:   true,
	models.InputTypeBoolean:  true,
	models.InputTypeNumeric:  true,
}

// ValidateInputs checks inline attribute definitions for constraint
// violations. References (name only) have nothing to validate locally.
func ValidateInputs(inputs []models.AttributeInput, path string) error {
	for i, input := range inputs {
		if input.Name == "" {
			return apperrors.ValidationError(
				fmt.Sprintf("%s[%d]", path, i), "attribute name is required")
		}
		if input.IsReference() {
			continue
		}

		loc := fmt.Sprintf("%s[%d] (%s)", path, i, input.Name)

		if input.InputType == models.InputTypeReference && input.EntityType == "" {
			return apperrors.New(apperrors.ErrCodeRequiredField,
				fmt.Sprintf("%s: REFERENCE attribute must declare its target entity type", loc)).
				WithContext("attribute", input.Name)
		}
		if input.VariantSelection && !variantSelectableTypes[input.InputType] {
			return apperrors.ValidationError(loc,
				fmt.Sprintf("variantSelection is not supported on input type %s", input.InputType))
		}
		if len(input.Values) > 0 && !input.InputType.MultiValue() {
			return apperrors.ValidationError(loc,
				fmt.Sprintf("input type %s does not accept choice values", input.InputType))
		}
	}
	return nil
}
