package models

// AttributeKind scopes an attribute to the schema family it belongs to.
// Product-kind attributes attach to product types, content-kind attributes
// attach to page types. The same name may exist once per kind.
type AttributeKind string

const (
	AttributeKindProduct AttributeKind = "PRODUCT"
	AttributeKindContent AttributeKind = "CONTENT"
)

// AttributeInputType is the input widget/value type of an attribute.
type AttributeInputType string

const (
	InputTypePlainText   AttributeInputType = "PLAIN_TEXT"
	InputTypeRichText    AttributeInputType = "RICH_TEXT"
	InputTypeNumeric     AttributeInputType = "NUMERIC"
	InputTypeDate        AttributeInputType = "DATE"
	InputTypeBoolean     AttributeInputType = "BOOLEAN"
	InputTypeFile        AttributeInputType = "FILE"
	InputTypeReference   AttributeInputType = "REFERENCE"
	InputTypeDropdown    AttributeInputType = "DROPDOWN"
	InputTypeMultiselect AttributeInputType = "MULTISELECT"
	InputTypeSwatch      AttributeInputType = "SWATCH"
)

// MultiValue reports whether the input type carries a named choice-value set.
func (t AttributeInputType) MultiValue() bool {
	switch t {
	case InputTypeDropdown, InputTypeMultiselect, InputTypeSwatch:
		return true
	}
	return false
}

// AttributeInput is either a reference to an existing attribute (name only)
// or a full inline definition. The variant is discriminated once at load time
// by the presence of definition-only fields.
type AttributeInput struct {
	Name             string             `yaml:"name" json:"name"`
	InputType        AttributeInputType `yaml:"inputType,omitempty" json:"inputType,omitempty"`
	Values           []string           `yaml:"values,omitempty" json:"values,omitempty"`
	EntityType       string             `yaml:"entityType,omitempty" json:"entityType,omitempty"` // target kind for REFERENCE attributes
	VariantSelection bool               `yaml:"variantSelection,omitempty" json:"variantSelection,omitempty"`
}

// IsReference reports whether the input is a reference to an attribute
// defined elsewhere, as opposed to an inline definition.
func (a AttributeInput) IsReference() bool {
	return a.InputType == ""
}

// ShopSettings is the singleton shop section. All fields are optional;
// only set fields participate in comparison.
type ShopSettings struct {
	DefaultMailSenderName    *string `yaml:"defaultMailSenderName,omitempty" json:"defaultMailSenderName,omitempty"`
	DefaultMailSenderAddress *string `yaml:"defaultMailSenderAddress,omitempty" json:"defaultMailSenderAddress,omitempty"`
	DisplayGrossPrices       *bool   `yaml:"displayGrossPrices,omitempty" json:"displayGrossPrices,omitempty"`
	TrackInventoryByDefault  *bool   `yaml:"trackInventoryByDefault,omitempty" json:"trackInventoryByDefault,omitempty"`
	FulfillmentAutoApprove   *bool   `yaml:"fulfillmentAutoApprove,omitempty" json:"fulfillmentAutoApprove,omitempty"`
	DefaultWeightUnit        *string `yaml:"defaultWeightUnit,omitempty" json:"defaultWeightUnit,omitempty"`
}

// Channel is a sales channel. Slug is the natural key.
type Channel struct {
	Name           string `yaml:"name" json:"name"`
	Slug           string `yaml:"slug" json:"slug"`
	CurrencyCode   string `yaml:"currencyCode" json:"currencyCode"`
	DefaultCountry string `yaml:"defaultCountry" json:"defaultCountry"`
	IsActive       bool   `yaml:"isActive,omitempty" json:"isActive,omitempty"`
}

// ProductType is a product schema definition. Name is the natural key.
type ProductType struct {
	Name               string           `yaml:"name" json:"name"`
	IsShippingRequired bool             `yaml:"isShippingRequired,omitempty" json:"isShippingRequired,omitempty"`
	ProductAttributes  []AttributeInput `yaml:"productAttributes,omitempty" json:"productAttributes,omitempty"`
	VariantAttributes  []AttributeInput `yaml:"variantAttributes,omitempty" json:"variantAttributes,omitempty"`
}

// PageType is a content schema definition. Name is the natural key.
type PageType struct {
	Name       string           `yaml:"name" json:"name"`
	Attributes []AttributeInput `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// Category is a node in the category tree. Slug is the natural key within
// its parent; subcategories recurse.
type Category struct {
	Name          string     `yaml:"name" json:"name"`
	Slug          string     `yaml:"slug" json:"slug"`
	Subcategories []Category `yaml:"subcategories,omitempty" json:"subcategories,omitempty"`
}

// Configuration is the fully parsed desired-state document. Nil/empty
// sections mean "not configured" and are skipped by reconciliation.
type Configuration struct {
	Shop         *ShopSettings    `yaml:"shop,omitempty" json:"shop,omitempty"`
	Channels     []Channel        `yaml:"channels,omitempty" json:"channels,omitempty"`
	Attributes   []AttributeInput `yaml:"attributes,omitempty" json:"attributes,omitempty"` // global product-kind attribute definitions
	ProductTypes []ProductType    `yaml:"productTypes,omitempty" json:"productTypes,omitempty"`
	PageTypes    []PageType       `yaml:"pageTypes,omitempty" json:"pageTypes,omitempty"`
	Categories   []Category       `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// NaturalKey returns the matching key for a channel.
func (c Channel) NaturalKey() string {
	if c.Slug != "" {
		return c.Slug
	}
	return c.Name
}
