package models

// RemoteAttribute is an attribute as it exists on the platform, carrying
// the remote identifier alongside the definition.
type RemoteAttribute struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Kind             AttributeKind      `json:"kind"`
	InputType        AttributeInputType `json:"inputType"`
	Values           []string           `json:"values,omitempty"`
	EntityType       string             `json:"entityType,omitempty"`
	VariantSelection bool               `json:"variantSelection,omitempty"`
}

// RemoteChannel is a sales channel with its remote identifier.
type RemoteChannel struct {
	ID string `json:"id"`
	Channel
}

// RemoteProductType is a product type with its remote identifier and the
// attributes currently assigned to it.
type RemoteProductType struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	IsShippingRequired bool              `json:"isShippingRequired"`
	ProductAttributes  []RemoteAttribute `json:"productAttributes,omitempty"`
	VariantAttributes  []RemoteAttribute `json:"variantAttributes,omitempty"`
}

// RemotePageType is a page type with its remote identifier.
type RemotePageType struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Attributes []RemoteAttribute `json:"attributes,omitempty"`
}

// RemoteCategory is a category node with its remote identifier.
type RemoteCategory struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Subcategories []RemoteCategory `json:"subcategories,omitempty"`
}

// RemoteSnapshot is the live platform state, shaped like Configuration but
// with remote identifiers on every entity.
type RemoteSnapshot struct {
	Shop         *ShopSettings       `json:"shop,omitempty"`
	Channels     []RemoteChannel     `json:"channels,omitempty"`
	Attributes   []RemoteAttribute   `json:"attributes,omitempty"`
	ProductTypes []RemoteProductType `json:"productTypes,omitempty"`
	PageTypes    []RemotePageType    `json:"pageTypes,omitempty"`
	Categories   []RemoteCategory    `json:"categories,omitempty"`
}

// NaturalKey returns the matching key for a remote channel.
func (c RemoteChannel) NaturalKey() string {
	if c.Slug != "" {
		return c.Slug
	}
	return c.Name
}
