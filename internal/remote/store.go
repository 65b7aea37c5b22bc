package remote

import (
	"context"

	"shopsync/pkg/models"
)

// Section identifies one configuration section on the platform.
type Section string

const (
	SectionShop         Section = "shop"
	SectionChannels     Section = "channels"
	SectionAttributes   Section = "attributes"
	SectionProductTypes Section = "product-types"
	SectionPageTypes    Section = "page-types"
	SectionCategories   Section = "categories"
)

// AttributeRole says which slot of an owning schema an attribute attaches to.
type AttributeRole string

const (
	RoleProductAttribute AttributeRole = "PRODUCT"
	RoleVariantAttribute AttributeRole = "VARIANT"
	RoleContentAttribute AttributeRole = "CONTENT"
)

// Entity is the minimal identity of a remotely created or updated entity.
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Store is the platform capability the engine runs against. Implementations
// own transport, retries and wire formats; the engine assumes every call is
// safe for concurrent use and does not retry on its own.
type Store interface {
	// FetchSnapshot returns the full live configuration state.
	FetchSnapshot(ctx context.Context) (*models.RemoteSnapshot, error)

	// CreateEntity creates one entity in the given section.
	CreateEntity(ctx context.Context, section Section, payload interface{}) (*Entity, error)

	// UpdateEntity applies a partial update to one entity.
	UpdateEntity(ctx context.Context, section Section, id string, patch interface{}) (*Entity, error)

	// FindAttributesByName looks up attributes globally by name, in one
	// batched call. Names with no match are simply absent from the result.
	FindAttributesByName(ctx context.Context, names []string, kind models.AttributeKind) ([]models.RemoteAttribute, error)

	// CreateAttribute creates a global attribute from an inline definition.
	CreateAttribute(ctx context.Context, def models.AttributeInput, kind models.AttributeKind) (*models.RemoteAttribute, error)

	// AppendAttributeValues adds choice values to a multi-value attribute.
	// Values are only ever appended, never renamed or removed.
	AppendAttributeValues(ctx context.Context, attributeID string, values []string) error

	// AssignAttributes attaches already-resolved attributes to an owning schema.
	AssignAttributes(ctx context.Context, ownerID string, attributeIDs []string, role AttributeRole) error
}
