package testutil

import (
	"context"
	"fmt"
	"sync"

	"shopsync/internal/remote"
	"shopsync/pkg/models"
)

// MockStore is an in-memory remote.Store for tests. It serves a canned
// snapshot, records every call, and can be scripted to fail per section
// or per entity name.
type MockStore struct {
	mu sync.Mutex

	Snapshot *models.RemoteSnapshot

	// FailSections makes CreateEntity/UpdateEntity fail for a section.
	FailSections map[remote.Section]error
	// FailEntities makes CreateEntity/UpdateEntity fail for a named entity.
	FailEntities map[string]error
	// FetchErr makes FetchSnapshot fail.
	FetchErr error
	// CreateHook runs at the start of every CreateEntity call, before the
	// store lock, so tests can observe call concurrency.
	CreateHook func()

	// Call records
	Creates       []CreateCall
	Updates       []UpdateCall
	FindCalls     [][]string
	CreatedAttrs  []models.AttributeInput
	AppendedVals  map[string][]string
	Assignments   []AssignCall

	nextID int
}

type CreateCall struct {
	Section remote.Section
	Payload interface{}
}

type UpdateCall struct {
	Section remote.Section
	ID      string
	Patch   interface{}
}

type AssignCall struct {
	OwnerID      string
	AttributeIDs []string
	Role         remote.AttributeRole
}

// NewMockStore creates a mock store over the given snapshot. A nil snapshot
// behaves as an empty platform.
func NewMockStore(snapshot *models.RemoteSnapshot) *MockStore {
	if snapshot == nil {
		snapshot = &models.RemoteSnapshot{}
	}
	return &MockStore{
		Snapshot:     snapshot,
		FailSections: make(map[remote.Section]error),
		FailEntities: make(map[string]error),
		AppendedVals: make(map[string][]string),
	}
}

func (m *MockStore) FetchSnapshot(ctx context.Context) (*models.RemoteSnapshot, error) {
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return m.Snapshot, nil
}

func (m *MockStore) CreateEntity(ctx context.Context, section remote.Section, payload interface{}) (*remote.Entity, error) {
	if m.CreateHook != nil {
		m.CreateHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	name := entityName(payload)
	if err := m.scriptedError(section, name); err != nil {
		return nil, err
	}
	m.Creates = append(m.Creates, CreateCall{Section: section, Payload: payload})
	return &remote.Entity{ID: m.newID(), Name: name}, nil
}

func (m *MockStore) UpdateEntity(ctx context.Context, section remote.Section, id string, patch interface{}) (*remote.Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := entityName(patch)
	if err := m.scriptedError(section, name); err != nil {
		return nil, err
	}
	m.Updates = append(m.Updates, UpdateCall{Section: section, ID: id, Patch: patch})
	return &remote.Entity{ID: id, Name: name}, nil
}

func (m *MockStore) FindAttributesByName(ctx context.Context, names []string, kind models.AttributeKind) ([]models.RemoteAttribute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FindCalls = append(m.FindCalls, append([]string(nil), names...))

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var found []models.RemoteAttribute
	for _, attr := range m.Snapshot.Attributes {
		if wanted[attr.Name] && attr.Kind == kind {
			found = append(found, attr)
		}
	}
	return found, nil
}

func (m *MockStore) CreateAttribute(ctx context.Context, def models.AttributeInput, kind models.AttributeKind) (*models.RemoteAttribute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailEntities[def.Name]; ok {
		return nil, err
	}
	m.CreatedAttrs = append(m.CreatedAttrs, def)
	created := models.RemoteAttribute{
		ID:               m.newID(),
		Name:             def.Name,
		Kind:             kind,
		InputType:        def.InputType,
		Values:           append([]string(nil), def.Values...),
		EntityType:       def.EntityType,
		VariantSelection: def.VariantSelection,
	}
	m.Snapshot.Attributes = append(m.Snapshot.Attributes, created)
	return &created, nil
}

func (m *MockStore) AppendAttributeValues(ctx context.Context, attributeID string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendedVals[attributeID] = append(m.AppendedVals[attributeID], values...)
	for i := range m.Snapshot.Attributes {
		if m.Snapshot.Attributes[i].ID == attributeID {
			m.Snapshot.Attributes[i].Values = append(m.Snapshot.Attributes[i].Values, values...)
		}
	}
	return nil
}

func (m *MockStore) AssignAttributes(ctx context.Context, ownerID string, attributeIDs []string, role remote.AttributeRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Assignments = append(m.Assignments, AssignCall{
		OwnerID:      ownerID,
		AttributeIDs: append([]string(nil), attributeIDs...),
		Role:         role,
	})
	return nil
}

func (m *MockStore) scriptedError(section remote.Section, name string) error {
	if err, ok := m.FailSections[section]; ok {
		return err
	}
	if err, ok := m.FailEntities[name]; ok {
		return err
	}
	return nil
}

func (m *MockStore) newID() string {
	m.nextID++
	return fmt.Sprintf("id-%d", m.nextID)
}

func entityName(payload interface{}) string {
	switch p := payload.(type) {
	case models.Channel:
		return p.Name
	case models.ProductType:
		return p.Name
	case models.PageType:
		return p.Name
	case models.Category:
		return p.Name
	case models.AttributeInput:
		return p.Name
	case interface{ GetName() string }:
		return p.GetName()
	}
	return ""
}
