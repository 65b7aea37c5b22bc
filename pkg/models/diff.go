package models

// Entity type labels used in diff results and stage accounting.
const (
	EntityTypeShop         = "Shop Settings"
	EntityTypeChannels     = "Channels"
	EntityTypeAttributes   = "Attributes"
	EntityTypeProductTypes = "Product Types"
	EntityTypePageTypes    = "Page Types"
	EntityTypeCategories   = "Categories"
)

// Operation is the kind of change a DiffResult describes.
type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// Change is one field-level difference inside an UPDATE result.
type Change struct {
	Field        string      `json:"field"`
	CurrentValue interface{} `json:"currentValue"`
	DesiredValue interface{} `json:"desiredValue"`
	Description  string      `json:"description,omitempty"`
}

// DiffResult is one reconciliation outcome for a single entity.
// UPDATE results carry at least one Change; CREATE results carry the full
// desired payload; DELETE results carry the full current payload.
type DiffResult struct {
	Operation  Operation   `json:"operation"`
	EntityType string      `json:"entityType"`
	EntityName string      `json:"entityName"`
	Changes    []Change    `json:"changes,omitempty"`
	Desired    interface{} `json:"desired,omitempty"`
	Current    interface{} `json:"current,omitempty"`
}

// DiffSummary aggregates the results of one reconciliation run.
// Invariant: TotalChanges == Creates+Updates+Deletes == len(Results).
type DiffSummary struct {
	TotalChanges int          `json:"totalChanges"`
	Creates      int          `json:"creates"`
	Updates      int          `json:"updates"`
	Deletes      int          `json:"deletes"`
	Results      []DiffResult `json:"results"`
}

// Add appends a result and keeps the counters consistent.
func (s *DiffSummary) Add(results ...DiffResult) {
	for _, r := range results {
		s.Results = append(s.Results, r)
		s.TotalChanges++
		switch r.Operation {
		case OperationCreate:
			s.Creates++
		case OperationUpdate:
			s.Updates++
		case OperationDelete:
			s.Deletes++
		}
	}
}

// HasChanges reports whether the summary contains any results.
func (s *DiffSummary) HasChanges() bool {
	return s.TotalChanges > 0
}

// ResultsFor returns the results for one entity type, in declaration order.
func (s *DiffSummary) ResultsFor(entityType string) []DiffResult {
	var out []DiffResult
	for _, r := range s.Results {
		if r.EntityType == entityType {
			out = append(out, r)
		}
	}
	return out
}
