package metadata

// Resource is a labelled reference to another linked-data resource.
type Resource struct {
	ID    string `json:"@id,omitempty"`
	Label string `json:"label,omitempty"`
}

// Record is the JSON-LD description of one ruling.
// Field order is the serialization order.
type Record struct {
	Context    map[string]any `json:"@context,omitempty"`
	ID         string         `json:"@id"`
	Types      []string       `json:"@type"`
	Identifier string         `json:"identifier"`
	Title      string         `json:"title,omitempty"`
	Abstract   string         `json:"abstract,omitempty"`
	Date       string         `json:"date,omitempty"`
	Issued     string         `json:"issued,omitempty"`
	Modified   string         `json:"modified,omitempty"`
	Language   string         `json:"language,omitempty"`
	Creator    *Resource      `json:"creator,omitempty"`
	Publisher  *Resource      `json:"publisher,omitempty"`
	Kind       *Resource      `json:"type,omitempty"`
	Procedure  []Resource     `json:"procedure,omitempty"`
	Subject    []Resource     `json:"subject,omitempty"`
	CaseNumber []string       `json:"caseNumber,omitempty"`
	Spatial    string         `json:"spatial,omitempty"`
	Relation   []Resource     `json:"relation,omitempty"`
	References []Resource     `json:"references,omitempty"`
}
