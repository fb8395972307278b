package domain

import "strings"

type EntityType string

const (
	EntityTypeDataset EntityType = "dataset"
	EntityTypeTable   EntityType = "table"
	EntityTypeField   EntityType = "field"
)

// Includes reports whether results of type t are requested. An empty filter includes all types.
func (e EntityType) Includes(t EntityType) bool {
	return e == "" || EntityType(strings.ToLower(string(e))) == t
}

type DatasetFilter struct {
	ProjectID string
}

type TableFilter struct {
	ProjectID string
	DatasetID string
}

type FieldFilter struct {
	ProjectID string
	DatasetID string
	TableID   string
}

type SearchQuery struct {
	Query      string     `json:"query" binding:"required"`
	ProjectID  string     `json:"project_id"`
	EntityType EntityType `json:"entity_type"`
}

// Terms returns the whitespace separated terms of the query.
func (q SearchQuery) Terms() []string {
	return strings.Fields(q.Query)
}

type AdvancedSearchQuery struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	DatasetID   string `json:"dataset_id"`
}

type SearchResult struct {
	Datasets []Dataset `json:"datasets"`
	Tables   []Table   `json:"tables"`
	Fields   []Field   `json:"fields"`
}

func NewSearchResult() *SearchResult {
	return &SearchResult{
		Datasets: []Dataset{},
		Tables:   []Table{},
		Fields:   []Field{},
	}
}
