package domain

// SchemaField is one top level column of a fetched table schema.
type SchemaField struct {
	Name        string
	Type        string
	Description *string
	Mode        string
}

// TableSchema is the result of a single "get table" catalog call.
type TableSchema struct {
	Table  Table
	Schema []SchemaField
}

// Unit is the complete extraction result of one dataset.
type Unit struct {
	Dataset Dataset
	Tables  []Table
	Fields  []Field
}

// Document is the export shape of one extraction run.
type Document struct {
	ProjectID string    `json:"project_id"`
	Datasets  []Dataset `json:"datasets"`
	Tables    []Table   `json:"tables"`
	Fields    []Field   `json:"fields"`
}

func NewDocument(projectID string) *Document {
	return &Document{
		ProjectID: projectID,
		Datasets:  []Dataset{},
		Tables:    []Table{},
		Fields:    []Field{},
	}
}

func (d *Document) Add(u *Unit) {
	d.Datasets = append(d.Datasets, u.Dataset)
	d.Tables = append(d.Tables, u.Tables...)
	d.Fields = append(d.Fields, u.Fields...)
}

// Summary counts the outcome of one extraction run.
type Summary struct {
	ProjectID       string   `json:"project_id"`
	Datasets        int      `json:"datasets"`
	Tables          int      `json:"tables"`
	Fields          int      `json:"fields"`
	SkippedDatasets int      `json:"skipped_datasets"`
	FailedEntities  int      `json:"failed_entities"`
	Errors          []string `json:"errors,omitempty"`
}

// RepairSummary counts the outcome of restoring tables that only exist
// through their fields.
type RepairSummary struct {
	Missing int      `json:"missing"`
	Added   int      `json:"added"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
