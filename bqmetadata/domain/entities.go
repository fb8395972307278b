package domain

type TableType string

const (
	TableTypeTable            TableType = "TABLE"
	TableTypeView             TableType = "VIEW"
	TableTypeMaterializedView TableType = "MATERIALIZED_VIEW"
	TableTypeExternal         TableType = "EXTERNAL"
	TableTypeSnapshot         TableType = "SNAPSHOT"
)

type FieldMode string

const (
	FieldModeNullable FieldMode = "NULLABLE"
	FieldModeRequired FieldMode = "REQUIRED"
	FieldModeRepeated FieldMode = "REPEATED"
)

// Dataset is the dataset record. Nil optional attributes mean the value was not
// fetched and never erase a persisted value.
type Dataset struct {
	ID           string  `json:"id"`
	FullID       string  `json:"full_id"`
	ProjectID    string  `json:"project_id"`
	FriendlyName *string `json:"friendly_name"`
	Description  *string `json:"description"`
}

// Table is the table record, linked to its dataset by short name.
type Table struct {
	ID           string  `json:"id"`
	FullID       string  `json:"full_id"`
	DatasetID    string  `json:"dataset_id"`
	ProjectID    string  `json:"project_id"`
	FriendlyName *string `json:"friendly_name"`
	Description  *string `json:"description"`
	TableType    *string `json:"table_type"`
}

// Field is a top level column of a table schema.
type Field struct {
	Name        string  `json:"name"`
	FullID      string  `json:"full_id"`
	TableID     string  `json:"table_id"`
	DatasetID   string  `json:"dataset_id"`
	ProjectID   string  `json:"project_id"`
	FieldType   *string `json:"field_type"`
	Description *string `json:"description"`
	Mode        *string `json:"mode"`
}

// TableWithFields is a persisted table together with the fields stored under its full id.
type TableWithFields struct {
	Table
	Fields []Field `json:"fields"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// StringValue returns the value of s, or "" when s is nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
