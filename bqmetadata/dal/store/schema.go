package store

import "fmt"

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func (d dialect) String() string {
	if d == dialectPostgres {
		return "postgres"
	}

	return "sqlite"
}

func (d dialect) primaryKey() string {
	if d == dialectPostgres {
		return "BIGSERIAL PRIMARY KEY"
	}

	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// migrations are idempotent. full_id is nullable so that rows written before
// fully qualified ids existed can still be stored.
func (d dialect) migrations() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS datasets (
	id %s,
	dataset_name VARCHAR(255) NOT NULL,
	full_id VARCHAR(255) UNIQUE,
	project_id VARCHAR(255) NOT NULL,
	friendly_name VARCHAR(255),
	description TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP
)`, d.primaryKey()),
		"CREATE INDEX IF NOT EXISTS ix_datasets_project ON datasets (project_id)",
		"CREATE INDEX IF NOT EXISTS ix_datasets_name ON datasets (dataset_name)",
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS tables (
	id %s,
	table_name VARCHAR(255) NOT NULL,
	full_id VARCHAR(255) UNIQUE,
	dataset_id VARCHAR(255) NOT NULL,
	project_id VARCHAR(255) NOT NULL,
	friendly_name VARCHAR(255),
	description TEXT,
	table_type VARCHAR(50),
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP
)`, d.primaryKey()),
		"CREATE INDEX IF NOT EXISTS ix_tables_dataset ON tables (dataset_id)",
		"CREATE INDEX IF NOT EXISTS ix_tables_project ON tables (project_id)",
		"CREATE INDEX IF NOT EXISTS ix_tables_name ON tables (table_name)",
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS fields (
	id %s,
	name VARCHAR(255) NOT NULL,
	full_id VARCHAR(255) UNIQUE,
	table_id VARCHAR(255) NOT NULL,
	dataset_id VARCHAR(255) NOT NULL,
	project_id VARCHAR(255) NOT NULL,
	field_type VARCHAR(50),
	description TEXT,
	mode VARCHAR(50),
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP
)`, d.primaryKey()),
		"CREATE INDEX IF NOT EXISTS ix_fields_table ON fields (table_id)",
		"CREATE INDEX IF NOT EXISTS ix_fields_dataset ON fields (dataset_id)",
		"CREATE INDEX IF NOT EXISTS ix_fields_project ON fields (project_id)",
		"CREATE INDEX IF NOT EXISTS ix_fields_name ON fields (name)",
	}
}
