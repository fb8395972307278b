package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
)

const (
	datasetColumns = "dataset_name, full_id, project_id, friendly_name, description"
	tableColumns   = "table_name, full_id, dataset_id, project_id, friendly_name, description, table_type"
	fieldColumns   = "name, full_id, table_id, dataset_id, project_id, field_type, description, mode"
)

// where accumulates AND-ed conditions and their arguments.
type where struct {
	clauses []string
	args    []interface{}
}

func (w *where) add(clause string, args ...interface{}) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, args...)
}

func (w *where) addIf(ok bool, clause string, args ...interface{}) {
	if ok {
		w.add(clause, args...)
	}
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(w.clauses, " AND ")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDataset(row scanner) (domain.Dataset, error) {
	var (
		d      domain.Dataset
		fullID sql.NullString
	)

	if err := row.Scan(&d.ID, &fullID, &d.ProjectID, &d.FriendlyName, &d.Description); err != nil {
		return d, err
	}

	d.FullID = fullID.String

	return d, nil
}

func scanTable(row scanner) (domain.Table, error) {
	var (
		t      domain.Table
		fullID sql.NullString
	)

	if err := row.Scan(&t.ID, &fullID, &t.DatasetID, &t.ProjectID, &t.FriendlyName, &t.Description, &t.TableType); err != nil {
		return t, err
	}

	t.FullID = fullID.String

	return t, nil
}

func scanField(row scanner) (domain.Field, error) {
	var (
		f      domain.Field
		fullID sql.NullString
	)

	if err := row.Scan(&f.Name, &fullID, &f.TableID, &f.DatasetID, &f.ProjectID, &f.FieldType, &f.Description, &f.Mode); err != nil {
		return f, err
	}

	f.FullID = fullID.String

	return f, nil
}

func queryAll[T any](ctx context.Context, s *Store, scan func(scanner) (T, error), query string, args ...interface{}) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, rows.Err()
}

// ListProjects returns the distinct projects owning at least one dataset.
func (s *Store) ListProjects(ctx context.Context) ([]string, error) {
	scan := func(row scanner) (string, error) {
		var p string
		err := row.Scan(&p)

		return p, err
	}

	projects, err := queryAll(ctx, s, scan, "SELECT DISTINCT project_id FROM datasets ORDER BY project_id")
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (s *Store) ListDatasets(ctx context.Context, filter domain.DatasetFilter) ([]domain.Dataset, error) {
	var w where
	w.addIf(filter.ProjectID != "", "project_id = ?", filter.ProjectID)

	datasets, err := queryAll(ctx, s, scanDataset, "SELECT "+datasetColumns+" FROM datasets"+w.String()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}

	return datasets, nil
}

func (s *Store) ListTables(ctx context.Context, filter domain.TableFilter) ([]domain.Table, error) {
	var w where
	w.addIf(filter.ProjectID != "", "project_id = ?", filter.ProjectID)
	w.addIf(filter.DatasetID != "", "dataset_id = ?", filter.DatasetID)

	tables, err := queryAll(ctx, s, scanTable, "SELECT "+tableColumns+" FROM tables"+w.String()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	return tables, nil
}

// ListFields filters fields by project, dataset and table. A table filter is
// matched by full id prefix when the project is given or can be derived from
// the dataset, otherwise by the table short name.
func (s *Store) ListFields(ctx context.Context, filter domain.FieldFilter) ([]domain.Field, error) {
	var w where
	w.addIf(filter.ProjectID != "", "project_id = ?", filter.ProjectID)
	w.addIf(filter.DatasetID != "", "dataset_id = ?", filter.DatasetID)

	if filter.TableID != "" {
		switch {
		case filter.DatasetID != "" && filter.ProjectID != "":
			w.add(hasPrefix("full_id", domain.TableFullID(filter.ProjectID, filter.DatasetID, filter.TableID)+"."))
		case filter.DatasetID != "":
			projectID, err := s.datasetProject(ctx, filter.DatasetID)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("list fields: %w", err)
			}

			if err == nil {
				w.add(hasPrefix("full_id", domain.TableFullID(projectID, filter.DatasetID, filter.TableID)+"."))
			}
		default:
			w.add("table_id = ?", filter.TableID)
		}
	}

	fields, err := queryAll(ctx, s, scanField, "SELECT "+fieldColumns+" FROM fields"+w.String()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	return fields, nil
}

// GetTableWithFields looks a table up by dataset and table short names, then
// by full id, and returns it with its fields. ErrNotFound is returned when
// no table matches.
func (s *Store) GetTableWithFields(ctx context.Context, datasetName, tableName string) (*domain.TableWithFields, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind("SELECT "+tableColumns+" FROM tables WHERE dataset_id = ? AND table_name = ? ORDER BY id LIMIT 1"),
		datasetName, tableName,
	)

	t, err := scanTable(row)
	if errors.Is(err, sql.ErrNoRows) {
		t, err = s.tableByDatasetProject(ctx, datasetName, tableName)
	}

	if err != nil {
		return nil, fmt.Errorf("get table %s.%s: %w", datasetName, tableName, ConvertDBError(err))
	}

	var fields []domain.Field

	if t.FullID != "" {
		clause, prefix := hasPrefix("full_id", t.FullID+".")
		fields, err = queryAll(ctx, s, scanField, "SELECT "+fieldColumns+" FROM fields WHERE "+clause+" ORDER BY id", prefix)
	} else {
		fields, err = queryAll(ctx, s, scanField,
			"SELECT "+fieldColumns+" FROM fields WHERE project_id = ? AND dataset_id = ? AND table_id = ? ORDER BY id",
			t.ProjectID, t.DatasetID, t.ID,
		)
	}

	if err != nil {
		return nil, fmt.Errorf("get fields of %s: %w", t.FullID, err)
	}

	return &domain.TableWithFields{Table: t, Fields: fields}, nil
}

func (s *Store) tableByDatasetProject(ctx context.Context, datasetName, tableName string) (domain.Table, error) {
	projectID, err := s.datasetProject(ctx, datasetName)
	if err != nil {
		return domain.Table{}, err
	}

	row := s.db.QueryRowContext(ctx,
		s.rebind("SELECT "+tableColumns+" FROM tables WHERE full_id = ?"),
		domain.TableFullID(projectID, datasetName, tableName),
	)

	return scanTable(row)
}

func (s *Store) datasetProject(ctx context.Context, datasetName string) (string, error) {
	var projectID string

	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT project_id FROM datasets WHERE dataset_name = ? ORDER BY id LIMIT 1"),
		datasetName,
	).Scan(&projectID)

	return projectID, ConvertDBError(err)
}

// MissingTables returns the tables that own stored fields but have no row of
// their own.
func (s *Store) MissingTables(ctx context.Context) ([]domain.TableRef, error) {
	scan := func(row scanner) (domain.TableRef, error) {
		var r domain.TableRef
		err := row.Scan(&r.TableID, &r.DatasetID, &r.ProjectID)

		return r, err
	}

	refs, err := queryAll(ctx, s, scan, `SELECT DISTINCT f.table_id, f.dataset_id, f.project_id
FROM fields f
LEFT JOIN tables t ON t.table_name = f.table_id AND t.dataset_id = f.dataset_id AND t.project_id = f.project_id
WHERE t.id IS NULL
ORDER BY f.project_id, f.dataset_id, f.table_id`)
	if err != nil {
		return nil, fmt.Errorf("list missing tables: %w", err)
	}

	return refs, nil
}
