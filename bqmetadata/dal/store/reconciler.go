package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
)

type column struct {
	name  string
	value interface{}
}

type optionalColumn struct {
	name  string
	value *string
}

// record describes one row to reconcile. Optional columns are only written
// when set, so an unknown value never erases a persisted one.
type record struct {
	kind     string
	table    string
	fullID   string
	legacy   []column
	required []column
	optional []optionalColumn
}

func (s *Store) SaveDataset(ctx context.Context, d domain.Dataset) error {
	return s.save(ctx, record{
		kind:   "dataset",
		table:  "datasets",
		fullID: d.FullID,
		legacy: []column{
			{"project_id", d.ProjectID},
			{"dataset_name", d.ID},
		},
		required: []column{
			{"dataset_name", d.ID},
			{"project_id", d.ProjectID},
		},
		optional: []optionalColumn{
			{"friendly_name", d.FriendlyName},
			{"description", d.Description},
		},
	})
}

func (s *Store) SaveTable(ctx context.Context, t domain.Table) error {
	return s.save(ctx, record{
		kind:   "table",
		table:  "tables",
		fullID: t.FullID,
		legacy: []column{
			{"project_id", t.ProjectID},
			{"dataset_id", t.DatasetID},
			{"table_name", t.ID},
		},
		required: []column{
			{"table_name", t.ID},
			{"dataset_id", t.DatasetID},
			{"project_id", t.ProjectID},
		},
		optional: []optionalColumn{
			{"friendly_name", t.FriendlyName},
			{"description", t.Description},
			{"table_type", t.TableType},
		},
	})
}

func (s *Store) SaveField(ctx context.Context, f domain.Field) error {
	return s.save(ctx, record{
		kind:   "field",
		table:  "fields",
		fullID: f.FullID,
		legacy: []column{
			{"project_id", f.ProjectID},
			{"dataset_id", f.DatasetID},
			{"table_id", f.TableID},
			{"name", f.Name},
		},
		required: []column{
			{"name", f.Name},
			{"table_id", f.TableID},
			{"dataset_id", f.DatasetID},
			{"project_id", f.ProjectID},
		},
		optional: []optionalColumn{
			{"field_type", f.FieldType},
			{"description", f.Description},
			{"mode", f.Mode},
		},
	})
}

// save updates the row matching r by full id, then by its legacy key, and
// inserts a new row when neither matches.
func (s *Store) save(ctx context.Context, r record) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		id, found, err := s.lookup(ctx, tx, r)
		if err != nil {
			return err
		}

		if found {
			return s.update(ctx, tx, r, id)
		}

		return s.insert(ctx, tx, r)
	})
	if err == nil {
		return nil
	}

	err = ConvertDBError(err)
	if errors.Is(err, ErrUniqueViolation) {
		s.loggerProvider(ctx).Errorf("error saving %s %s: %v", r.kind, r.fullID, err)
	}

	return fmt.Errorf("save %s %s: %w", r.kind, r.fullID, err)
}

func (s *Store) lookup(ctx context.Context, tx *sql.Tx, r record) (int64, bool, error) {
	var id int64

	q := s.rebind(fmt.Sprintf("SELECT id FROM %s WHERE full_id = ?", r.table))

	err := tx.QueryRowContext(ctx, q, r.fullID).Scan(&id)
	if err == nil {
		return id, true, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	// a legacy row never matches when it already belongs to another full id
	clauses := make([]string, 0, len(r.legacy)+1)
	args := make([]interface{}, 0, len(r.legacy)+1)

	for _, c := range r.legacy {
		clauses = append(clauses, c.name+" = ?")
		args = append(args, c.value)
	}

	clauses = append(clauses, "(full_id IS NULL OR full_id = ?)")
	args = append(args, r.fullID)

	q = s.rebind(fmt.Sprintf("SELECT id FROM %s WHERE %s ORDER BY id LIMIT 1", r.table, strings.Join(clauses, " AND ")))

	err = tx.QueryRowContext(ctx, q, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}

func (s *Store) update(ctx context.Context, tx *sql.Tx, r record, id int64) error {
	sets := []string{"full_id = ?", "updated_at = ?"}
	args := []interface{}{r.fullID, s.now()}

	for _, c := range r.required {
		sets = append(sets, c.name+" = ?")
		args = append(args, c.value)
	}

	for _, c := range r.optional {
		if c.value == nil {
			continue
		}

		sets = append(sets, c.name+" = ?")
		args = append(args, *c.value)
	}

	args = append(args, id)

	q := s.rebind(fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", r.table, strings.Join(sets, ", ")))

	_, err := tx.ExecContext(ctx, q, args...)

	return err
}

func (s *Store) insert(ctx context.Context, tx *sql.Tx, r record) error {
	cols := []string{"full_id", "created_at"}
	args := []interface{}{r.fullID, s.now()}

	for _, c := range r.required {
		cols = append(cols, c.name)
		args = append(args, c.value)
	}

	for _, c := range r.optional {
		cols = append(cols, c.name)

		if c.value == nil {
			args = append(args, nil)
			continue
		}

		args = append(args, *c.value)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")

	q := s.rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", r.table, strings.Join(cols, ", "), placeholders))

	_, err := tx.ExecContext(ctx, q, args...)

	return err
}

// DeleteDataset removes the dataset with its tables and fields. It reports
// whether the dataset existed.
func (s *Store) DeleteDataset(ctx context.Context, projectID, datasetName string) (bool, error) {
	var existed bool

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		n, err := s.count(ctx, tx, "SELECT COUNT(*) FROM datasets WHERE project_id = ? AND dataset_name = ?", projectID, datasetName)
		if err != nil || n == 0 {
			return err
		}

		existed = true

		for _, q := range []string{
			"DELETE FROM fields WHERE project_id = ? AND dataset_id = ?",
			"DELETE FROM tables WHERE project_id = ? AND dataset_id = ?",
			"DELETE FROM datasets WHERE project_id = ? AND dataset_name = ?",
		} {
			if _, err := tx.ExecContext(ctx, s.rebind(q), projectID, datasetName); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete dataset %s: %w", domain.DatasetFullID(projectID, datasetName), ConvertDBError(err))
	}

	return existed, nil
}

// DeleteTable removes the table with its fields. It reports whether the table existed.
func (s *Store) DeleteTable(ctx context.Context, projectID, datasetName, tableName string) (bool, error) {
	var existed bool

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		n, err := s.count(ctx, tx, "SELECT COUNT(*) FROM tables WHERE project_id = ? AND dataset_id = ? AND table_name = ?", projectID, datasetName, tableName)
		if err != nil || n == 0 {
			return err
		}

		existed = true

		for _, q := range []string{
			"DELETE FROM fields WHERE project_id = ? AND dataset_id = ? AND table_id = ?",
			"DELETE FROM tables WHERE project_id = ? AND dataset_id = ? AND table_name = ?",
		} {
			if _, err := tx.ExecContext(ctx, s.rebind(q), projectID, datasetName, tableName); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete table %s: %w", domain.TableFullID(projectID, datasetName, tableName), ConvertDBError(err))
	}

	return existed, nil
}

func (s *Store) count(ctx context.Context, tx *sql.Tx, query string, args ...interface{}) (int, error) {
	var n int

	if err := tx.QueryRowContext(ctx, s.rebind(query), args...).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
