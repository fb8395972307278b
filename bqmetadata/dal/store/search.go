package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
)

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// hasPrefix matches column against a literal prefix.
func hasPrefix(column, prefix string) (string, string) {
	return column + ` LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func ilike(column string) string {
	return "LOWER(COALESCE(" + column + ", '')) LIKE ?"
}

// anyOf matches term against any of the columns.
func anyOf(w *where, term string, columns ...string) {
	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))

	for _, c := range columns {
		clauses = append(clauses, ilike(c))
		args = append(args, contains(term))
	}

	w.add("("+strings.Join(clauses, " OR ")+")", args...)
}

// Search returns the records where every whitespace separated term of the
// query is a case insensitive substring of one of the searchable columns.
// An empty query matches nothing.
func (s *Store) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	result := domain.NewSearchResult()

	terms := q.Terms()
	if len(terms) == 0 {
		return result, nil
	}

	var err error

	if q.EntityType.Includes(domain.EntityTypeDataset) {
		var w where
		w.addIf(q.ProjectID != "", "project_id = ?", q.ProjectID)

		for _, term := range terms {
			anyOf(&w, term, "dataset_name", "friendly_name", "description")
		}

		if result.Datasets, err = queryAll(ctx, s, scanDataset, "SELECT "+datasetColumns+" FROM datasets"+w.String()+" ORDER BY id", w.args...); err != nil {
			return nil, fmt.Errorf("search datasets: %w", err)
		}
	}

	if q.EntityType.Includes(domain.EntityTypeTable) {
		var w where
		w.addIf(q.ProjectID != "", "project_id = ?", q.ProjectID)

		for _, term := range terms {
			anyOf(&w, term, "table_name", "friendly_name", "description")
		}

		if result.Tables, err = queryAll(ctx, s, scanTable, "SELECT "+tableColumns+" FROM tables"+w.String()+" ORDER BY id", w.args...); err != nil {
			return nil, fmt.Errorf("search tables: %w", err)
		}
	}

	if q.EntityType.Includes(domain.EntityTypeField) {
		var w where
		w.addIf(q.ProjectID != "", "project_id = ?", q.ProjectID)

		for _, term := range terms {
			anyOf(&w, term, "name", "description", "field_type")
		}

		if result.Fields, err = queryAll(ctx, s, scanField, "SELECT "+fieldColumns+" FROM fields"+w.String()+" ORDER BY id", w.args...); err != nil {
			return nil, fmt.Errorf("search fields: %w", err)
		}
	}

	return result, nil
}

// advancedWhere builds the conditions of an advanced search over one entity.
// typeColumn is empty for entities without a type. The returned bool is false
// when no attribute condition applies.
func advancedWhere(q domain.AdvancedSearchQuery, datasetColumn, nameColumn, typeColumn string) (where, bool) {
	var w where
	w.addIf(q.ProjectID != "", "project_id = ?", q.ProjectID)
	w.addIf(q.DatasetID != "", datasetColumn+" = ?", q.DatasetID)

	n := len(w.clauses)

	w.addIf(q.Name != "", ilike(nameColumn), contains(q.Name))
	w.addIf(q.Description != "", ilike("description"), contains(q.Description))
	w.addIf(q.Type != "" && typeColumn != "", ilike(typeColumn), contains(q.Type))

	return w, len(w.clauses) > n
}

// AdvancedSearch returns the records matching all of the given name,
// description and type substrings. Entities without any applicable
// condition are not searched; datasets have no type.
func (s *Store) AdvancedSearch(ctx context.Context, q domain.AdvancedSearchQuery) (*domain.SearchResult, error) {
	result := domain.NewSearchResult()

	var err error

	if w, ok := advancedWhere(q, "dataset_name", "dataset_name", ""); ok {
		if result.Datasets, err = queryAll(ctx, s, scanDataset, "SELECT "+datasetColumns+" FROM datasets"+w.String()+" ORDER BY id", w.args...); err != nil {
			return nil, fmt.Errorf("advanced search datasets: %w", err)
		}
	}

	if w, ok := advancedWhere(q, "dataset_id", "table_name", "table_type"); ok {
		if result.Tables, err = queryAll(ctx, s, scanTable, "SELECT "+tableColumns+" FROM tables"+w.String()+" ORDER BY id", w.args...); err != nil {
			return nil, fmt.Errorf("advanced search tables: %w", err)
		}
	}

	if w, ok := advancedWhere(q, "dataset_id", "name", "field_type"); ok {
		if result.Fields, err = queryAll(ctx, s, scanField, "SELECT "+fieldColumns+" FROM fields"+w.String()+" ORDER BY id", w.args...); err != nil {
			return nil, fmt.Errorf("advanced search fields: %w", err)
		}
	}

	return result, nil
}
