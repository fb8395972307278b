package domain

import (
	"errors"
	"fmt"
	"strings"
)

const fullIDSeparator = "."

var ErrInvalidFullID = errors.New("invalid full id")

func DatasetFullID(projectID, datasetID string) string {
	return projectID + fullIDSeparator + datasetID
}

func TableFullID(projectID, datasetID, tableID string) string {
	return DatasetFullID(projectID, datasetID) + fullIDSeparator + tableID
}

func FieldFullID(projectID, datasetID, tableID, fieldName string) string {
	return TableFullID(projectID, datasetID, tableID) + fullIDSeparator + fieldName
}

// DatasetRef identifies a dataset as returned by a catalog listing.
type DatasetRef struct {
	ProjectID string
	DatasetID string
}

func (r DatasetRef) FullID() string {
	return DatasetFullID(r.ProjectID, r.DatasetID)
}

// TableRef identifies a table as returned by a catalog listing.
type TableRef struct {
	ProjectID string
	DatasetID string
	TableID   string
}

func (r TableRef) FullID() string {
	return TableFullID(r.ProjectID, r.DatasetID, r.TableID)
}

// splitFullID splits fullID into parts components. Only the project may
// contain the separator, as in domain scoped projects like "example.com:project".
func splitFullID(fullID string, parts int) ([]string, error) {
	s := strings.Split(fullID, fullIDSeparator)
	if len(s) < parts {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFullID, fullID)
	}

	project := strings.Join(s[:len(s)-parts+1], fullIDSeparator)
	if len(s) > parts && !strings.Contains(project, ":") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFullID, fullID)
	}

	out := append([]string{project}, s[len(s)-parts+1:]...)
	for _, p := range out {
		if p == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFullID, fullID)
		}
	}

	return out, nil
}

// ParseDatasetFullID splits a "project.dataset" identifier.
func ParseDatasetFullID(fullID string) (DatasetRef, error) {
	s, err := splitFullID(fullID, 2)
	if err != nil {
		return DatasetRef{}, err
	}

	return DatasetRef{ProjectID: s[0], DatasetID: s[1]}, nil
}

// ParseTableFullID splits a "project.dataset.table" identifier.
func ParseTableFullID(fullID string) (TableRef, error) {
	s, err := splitFullID(fullID, 3)
	if err != nil {
		return TableRef{}, err
	}

	return TableRef{ProjectID: s[0], DatasetID: s[1], TableID: s[2]}, nil
}
