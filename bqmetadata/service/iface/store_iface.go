//go:generate mockery --name MetadataStore --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
)

// UnitWriter persists extracted entities.
type UnitWriter interface {
	SaveDataset(ctx context.Context, d domain.Dataset) error
	SaveTable(ctx context.Context, t domain.Table) error
	SaveField(ctx context.Context, f domain.Field) error
}

type MetadataStore interface {
	UnitWriter

	ListProjects(ctx context.Context) ([]string, error)
	ListDatasets(ctx context.Context, filter domain.DatasetFilter) ([]domain.Dataset, error)
	ListTables(ctx context.Context, filter domain.TableFilter) ([]domain.Table, error)
	ListFields(ctx context.Context, filter domain.FieldFilter) ([]domain.Field, error)
	GetTableWithFields(ctx context.Context, datasetName, tableName string) (*domain.TableWithFields, error)
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error)
	AdvancedSearch(ctx context.Context, q domain.AdvancedSearchQuery) (*domain.SearchResult, error)
	DeleteDataset(ctx context.Context, projectID, datasetName string) (bool, error)
	DeleteTable(ctx context.Context, projectID, datasetName, tableName string) (bool, error)
	MissingTables(ctx context.Context) ([]domain.TableRef, error)
}
