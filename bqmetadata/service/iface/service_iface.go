//go:generate mockery --name MetadataService --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
)

type MetadataService interface {
	ListProjects(ctx context.Context) ([]string, error)
	ListDatasets(ctx context.Context, filter domain.DatasetFilter) ([]domain.Dataset, error)
	ListTables(ctx context.Context, filter domain.TableFilter) ([]domain.Table, error)
	ListFields(ctx context.Context, filter domain.FieldFilter) ([]domain.Field, error)
	GetTableWithFields(ctx context.Context, datasetName, tableName string) (*domain.TableWithFields, error)
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error)
	AdvancedSearch(ctx context.Context, q domain.AdvancedSearchQuery) (*domain.SearchResult, error)
	DeleteDataset(ctx context.Context, projectID, datasetName string) error
	DeleteTable(ctx context.Context, projectID, datasetName, tableName string) error
	Extract(ctx context.Context, projectID string) (*domain.Summary, error)
}
