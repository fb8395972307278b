//go:generate mockery --name Catalog --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
)

// Catalog is the metadata catalog boundary. Identifiers are fully qualified.
type Catalog interface {
	ListDatasets(ctx context.Context, projectID string) ([]domain.DatasetRef, error)
	GetDataset(ctx context.Context, fullID string) (*domain.Dataset, error)
	ListTables(ctx context.Context, datasetFullID string) ([]domain.TableRef, error)
	GetTable(ctx context.Context, tableFullID string) (*domain.TableSchema, error)
}
