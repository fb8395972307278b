package dal

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/logger"
)

// BigqueryCatalog reads dataset, table and schema metadata from BigQuery.
// Calls are not retried.
type BigqueryCatalog struct {
	loggerProvider logger.Provider
	client         *bigquery.Client
}

func NewBigqueryCatalog(loggerProvider logger.Provider, client *bigquery.Client) *BigqueryCatalog {
	return &BigqueryCatalog{
		loggerProvider: loggerProvider,
		client:         client,
	}
}

func (c *BigqueryCatalog) ListDatasets(ctx context.Context, projectID string) ([]domain.DatasetRef, error) {
	it := c.client.Datasets(ctx)
	it.ProjectID = projectID

	var refs []domain.DatasetRef

	for {
		ds, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("list datasets of %s: %w", projectID, translateError(err))
		}

		refs = append(refs, domain.DatasetRef{
			ProjectID: ds.ProjectID,
			DatasetID: ds.DatasetID,
		})
	}

	c.loggerProvider(ctx).Infof("found %d datasets in project %s", len(refs), projectID)

	return refs, nil
}

func (c *BigqueryCatalog) GetDataset(ctx context.Context, fullID string) (*domain.Dataset, error) {
	ref, err := domain.ParseDatasetFullID(fullID)
	if err != nil {
		return nil, err
	}

	md, err := c.client.DatasetInProject(ref.ProjectID, ref.DatasetID).Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("get dataset %s: %w", fullID, translateError(err))
	}

	return &domain.Dataset{
		ID:           ref.DatasetID,
		FullID:       ref.FullID(),
		ProjectID:    ref.ProjectID,
		FriendlyName: optional(md.Name),
		Description:  domain.StringPtr(md.Description),
	}, nil
}

func (c *BigqueryCatalog) ListTables(ctx context.Context, datasetFullID string) ([]domain.TableRef, error) {
	ref, err := domain.ParseDatasetFullID(datasetFullID)
	if err != nil {
		return nil, err
	}

	it := c.client.DatasetInProject(ref.ProjectID, ref.DatasetID).Tables(ctx)

	var refs []domain.TableRef

	for {
		t, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("list tables of %s: %w", datasetFullID, translateError(err))
		}

		refs = append(refs, domain.TableRef{
			ProjectID: ref.ProjectID,
			DatasetID: ref.DatasetID,
			TableID:   t.TableID,
		})
	}

	c.loggerProvider(ctx).Infof("found %d tables in dataset %s", len(refs), datasetFullID)

	return refs, nil
}

func (c *BigqueryCatalog) GetTable(ctx context.Context, tableFullID string) (*domain.TableSchema, error) {
	ref, err := domain.ParseTableFullID(tableFullID)
	if err != nil {
		return nil, err
	}

	md, err := c.client.DatasetInProject(ref.ProjectID, ref.DatasetID).Table(ref.TableID).Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("get table %s: %w", tableFullID, translateError(err))
	}

	schema := make([]domain.SchemaField, 0, len(md.Schema))
	for _, f := range md.Schema {
		schema = append(schema, domain.SchemaField{
			Name:        f.Name,
			Type:        string(f.Type),
			Description: optional(f.Description),
			Mode:        string(fieldMode(f)),
		})
	}

	return &domain.TableSchema{
		Table: domain.Table{
			ID:           ref.TableID,
			FullID:       ref.FullID(),
			DatasetID:    ref.DatasetID,
			ProjectID:    ref.ProjectID,
			FriendlyName: optional(md.Name),
			Description:  domain.StringPtr(md.Description),
			TableType:    optional(string(md.Type)),
		},
		Schema: schema,
	}, nil
}

func fieldMode(f *bigquery.FieldSchema) domain.FieldMode {
	switch {
	case f.Repeated:
		return domain.FieldModeRepeated
	case f.Required:
		return domain.FieldModeRequired
	default:
		return domain.FieldModeNullable
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
