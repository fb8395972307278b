package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/logger"
)

var errFake = errors.New("catalog unavailable")

func testLoggerProvider(ctx context.Context) logger.ILogger {
	return logger.FromContext(ctx)
}

// fakeCatalog serves a single project from memory and records how GetTable is called.
type fakeCatalog struct {
	projectID string
	datasets  []string
	tables    map[string][]string
	schemas   map[string][]domain.SchemaField

	failTables     map[string]bool
	failDatasets   map[string]bool
	failTableLists map[string]bool
	listErr        error
	delay          time.Duration

	getTableCalls atomic.Int32
	inFlight      atomic.Int32
	maxInFlight   atomic.Int32
}

func (c *fakeCatalog) ListDatasets(_ context.Context, projectID string) ([]domain.DatasetRef, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}

	refs := make([]domain.DatasetRef, 0, len(c.datasets))
	for _, ds := range c.datasets {
		refs = append(refs, domain.DatasetRef{ProjectID: projectID, DatasetID: ds})
	}

	return refs, nil
}

func (c *fakeCatalog) GetDataset(_ context.Context, fullID string) (*domain.Dataset, error) {
	if c.failDatasets[fullID] {
		return nil, errFake
	}

	ref, err := domain.ParseDatasetFullID(fullID)
	if err != nil {
		return nil, err
	}

	return &domain.Dataset{
		ID:          ref.DatasetID,
		FullID:      fullID,
		ProjectID:   ref.ProjectID,
		Description: domain.StringPtr(""),
	}, nil
}

func (c *fakeCatalog) ListTables(_ context.Context, datasetFullID string) ([]domain.TableRef, error) {
	if c.failTableLists[datasetFullID] {
		return nil, errFake
	}

	ref, err := domain.ParseDatasetFullID(datasetFullID)
	if err != nil {
		return nil, err
	}

	var refs []domain.TableRef
	for _, t := range c.tables[ref.DatasetID] {
		refs = append(refs, domain.TableRef{ProjectID: ref.ProjectID, DatasetID: ref.DatasetID, TableID: t})
	}

	return refs, nil
}

func (c *fakeCatalog) GetTable(_ context.Context, tableFullID string) (*domain.TableSchema, error) {
	c.getTableCalls.Add(1)

	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	for {
		cur := c.maxInFlight.Load()
		if n <= cur || c.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}

	if c.delay > 0 {
		time.Sleep(c.delay)
	}

	if c.failTables[tableFullID] {
		return nil, errFake
	}

	ref, err := domain.ParseTableFullID(tableFullID)
	if err != nil {
		return nil, err
	}

	return &domain.TableSchema{
		Table: domain.Table{
			ID:        ref.TableID,
			FullID:    tableFullID,
			DatasetID: ref.DatasetID,
			ProjectID: ref.ProjectID,
			TableType: domain.StringPtr(string(domain.TableTypeTable)),
		},
		Schema: c.schemas[tableFullID],
	}, nil
}

func schemaFields(types ...string) []domain.SchemaField {
	fields := make([]domain.SchemaField, 0, len(types)/2)
	for i := 0; i+1 < len(types); i += 2 {
		fields = append(fields, domain.SchemaField{
			Name: types[i],
			Type: types[i+1],
			Mode: string(domain.FieldModeNullable),
		})
	}

	return fields
}
