package service

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/iface"
	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/logger"
)

// Extractor walks the catalog of a project one dataset at a time.
type Extractor struct {
	loggerProvider logger.Provider
	catalog        iface.Catalog
	filter         DatasetFilter
	workers        int
}

func NewExtractor(loggerProvider logger.Provider, catalog iface.Catalog, filter DatasetFilter, workers int) *Extractor {
	if filter == nil {
		filter = KeepAllFilter
	}

	return &Extractor{
		loggerProvider: loggerProvider,
		catalog:        catalog,
		filter:         filter,
		workers:        workers,
	}
}

// UnitIterator yields one Unit per kept dataset of a project.
// It is not safe for concurrent use.
type UnitIterator struct {
	extractor *Extractor
	processor *TableProcessor
	projectID string

	listed   bool
	datasets []domain.DatasetRef
	next     int
	err      error

	skipped int
}

// Units returns an iterator over the datasets of projectID. Nothing is
// fetched until the first call to Next. Each iterator owns its own schema
// cache.
func (e *Extractor) Units(projectID string) *UnitIterator {
	cache := NewSchemaCache(e.catalog)

	return &UnitIterator{
		extractor: e,
		processor: NewTableProcessor(e.loggerProvider, cache, e.workers),
		projectID: projectID,
	}
}

// Next returns the next dataset's unit, or iterator.Done once every dataset
// has been visited. Listing failures end the iteration: a failure to list the
// project's datasets, or to fetch one dataset or its table list (returned as
// a *DatasetError), is returned again by every later call. Once ctx is done
// Next returns its error and emits nothing.
func (it *UnitIterator) Next(ctx context.Context) (*domain.Unit, error) {
	if it.err != nil {
		return nil, it.err
	}

	if !it.listed {
		refs, err := it.extractor.catalog.ListDatasets(ctx, it.projectID)
		if err != nil {
			it.err = err
			return nil, err
		}

		it.datasets = refs
		it.listed = true
	}

	l := it.extractor.loggerProvider(ctx)

	for it.next < len(it.datasets) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ref := it.datasets[it.next]
		it.next++

		if it.extractor.filter.ShouldSkip(ref.DatasetID) {
			l.Debugf("skipping dataset %s", ref.FullID())
			it.skipped++

			continue
		}

		unit, err := it.extract(ctx, ref)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		if err != nil {
			l.Errorf("error extracting dataset %s: %v", ref.FullID(), err)

			it.err = &DatasetError{DatasetID: ref.FullID(), Err: err}

			return nil, it.err
		}

		return unit, nil
	}

	return nil, iterator.Done
}

// Skipped returns the number of datasets the filter has left out so far.
func (it *UnitIterator) Skipped() int {
	return it.skipped
}

func (it *UnitIterator) extract(ctx context.Context, ref domain.DatasetRef) (*domain.Unit, error) {
	datasetFullID := ref.FullID()

	dataset, err := it.extractor.catalog.GetDataset(ctx, datasetFullID)
	if err != nil {
		return nil, err
	}

	tableRefs, err := it.extractor.catalog.ListTables(ctx, datasetFullID)
	if err != nil {
		return nil, err
	}

	tableNames := make([]string, 0, len(tableRefs))
	for _, t := range tableRefs {
		tableNames = append(tableNames, t.TableID)
	}

	fields, schemas := it.processor.Process(ctx, ref, tableNames)

	tables := make([]domain.Table, 0, len(schemas))
	for _, s := range schemas {
		tables = append(tables, s.Table)
	}

	if fields == nil {
		fields = []domain.Field{}
	}

	return &domain.Unit{
		Dataset: *dataset,
		Tables:  tables,
		Fields:  fields,
	}, nil
}

// ExtractAll drains the iterator of projectID into a single document.
func (e *Extractor) ExtractAll(ctx context.Context, projectID string) (*domain.Document, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	doc := domain.NewDocument(projectID)
	it := e.Units(projectID)

	for {
		unit, err := it.Next(ctx)
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", projectID, err)
		}

		doc.Add(unit)
	}

	e.loggerProvider(ctx).Infof("extracted %d datasets, %d tables and %d fields from %s",
		len(doc.Datasets), len(doc.Tables), len(doc.Fields), projectID)

	return doc, nil
}
