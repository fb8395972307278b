package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/logger"
)

const defaultWorkers = 4

// TableProcessor fetches the schemas of one dataset's tables concurrently.
type TableProcessor struct {
	loggerProvider logger.Provider
	cache          *SchemaCache
	workers        int
}

func NewTableProcessor(loggerProvider logger.Provider, cache *SchemaCache, workers int) *TableProcessor {
	if workers < 1 {
		workers = defaultWorkers
	}

	return &TableProcessor{
		loggerProvider: loggerProvider,
		cache:          cache,
		workers:        workers,
	}
}

// Process fetches the schema of every table of the dataset with at most
// p.workers fetches in flight, and returns the fields and schemas of the
// tables that were fetched. A table that fails is logged and left out; it
// never stops its siblings. All fetches have finished when Process returns.
func (p *TableProcessor) Process(ctx context.Context, dataset domain.DatasetRef, tableNames []string) ([]domain.Field, []domain.TableSchema) {
	l := p.loggerProvider(ctx)

	// one slot per table keeps the output in listing order
	results := make([]*domain.TableSchema, len(tableNames))

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(p.workers)

	for i, name := range tableNames {
		ref := domain.TableRef{ProjectID: dataset.ProjectID, DatasetID: dataset.DatasetID, TableID: name}
		i, tableFullID := i, ref.FullID()

		errg.Go(func() error {
			schema, err := p.cache.GetOrFetch(ctx, tableFullID)
			if err != nil {
				l.Errorf("error getting schema for table %s: %v", tableFullID, err)
				return nil
			}

			results[i] = schema

			return nil
		})
	}

	_ = errg.Wait()

	var (
		fields  []domain.Field
		schemas []domain.TableSchema
	)

	for _, schema := range results {
		if schema == nil {
			continue
		}

		schemas = append(schemas, *schema)
		fields = append(fields, toFields(schema)...)
	}

	return fields, schemas
}

func toFields(s *domain.TableSchema) []domain.Field {
	t := s.Table
	fields := make([]domain.Field, 0, len(s.Schema))

	for _, f := range s.Schema {
		fields = append(fields, domain.Field{
			Name:        f.Name,
			FullID:      domain.FieldFullID(t.ProjectID, t.DatasetID, t.ID, f.Name),
			TableID:     t.ID,
			DatasetID:   t.DatasetID,
			ProjectID:   t.ProjectID,
			FieldType:   domain.StringPtr(f.Type),
			Description: f.Description,
			Mode:        domain.StringPtr(f.Mode),
		})
	}

	return fields
}
