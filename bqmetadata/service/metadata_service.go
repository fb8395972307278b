package service

import (
	"context"
	"fmt"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/store"
	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/bqmetadata/service/iface"
	"github.com/erictt/bq-metadata-search/logger"
)

type MetadataService struct {
	loggerProvider logger.Provider
	store          iface.MetadataStore
	runner         *Runner
}

func NewMetadataService(loggerProvider logger.Provider, store iface.MetadataStore, extractor *Extractor, buffer int) *MetadataService {
	return &MetadataService{
		loggerProvider: loggerProvider,
		store:          store,
		runner:         NewRunner(loggerProvider, extractor, store, buffer),
	}
}

func (s *MetadataService) ListProjects(ctx context.Context) ([]string, error) {
	return s.store.ListProjects(ctx)
}

func (s *MetadataService) ListDatasets(ctx context.Context, filter domain.DatasetFilter) ([]domain.Dataset, error) {
	return s.store.ListDatasets(ctx, filter)
}

func (s *MetadataService) ListTables(ctx context.Context, filter domain.TableFilter) ([]domain.Table, error) {
	return s.store.ListTables(ctx, filter)
}

func (s *MetadataService) ListFields(ctx context.Context, filter domain.FieldFilter) ([]domain.Field, error) {
	return s.store.ListFields(ctx, filter)
}

func (s *MetadataService) GetTableWithFields(ctx context.Context, datasetName, tableName string) (*domain.TableWithFields, error) {
	return s.store.GetTableWithFields(ctx, datasetName, tableName)
}

func (s *MetadataService) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	return s.store.Search(ctx, q)
}

func (s *MetadataService) AdvancedSearch(ctx context.Context, q domain.AdvancedSearchQuery) (*domain.SearchResult, error) {
	return s.store.AdvancedSearch(ctx, q)
}

// DeleteDataset removes a dataset with its tables and fields.
// store.ErrNotFound is returned when the dataset is not stored.
func (s *MetadataService) DeleteDataset(ctx context.Context, projectID, datasetName string) error {
	fullID := domain.DatasetFullID(projectID, datasetName)

	deleted, err := s.store.DeleteDataset(ctx, projectID, datasetName)
	if err != nil {
		return err
	}

	if !deleted {
		return fmt.Errorf("dataset %s: %w", fullID, store.ErrNotFound)
	}

	s.loggerProvider(ctx).Infof("dataset %s deleted", fullID)

	return nil
}

// DeleteTable removes a table with its fields.
// store.ErrNotFound is returned when the table is not stored.
func (s *MetadataService) DeleteTable(ctx context.Context, projectID, datasetName, tableName string) error {
	fullID := domain.TableFullID(projectID, datasetName, tableName)

	deleted, err := s.store.DeleteTable(ctx, projectID, datasetName, tableName)
	if err != nil {
		return err
	}

	if !deleted {
		return fmt.Errorf("table %s: %w", fullID, store.ErrNotFound)
	}

	s.loggerProvider(ctx).Infof("table %s deleted", fullID)

	return nil
}

// Extract runs one extraction of projectID into the store.
func (s *MetadataService) Extract(ctx context.Context, projectID string) (*domain.Summary, error) {
	return s.runner.Run(ctx, projectID, nil)
}
