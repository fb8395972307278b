package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/store"
	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/bqmetadata/service/mocks"
	"github.com/erictt/bq-metadata-search/config"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(context.Background(), config.DatabaseConfig{
		URL:             "sqlite://:memory:",
		ConnectAttempts: 1,
		MaxOpenConns:    1,
	}, testLoggerProvider)
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestRunnerEndToEnd(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{
		datasets: []string{"salesforce_core", "internal"},
		tables: map[string][]string{
			"salesforce_core": {"t1"},
			"internal":        {"t1"},
		},
		schemas: map[string][]domain.SchemaField{
			"p1.salesforce_core.t1": schemaFields("f1", "STRING", "f2", "INTEGER"),
			"p1.internal.t1":        schemaFields("secret", "STRING"),
		},
	}

	s := newTestStore(t)
	extractor := NewExtractor(testLoggerProvider, catalog, salesforceFilter(), 4)
	runner := NewRunner(testLoggerProvider, extractor, s, 1)

	doc := domain.NewDocument("p1")

	summary, err := runner.Run(ctx, "p1", doc)
	require.NoError(t, err)

	assert.Equal(t, &domain.Summary{
		ProjectID:       "p1",
		Datasets:        1,
		Tables:          1,
		Fields:          2,
		SkippedDatasets: 1,
	}, summary)

	datasets, err := s.ListDatasets(ctx, domain.DatasetFilter{})
	require.NoError(t, err)
	require.Len(t, datasets, 1)
	assert.Equal(t, "p1.salesforce_core", datasets[0].FullID)

	tables, err := s.ListTables(ctx, domain.TableFilter{})
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "p1.salesforce_core.t1", tables[0].FullID)

	fields, err := s.ListFields(ctx, domain.FieldFilter{})
	require.NoError(t, err)
	require.Len(t, fields, 2)

	types := map[string]string{}
	for _, f := range fields {
		types[f.Name] = domain.StringValue(f.FieldType)
	}

	assert.Equal(t, map[string]string{"f1": "STRING", "f2": "INTEGER"}, types)

	assert.Len(t, doc.Datasets, 1)
	assert.Len(t, doc.Fields, 2)

	// a second run updates the same rows
	_, err = runner.Run(ctx, "p1", nil)
	require.NoError(t, err)

	fields, err = s.ListFields(ctx, domain.FieldFilter{})
	require.NoError(t, err)
	assert.Len(t, fields, 2)
}

func TestRunnerRun(t *testing.T) {
	type fields struct {
		writer *mocks.MetadataStore
	}

	uniqueErr := fmt.Errorf("save field p1.salesforce_core.t1.f1: %w", store.ErrUniqueViolation)

	tests := []struct {
		name        string
		on          func(*fields)
		listErr     error
		wantSummary *domain.Summary
		wantErrs    int
		wantErr     error
	}{
		{
			name: "all saved",
			on: func(f *fields) {
				f.writer.On("SaveDataset", mock.Anything, mock.Anything).Return(nil).Twice()
				f.writer.On("SaveTable", mock.Anything, mock.Anything).Return(nil).Times(3)
				f.writer.On("SaveField", mock.Anything, mock.Anything).Return(nil).Times(5)
			},
			wantSummary: &domain.Summary{
				ProjectID:       "p1",
				Datasets:        2,
				Tables:          3,
				Fields:          5,
				SkippedDatasets: 2,
			},
		},
		{
			name: "unique violation is counted and the run continues",
			on: func(f *fields) {
				f.writer.On("SaveDataset", mock.Anything, mock.Anything).Return(nil).Twice()
				f.writer.On("SaveTable", mock.Anything, mock.Anything).Return(nil).Times(3)
				f.writer.On("SaveField", mock.Anything, mock.MatchedBy(func(field domain.Field) bool {
					return field.FullID == "p1.salesforce_core.t1.f1"
				})).Return(uniqueErr).Once()
				f.writer.On("SaveField", mock.Anything, mock.Anything).Return(nil).Times(4)
			},
			wantSummary: &domain.Summary{
				ProjectID:       "p1",
				Datasets:        2,
				Tables:          3,
				Fields:          4,
				SkippedDatasets: 2,
				FailedEntities:  1,
				Errors:          []string{uniqueErr.Error()},
			},
			wantErrs: 1,
			wantErr:  store.ErrUniqueViolation,
		},
		{
			name: "failed dataset save does not stop its tables",
			on: func(f *fields) {
				f.writer.On("SaveDataset", mock.Anything, mock.MatchedBy(func(d domain.Dataset) bool {
					return d.ID == "salesforce_sales"
				})).Return(store.ErrStoreUnavailable).Once()
				f.writer.On("SaveDataset", mock.Anything, mock.Anything).Return(nil).Once()
				f.writer.On("SaveTable", mock.Anything, mock.Anything).Return(nil).Times(3)
				f.writer.On("SaveField", mock.Anything, mock.Anything).Return(nil).Times(5)
			},
			wantSummary: &domain.Summary{
				ProjectID:       "p1",
				Datasets:        1,
				Tables:          3,
				Fields:          5,
				SkippedDatasets: 2,
				FailedEntities:  1,
				Errors:          []string{store.ErrStoreUnavailable.Error()},
			},
			wantErrs: 1,
			wantErr:  store.ErrStoreUnavailable,
		},
		{
			name:    "dataset listing fails",
			listErr: errFake,
			wantErr: errFake,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{writer: mocks.NewMetadataStore(t)}

			if tt.on != nil {
				tt.on(f)
			}

			catalog := newExtractorCatalog()
			catalog.listErr = tt.listErr

			runner := NewRunner(testLoggerProvider, NewExtractor(testLoggerProvider, catalog, salesforceFilter(), 2), f.writer, 1)

			summary, err := runner.Run(context.Background(), "p1", nil)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			if tt.wantErrs > 0 {
				merr, ok := err.(*multierror.Error)
				require.True(t, ok)
				assert.Len(t, merr.Errors, tt.wantErrs)
			}

			assert.Equal(t, tt.wantSummary, summary)
		})
	}
}

func TestRunnerWithoutWriter(t *testing.T) {
	runner := NewRunner(testLoggerProvider, NewExtractor(testLoggerProvider, newExtractorCatalog(), salesforceFilter(), 2), nil, 0)

	summary, err := runner.Run(context.Background(), "p1", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Datasets)
	assert.Equal(t, 3, summary.Tables)
	assert.Equal(t, 5, summary.Fields)

	_, err = runner.Run(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrInvalidProjectID)
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	catalog := newExtractorCatalog()
	runner := NewRunner(testLoggerProvider, NewExtractor(testLoggerProvider, catalog, salesforceFilter(), 2), nil, 0)

	summary, err := runner.Run(ctx, "p1", nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, summary)
}

func TestRunnerDatasetFailureAbortsRun(t *testing.T) {
	catalog := newExtractorCatalog()
	catalog.failTableLists["p1.salesforce_core"] = true

	runner := NewRunner(testLoggerProvider, NewExtractor(testLoggerProvider, catalog, salesforceFilter(), 2), nil, 1)

	doc := domain.NewDocument("p1")
	summary, err := runner.Run(context.Background(), "p1", doc)

	var dsErr *DatasetError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, "p1.salesforce_core", dsErr.DatasetID)
	assert.ErrorIs(t, err, errFake)
	assert.Nil(t, summary)

	// salesforce_sales follows the failed dataset and is never extracted
	assert.Empty(t, doc.Datasets)
	assert.Equal(t, int32(0), catalog.getTableCalls.Load())
}
