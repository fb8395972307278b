package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	testtools "github.com/erictt/bq-metadata-search/common/test_tools"
)

func TestParseGCSPath(t *testing.T) {
	tests := []struct {
		name       string
		dest       string
		wantBucket string
		wantObject string
		wantErr    bool
	}{
		{name: "object", dest: "gs://bucket/metadata.json", wantBucket: "bucket", wantObject: "metadata.json"},
		{name: "nested object", dest: "gs://bucket/exports/p1/metadata.json", wantBucket: "bucket", wantObject: "exports/p1/metadata.json"},
		{name: "bucket only", dest: "gs://bucket", wantErr: true},
		{name: "trailing slash", dest: "gs://bucket/exports/", wantErr: true},
		{name: "no bucket", dest: "gs:///metadata.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, object, err := parseGCSPath(tt.dest)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDestination)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantObject, object)
		})
	}
}

func TestExportToFile(t *testing.T) {
	doc := domain.NewDocument("p1")
	doc.Add(&domain.Unit{
		Dataset: domain.Dataset{ID: "salesforce_core", FullID: "p1.salesforce_core", ProjectID: "p1"},
		Tables: []domain.Table{
			{ID: "t1", FullID: "p1.salesforce_core.t1", DatasetID: "salesforce_core", ProjectID: "p1"},
		},
		Fields: []domain.Field{
			{Name: "f1", FullID: "p1.salesforce_core.t1.f1", TableID: "t1", DatasetID: "salesforce_core", ProjectID: "p1", FieldType: domain.StringPtr("STRING")},
		},
	})

	path := filepath.Join(t.TempDir(), "metadata.json")

	err := NewExporter(testLoggerProvider).Export(context.Background(), doc, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "{\n  \"project_id\": \"p1\""))

	var got domain.Document
	require.NoError(t, testtools.ConvertJSONFileIntoStruct(filepath.Dir(path), "metadata", &got))
	assert.Equal(t, doc, &got)
}

func TestExportErrors(t *testing.T) {
	exporter := NewExporter(testLoggerProvider)
	doc := domain.NewDocument("p1")

	err := exporter.Export(context.Background(), doc, "")
	assert.ErrorIs(t, err, ErrInvalidDestination)

	err = exporter.Export(context.Background(), doc, "gs://bucket")
	assert.ErrorIs(t, err, ErrInvalidDestination)

	err = exporter.Export(context.Background(), doc, filepath.Join(t.TempDir(), "missing", "metadata.json"))
	assert.Error(t, err)
}
