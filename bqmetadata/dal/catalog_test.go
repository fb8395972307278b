package dal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/logger"
	loggerMocks "github.com/erictt/bq-metadata-search/logger/mocks"
)

// fakeBigquery serves the subset of the BigQuery v2 REST API used by the catalog.
func fakeBigquery(t *testing.T) *httptest.Server {
	responses := map[string]interface{}{
		"projects/p1/datasets": map[string]interface{}{
			"datasets": []interface{}{
				map[string]interface{}{"datasetReference": map[string]string{"projectId": "p1", "datasetId": "salesforce_core"}},
				map[string]interface{}{"datasetReference": map[string]string{"projectId": "p1", "datasetId": "internal"}},
			},
		},
		"projects/p1/datasets/salesforce_core": map[string]interface{}{
			"datasetReference": map[string]string{"projectId": "p1", "datasetId": "salesforce_core"},
			"friendlyName":     "Salesforce core",
		},
		"projects/p1/datasets/salesforce_core/tables": map[string]interface{}{
			"tables": []interface{}{
				map[string]interface{}{"tableReference": map[string]string{"projectId": "p1", "datasetId": "salesforce_core", "tableId": "t1"}},
			},
			"totalItems": 1,
		},
		"projects/p1/datasets/salesforce_core/tables/t1": map[string]interface{}{
			"tableReference": map[string]string{"projectId": "p1", "datasetId": "salesforce_core", "tableId": "t1"},
			"type":           "TABLE",
			"description":    "accounts",
			"schema": map[string]interface{}{
				"fields": []interface{}{
					map[string]string{"name": "f1", "type": "STRING", "mode": "NULLABLE", "description": "first"},
					map[string]string{"name": "f2", "type": "INTEGER", "mode": "REQUIRED"},
					map[string]string{"name": "f3", "type": "STRING", "mode": "REPEATED"},
				},
			},
		},
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if i := strings.Index(path, "projects/"); i >= 0 {
			path = path[i:]
		}

		w.Header().Set("Content-Type", "application/json")

		resp, ok := responses[strings.TrimSuffix(path, "/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Not found: ` + path + `"}}`))

			return
		}

		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestCatalog(t *testing.T) *BigqueryCatalog {
	srv := fakeBigquery(t)
	t.Cleanup(srv.Close)

	ctx := context.Background()

	client, err := bigquery.NewClient(ctx, "p1",
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	log := loggerMocks.NewILogger(t)
	log.On("Infof", mock.Anything, mock.Anything, mock.Anything).Maybe()

	return NewBigqueryCatalog(func(ctx context.Context) logger.ILogger { return log }, client)
}

func TestBigqueryCatalogListDatasets(t *testing.T) {
	c := newTestCatalog(t)

	refs, err := c.ListDatasets(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, []domain.DatasetRef{
		{ProjectID: "p1", DatasetID: "salesforce_core"},
		{ProjectID: "p1", DatasetID: "internal"},
	}, refs)
}

func TestBigqueryCatalogGetDataset(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	ds, err := c.GetDataset(ctx, "p1.salesforce_core")
	require.NoError(t, err)

	assert.Equal(t, "salesforce_core", ds.ID)
	assert.Equal(t, "p1.salesforce_core", ds.FullID)
	assert.Equal(t, "p1", ds.ProjectID)
	assert.Equal(t, "Salesforce core", domain.StringValue(ds.FriendlyName))
	require.NotNil(t, ds.Description)
	assert.Equal(t, "", *ds.Description)

	_, err = c.GetDataset(ctx, "p1.missing")
	assert.ErrorIs(t, err, ErrCatalogNotFound)

	_, err = c.GetDataset(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidFullID)
}

func TestBigqueryCatalogListTables(t *testing.T) {
	c := newTestCatalog(t)

	refs, err := c.ListTables(context.Background(), "p1.salesforce_core")
	require.NoError(t, err)

	assert.Equal(t, []domain.TableRef{{ProjectID: "p1", DatasetID: "salesforce_core", TableID: "t1"}}, refs)
}

func TestBigqueryCatalogGetTable(t *testing.T) {
	c := newTestCatalog(t)

	ts, err := c.GetTable(context.Background(), "p1.salesforce_core.t1")
	require.NoError(t, err)

	assert.Equal(t, "p1.salesforce_core.t1", ts.Table.FullID)
	assert.Equal(t, "salesforce_core", ts.Table.DatasetID)
	assert.Nil(t, ts.Table.FriendlyName)
	assert.Equal(t, "accounts", domain.StringValue(ts.Table.Description))
	assert.Equal(t, "TABLE", domain.StringValue(ts.Table.TableType))

	require.Len(t, ts.Schema, 3)
	assert.Equal(t, domain.SchemaField{Name: "f1", Type: "STRING", Description: domain.StringPtr("first"), Mode: "NULLABLE"}, ts.Schema[0])
	assert.Equal(t, domain.SchemaField{Name: "f2", Type: "INTEGER", Mode: "REQUIRED"}, ts.Schema[1])
	assert.Equal(t, "REPEATED", ts.Schema[2].Mode)
}
