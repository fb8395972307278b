package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/mocks"
	"github.com/erictt/bq-metadata-search/bqmetadata/dal/store"
	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/bqmetadata/service"
	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/logger"
)

func newTestAPI(t *testing.T) (*API, *store.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logging := &logger.Logging{}

	st, err := store.Open(context.Background(), config.DatabaseConfig{
		URL:             "sqlite://:memory:",
		ConnectAttempts: 1,
		MaxOpenConns:    1,
	}, logging.Logger)
	require.NoError(t, err)

	t.Cleanup(func() { _ = st.Close() })

	extractor := service.NewExtractor(logging.Logger, mocks.NewCatalog(t), service.KeepAllFilter, 1)

	return NewAPI(nil, &config.AppConfig{}, logging, st, extractor), st
}

func TestBuild(t *testing.T) {
	a, st := newTestAPI(t)
	require.NoError(t, st.SaveDataset(context.Background(), domain.Dataset{
		ID:        "salesforce_core",
		FullID:    "p1.salesforce_core",
		ProjectID: "p1",
	}))

	app := a.Build()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "projects",
			method:     http.MethodGet,
			path:       "/api/projects",
			wantStatus: http.StatusOK,
			wantBody:   `["p1"]`,
		},
		{
			name:       "missing table",
			method:     http.MethodGet,
			path:       "/api/tables/salesforce_core/t1",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"table not found"}`,
		},
		{
			name:       "search without query",
			method:     http.MethodPost,
			path:       "/api/search",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "delete table with a dotted name",
			method:     http.MethodDelete,
			path:       "/api/tables/p1/salesforce_core/t1.f1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "delete missing dataset",
			method:     http.MethodDelete,
			path:       "/api/datasets/p1/other_ds",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"dataset other_ds not found in project p1"}`,
		},
		{
			name:       "delete dataset",
			method:     http.MethodDelete,
			path:       "/api/datasets/p1/salesforce_core",
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"dataset salesforce_core deleted successfully"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			app.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
