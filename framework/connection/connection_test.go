package connection

import (
	"context"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/store"
	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/logger"
)

func newTestBigQuery(t *testing.T) *BigQueryClient {
	t.Helper()

	bq, err := NewBigQuery(context.Background(), &logger.Logging{}, "p1",
		option.WithEndpoint("http://127.0.0.1:1"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return bq
}

func TestBigqueryFromContext(t *testing.T) {
	bq := newTestBigQuery(t)
	defer bq.Close()

	assert.Same(t, bq.bq, bq.Bigquery(context.Background()))

	other, err := bigquery.NewClient(context.Background(), "p2",
		option.WithEndpoint("http://127.0.0.1:1"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	defer other.Close()

	ctx := context.WithValue(context.Background(), CtxBigqueryKey, other) //nolint:staticcheck
	assert.Same(t, other, bq.Bigquery(ctx))
}

func TestConnectionClose(t *testing.T) {
	logging := &logger.Logging{}

	st, err := store.Open(context.Background(), config.DatabaseConfig{
		URL:             "sqlite://:memory:",
		ConnectAttempts: 1,
		MaxOpenConns:    1,
	}, logging.Logger)
	require.NoError(t, err)

	conn := &Connection{newTestBigQuery(t), st}

	assert.NoError(t, conn.Close())
	assert.Error(t, conn.Store.Ping(context.Background()))
}
