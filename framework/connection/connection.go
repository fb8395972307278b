package connection

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/store"
	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/logger"
)

const (
	// CtxBigqueryKey is how bigquery connections are stored/retrieved.
	CtxBigqueryKey = "app-bigquery"
)

type Connection struct {
	*BigQueryClient
	Store *store.Store
}

// NewConnection opens the BigQuery client and the metadata store.
// BigQuery usage is billed to billingProjectID.
func NewConnection(ctx context.Context, cfg *config.AppConfig, log *logger.Logging, billingProjectID string) (*Connection, error) {
	bq, err := NewBigQuery(ctx, log, billingProjectID)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.Database, log.Logger)
	if err != nil {
		_ = bq.Close()
		return nil, err
	}

	return &Connection{
		bq,
		st,
	}, nil
}

// Close releases every client of the connection.
func (c *Connection) Close() error {
	var result *multierror.Error

	if err := c.BigQueryClient.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := c.Store.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
