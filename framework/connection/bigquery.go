package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/erictt/bq-metadata-search/logger"
)

var (
	ErrBigqueryInitialization = errors.New("bigquery initialization error")
)

type BigQueryClient struct {
	bq *bigquery.Client
}

// NewBigQuery creates the client used to read catalog metadata. Jobs and
// quota are billed to projectID.
func NewBigQuery(ctx context.Context, log *logger.Logging, projectID string, opts ...option.ClientOption) (*BigQueryClient, error) {
	logger := log.Logger(ctx)

	opts = append([]option.ClientOption{option.WithScopes(bigquery.Scope)}, opts...)

	bq, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		logger.Errorf("%s: %s", ErrBigqueryInitialization, err)
		return nil, ErrBigqueryInitialization
	}

	return &BigQueryClient{bq: bq}, nil
}

// Bigquery returns a bigquery connection that was stored in context.
// It returns by default a bigquery connection, if there was not one in the context.
func (c *BigQueryClient) Bigquery(ctx context.Context) *bigquery.Client {
	if bq, ok := ctx.Value(CtxBigqueryKey).(*bigquery.Client); ok {
		return bq
	}

	return c.bq
}

func (c *BigQueryClient) Close() error {
	return c.bq.Close()
}
