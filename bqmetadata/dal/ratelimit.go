package dal

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/iface"
	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
)

// RateLimitedCatalog spreads catalog calls to stay under the BigQuery API quota.
type RateLimitedCatalog struct {
	catalog iface.Catalog
	limiter *rate.Limiter
}

// NewRateLimitedCatalog wraps catalog with a limiter of perSecond calls.
// A non positive perSecond returns catalog unchanged.
func NewRateLimitedCatalog(catalog iface.Catalog, perSecond float64, burst int) iface.Catalog {
	if perSecond <= 0 {
		return catalog
	}

	if burst < 1 {
		burst = 1
	}

	return &RateLimitedCatalog{
		catalog: catalog,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (c *RateLimitedCatalog) ListDatasets(ctx context.Context, projectID string) ([]domain.DatasetRef, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return c.catalog.ListDatasets(ctx, projectID)
}

func (c *RateLimitedCatalog) GetDataset(ctx context.Context, fullID string) (*domain.Dataset, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return c.catalog.GetDataset(ctx, fullID)
}

func (c *RateLimitedCatalog) ListTables(ctx context.Context, datasetFullID string) ([]domain.TableRef, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return c.catalog.ListTables(ctx, datasetFullID)
}

func (c *RateLimitedCatalog) GetTable(ctx context.Context, tableFullID string) (*domain.TableSchema, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return c.catalog.GetTable(ctx, tableFullID)
}
