package service

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/iface"
	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
)

// SchemaCache memoizes "get table" responses by table full id for the
// lifetime of one extraction run. Concurrent misses on the same id share a
// single catalog call. Failed fetches are not cached.
type SchemaCache struct {
	catalog iface.Catalog

	mu      sync.RWMutex
	schemas map[string]*domain.TableSchema
	group   singleflight.Group
}

func NewSchemaCache(catalog iface.Catalog) *SchemaCache {
	return &SchemaCache{
		catalog: catalog,
		schemas: make(map[string]*domain.TableSchema),
	}
}

// Get returns the cached schema of tableFullID, if any.
func (c *SchemaCache) Get(tableFullID string) (*domain.TableSchema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.schemas[tableFullID]

	return s, ok
}

// GetOrFetch returns the cached schema of tableFullID, fetching and storing it on a miss.
func (c *SchemaCache) GetOrFetch(ctx context.Context, tableFullID string) (*domain.TableSchema, error) {
	if s, ok := c.Get(tableFullID); ok {
		return s, nil
	}

	v, err, _ := c.group.Do(tableFullID, func() (interface{}, error) {
		if s, ok := c.Get(tableFullID); ok {
			return s, nil
		}

		s, err := c.catalog.GetTable(ctx, tableFullID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.schemas[tableFullID] = s
		c.mu.Unlock()

		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.TableSchema), nil
}

func (c *SchemaCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.schemas)
}
