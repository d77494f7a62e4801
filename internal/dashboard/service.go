package dashboard

import (
	"context"

	"github.com/samhrndi/ecommerce-analytics/internal/snowflake"
)

// Executor runs one SQL statement against the warehouse and returns the fully
// materialized result. Satisfied by *snowflake.Connector.
type Executor interface {
	Execute(ctx context.Context, query, schema string) ([]snowflake.Row, error)
}

// Service fetches, assembles and caches dashboard responses.
type Service struct {
	executor Executor
	cache    *Cache
}

func NewService(executor Executor, cache *Cache) *Service {
	return &Service{executor: executor, cache: cache}
}

// Executive returns the executive dashboard, from cache when fresh. On a miss
// the catalog queries run sequentially, each over its own session; any
// failure aborts the whole fetch — there is no partial dashboard.
func (s *Service) Executive(ctx context.Context) (*Response, error) {
	return s.fetch(ctx, "executive", executiveCatalog, assembleExecutive)
}

// Sales returns the sales analytics dashboard, from cache when fresh.
func (s *Service) Sales(ctx context.Context) (*Response, error) {
	return s.fetch(ctx, "sales", salesCatalog, assembleSales)
}

func (s *Service) fetch(ctx context.Context, name string, catalog []catalogQuery, assemble func(map[string][]snowflake.Row) *Response) (*Response, error) {
	if resp, ok := s.cache.Get(name); ok {
		return resp, nil
	}

	results := make(map[string][]snowflake.Row, len(catalog))
	for _, q := range catalog {
		rows, err := s.executor.Execute(ctx, q.sql, q.schema)
		if err != nil {
			return nil, err
		}
		results[q.name] = rows
	}

	resp := assemble(results)
	s.cache.Put(name, resp)
	return resp, nil
}
