package dashboard

import (
	"context"

	"github.com/samhrndi/ecommerce-analytics/internal/snowflake"
)

// MockExecutor is a mock implementation of Executor for testing.
// Calls counts every Execute invocation, including failed ones.
type MockExecutor struct {
	ExecuteFunc func(ctx context.Context, query, schema string) ([]snowflake.Row, error)
	Calls       int
}

func (m *MockExecutor) Execute(ctx context.Context, query, schema string) ([]snowflake.Row, error) {
	m.Calls++
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query, schema)
	}
	return nil, nil
}
