package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/samhrndi/ecommerce-analytics/internal/snowflake"
)

func newTestRouter(exec Executor) *chi.Mux {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(NewService(exec, NewCache(time.Minute))))
	return r
}

func TestHandler_ExecutiveReturnsJSON(t *testing.T) {
	r := newTestRouter(cannedExecutor())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/executive", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(resp.KPIs) != 6 {
		t.Errorf("expected 6 KPIs, got %d", len(resp.KPIs))
	}
}

func TestHandler_UnusedSectionsMarshalAsEmptyArrays(t *testing.T) {
	r := newTestRouter(cannedExecutor())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/executive", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"topProducts", "topSellers", "categoryMetrics", "customerSegments", "salesTrend"} {
		if string(raw[key]) != "[]" {
			t.Errorf("section %q: expected [], got %s", key, raw[key])
		}
	}
}

func TestHandler_QueryFailureIs500WithDetail(t *testing.T) {
	exec := &MockExecutor{
		ExecuteFunc: func(ctx context.Context, query, schema string) ([]snowflake.Row, error) {
			return nil, &snowflake.QueryError{Err: errors.New("Object 'FCT_ORDERS' does not exist")}
		},
	}
	r := newTestRouter(exec)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/sales", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON error body: %v", err)
	}
	if body["detail"] == "" {
		t.Error("expected non-empty detail field")
	}
}
