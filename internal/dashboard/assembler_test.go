package dashboard

import (
	"math"
	"testing"

	"github.com/samhrndi/ecommerce-analytics/internal/snowflake"
)

// Driver values arrive as strings for NUMBER columns and may be nil; the
// fixtures below mirror that on purpose.

func executiveKPIRow() snowflake.Row {
	return snowflake.Row{
		"TOTAL_REVENUE":    "13591643.70",
		"TOTAL_ORDERS":     "96478",
		"AVG_ORDER_VALUE":  "140.88",
		"UNIQUE_CUSTOMERS": "93358",
		"AVG_REVIEW_SCORE": "4.09",
		"ON_TIME_RATE":     "93.4",
		"REVENUE_CHANGE":   "12.5",
		"ORDERS_CHANGE":    "-3.2",
		"AOV_CHANGE":       nil,
		"CUSTOMERS_CHANGE": "0.0",
		"REVIEW_CHANGE":    "0.00",
		"ON_TIME_CHANGE":   "-1.2",
	}
}

func TestAssembleExecutive_NumericCoercion(t *testing.T) {
	resp := assembleExecutive(map[string][]snowflake.Row{
		"executive_kpis": {executiveKPIRow()},
	})

	if got := resp.KPIs[0].Value; got != 13591643.70 {
		t.Errorf("expected revenue 13591643.70, got %f", got)
	}
	if got := resp.KPIs[1].Value; got != 96478 {
		t.Errorf("expected orders 96478, got %f", got)
	}
	if got := resp.SalesMetrics.TotalOrders; got != 96478 {
		t.Errorf("expected totalOrders 96478, got %d", got)
	}
	// Null change coerces to 0, not to a missing field.
	if got := resp.KPIs[2].Change; got != 0 {
		t.Errorf("expected nil AOV change to coerce to 0, got %f", got)
	}
}

func TestAssembleExecutive_TrendAsymmetryAtZero(t *testing.T) {
	// Inherited quirk: at change == 0, revenue/orders/AOV/customers read
	// "down" while review score and on-time rate read "neutral".
	row := executiveKPIRow()
	row["REVENUE_CHANGE"] = "0.0"
	row["ORDERS_CHANGE"] = "0.0"
	row["AOV_CHANGE"] = "0.0"
	row["CUSTOMERS_CHANGE"] = "0.0"
	row["REVIEW_CHANGE"] = "0.0"
	row["ON_TIME_CHANGE"] = "0.0"

	resp := assembleExecutive(map[string][]snowflake.Row{
		"executive_kpis": {row},
	})

	for i, want := range []string{"down", "down", "down", "down", "neutral", "neutral"} {
		if got := resp.KPIs[i].Trend; got != want {
			t.Errorf("KPI %q: expected trend %q at zero change, got %q", resp.KPIs[i].Label, want, got)
		}
	}
}

func TestAssembleExecutive_TrendDirections(t *testing.T) {
	resp := assembleExecutive(map[string][]snowflake.Row{
		"executive_kpis": {executiveKPIRow()},
	})

	if got := resp.KPIs[0].Trend; got != "up" {
		t.Errorf("expected up for +12.5%% revenue, got %q", got)
	}
	if got := resp.KPIs[1].Trend; got != "down" {
		t.Errorf("expected down for -3.2%% orders, got %q", got)
	}
	if got := resp.KPIs[5].Trend; got != "down" {
		t.Errorf("expected down for -1.2 on-time change, got %q", got)
	}
}

func TestAssembleExecutive_EmptyRowsDefaultToZero(t *testing.T) {
	resp := assembleExecutive(map[string][]snowflake.Row{})

	if len(resp.KPIs) != 6 {
		t.Fatalf("expected 6 KPIs even with no data, got %d", len(resp.KPIs))
	}
	for _, kpi := range resp.KPIs {
		if kpi.Value != 0 || kpi.Change != 0 {
			t.Errorf("KPI %q: expected zero value/change, got %f/%f", kpi.Label, kpi.Value, kpi.Change)
		}
	}
	if resp.DeliveryMetrics.OnTimeRate != 0 {
		t.Errorf("expected zero delivery metrics, got %+v", resp.DeliveryMetrics)
	}
}

func TestAssembleExecutive_UnusedSectionsAreEmptyNotNil(t *testing.T) {
	resp := assembleExecutive(map[string][]snowflake.Row{
		"executive_kpis": {executiveKPIRow()},
	})

	if resp.TopProducts == nil || resp.TopSellers == nil || resp.CategoryMetrics == nil ||
		resp.CustomerSegments == nil || resp.SalesTrend == nil {
		t.Error("sales-only sections must be empty slices on the executive dashboard, not nil")
	}
	if len(resp.TopProducts) != 0 {
		t.Errorf("expected no products, got %d", len(resp.TopProducts))
	}
}

func TestAssembleExecutive_BreakdownPercentagesSumTo100(t *testing.T) {
	statuses := []snowflake.Row{
		{"STATUS": "Delivered", "COUNT": "93526", "PERCENTAGE": "96.9"},
		{"STATUS": "Shipped", "COUNT": "1107", "PERCENTAGE": "1.1"},
		{"STATUS": "Canceled", "COUNT": "625", "PERCENTAGE": "0.6"},
		{"STATUS": "Unavailable", "COUNT": "609", "PERCENTAGE": "0.6"},
		{"STATUS": "Invoiced", "COUNT": "314", "PERCENTAGE": "0.3"},
		{"STATUS": "Processing", "COUNT": "301", "PERCENTAGE": "0.4"},
	}
	resp := assembleExecutive(map[string][]snowflake.Row{
		"executive_kpis": {executiveKPIRow()},
		"order_statuses": statuses,
	})

	var sum float64
	for _, s := range resp.OrderStatuses {
		sum += s.Percentage
	}
	if math.Abs(sum-100) > 0.2 {
		t.Errorf("order status percentages sum to %f, expected 100 +/- 0.2", sum)
	}
}

func TestAssembleSales_SegmentMapping(t *testing.T) {
	resp := assembleSales(map[string][]snowflake.Row{
		"customer_segments": {
			{"SEGMENT": "Champions", "COUNT": "2841", "REVENUE": "912345.10", "AVG_ORDER_VALUE": "182.44"},
			{"SEGMENT": "Loyal Customers", "COUNT": "5120", "REVENUE": "701234.55", "AVG_ORDER_VALUE": "150.02"},
			{"SEGMENT": "One-Time Buyers", "COUNT": "85397", "REVENUE": "11978063.05", "AVG_ORDER_VALUE": "137.90"},
		},
	})

	if got := resp.CustomerSegments[0].Color; got != "#4CAF50" {
		t.Errorf("Champions: expected color #4CAF50, got %q", got)
	}
	if got := resp.CustomerSegments[1].Color; got != "#2196F3" {
		t.Errorf("Loyal Customers: expected color #2196F3, got %q", got)
	}
	if got := resp.CustomerSegments[2].Color; got != "#FF9800" {
		t.Errorf("One-Time Buyers: expected color #FF9800, got %q", got)
	}
}

func TestAssembleSales_UnknownTierKeptWithFallback(t *testing.T) {
	// An engagement tier outside high/medium/low makes the SQL CASE yield
	// NULL; the row is kept under a catch-all label so counts still add up.
	resp := assembleSales(map[string][]snowflake.Row{
		"customer_segments": {
			{"SEGMENT": nil, "COUNT": "17", "REVENUE": "2210.00", "AVG_ORDER_VALUE": "130.00"},
		},
	})

	if len(resp.CustomerSegments) != 1 {
		t.Fatalf("expected unmapped segment row to be kept, got %d rows", len(resp.CustomerSegments))
	}
	seg := resp.CustomerSegments[0]
	if seg.Segment != "Other" {
		t.Errorf("expected fallback label Other, got %q", seg.Segment)
	}
	if seg.Color != "#9E9E9E" {
		t.Errorf("expected neutral gray for unmapped segment, got %q", seg.Color)
	}
	if seg.Count != 17 {
		t.Errorf("expected count 17, got %d", seg.Count)
	}
}

func TestAssembleSales_KPIsAreNeutral(t *testing.T) {
	resp := assembleSales(map[string][]snowflake.Row{
		"sales_kpis": {{
			"TOTAL_PRODUCTS_SOLD": "112650",
			"ACTIVE_CATEGORIES":   "71",
			"TOTAL_SELLERS":       "3095",
			"AVG_REVIEW_SCORE":    "4.09",
		}},
	})

	if len(resp.KPIs) != 4 {
		t.Fatalf("expected 4 sales KPIs, got %d", len(resp.KPIs))
	}
	for _, kpi := range resp.KPIs {
		if kpi.Trend != "neutral" || kpi.Change != 0 {
			t.Errorf("KPI %q: sales KPIs carry no deltas, got trend %q change %f", kpi.Label, kpi.Trend, kpi.Change)
		}
	}
	if resp.KPIs[0].Value != 112650 {
		t.Errorf("expected 112650 products sold, got %f", resp.KPIs[0].Value)
	}
}

func TestAssembleSales_ExecutiveSectionsZeroed(t *testing.T) {
	resp := assembleSales(map[string][]snowflake.Row{})

	if resp.SalesMetrics != (SalesMetrics{}) {
		t.Errorf("expected zero salesMetrics on sales dashboard, got %+v", resp.SalesMetrics)
	}
	if resp.DeliveryMetrics != (DeliveryMetrics{}) {
		t.Errorf("expected zero deliveryMetrics on sales dashboard, got %+v", resp.DeliveryMetrics)
	}
	if resp.RevenueTimeSeries == nil || len(resp.RevenueTimeSeries) != 0 {
		t.Error("expected empty revenueTimeSeries on sales dashboard")
	}
}
