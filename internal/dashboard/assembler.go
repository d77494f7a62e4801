package dashboard

import (
	"github.com/samhrndi/ecommerce-analytics/internal/snowflake"
	"github.com/samhrndi/ecommerce-analytics/internal/util"
)

// Display colors per customer segment label. Unmapped labels fall back to a
// neutral gray.
var segmentColors = map[string]string{
	"Champions":       "#4CAF50",
	"Loyal Customers": "#2196F3",
	"One-Time Buyers": "#FF9800",
}

const defaultSegmentColor = "#9E9E9E"

// fallbackSegmentLabel is used when the engagement tier is outside the known
// high/medium/low set, in which case the SQL CASE yields NULL. The row is
// kept so segment counts still add up to the customer total.
const fallbackSegmentLabel = "Other"

// trendUpDown maps a change to "up" or "down". Zero counts as "down": the
// original dashboard behaves this way for revenue, orders, AOV and customer
// KPIs, and the asymmetry with trendWithNeutral is inherited behavior.
func trendUpDown(change float64) string {
	if change > 0 {
		return "up"
	}
	return "down"
}

// trendWithNeutral maps a change to "up", "down" or "neutral". Used for
// review score and on-time rate, where an unchanged value is meaningful.
func trendWithNeutral(change float64) string {
	switch {
	case change > 0:
		return "up"
	case change < 0:
		return "down"
	default:
		return "neutral"
	}
}

func firstRow(rows []snowflake.Row) snowflake.Row {
	if len(rows) == 0 {
		return snowflake.Row{}
	}
	return rows[0]
}

func buildExecutiveKPIs(row snowflake.Row) []KPI {
	revenueChange := util.ToFloat64(row["REVENUE_CHANGE"])
	ordersChange := util.ToFloat64(row["ORDERS_CHANGE"])
	aovChange := util.ToFloat64(row["AOV_CHANGE"])
	customersChange := util.ToFloat64(row["CUSTOMERS_CHANGE"])
	reviewChange := util.ToFloat64(row["REVIEW_CHANGE"])
	onTimeChange := util.ToFloat64(row["ON_TIME_CHANGE"])

	return []KPI{
		{
			Label:  "Total Revenue",
			Value:  util.ToFloat64(row["TOTAL_REVENUE"]),
			Change: revenueChange,
			Trend:  trendUpDown(revenueChange),
			Icon:   "attach_money",
			Format: "currency",
		},
		{
			Label:  "Total Orders",
			Value:  float64(util.ToInt64(row["TOTAL_ORDERS"])),
			Change: ordersChange,
			Trend:  trendUpDown(ordersChange),
			Icon:   "shopping_cart",
			Format: "number",
		},
		{
			Label:  "Avg Order Value",
			Value:  util.ToFloat64(row["AVG_ORDER_VALUE"]),
			Change: aovChange,
			Trend:  trendUpDown(aovChange),
			Icon:   "trending_up",
			Format: "currency",
		},
		{
			Label:  "Unique Customers",
			Value:  float64(util.ToInt64(row["UNIQUE_CUSTOMERS"])),
			Change: customersChange,
			Trend:  trendUpDown(customersChange),
			Icon:   "people",
			Format: "number",
		},
		{
			Label:  "Customer Satisfaction",
			Value:  util.ToFloat64(row["AVG_REVIEW_SCORE"]),
			Change: reviewChange,
			Trend:  trendWithNeutral(reviewChange),
			Icon:   "star",
			Format: "rating",
		},
		{
			Label:  "On-Time Delivery",
			Value:  util.ToFloat64(row["ON_TIME_RATE"]),
			Change: onTimeChange,
			Trend:  trendWithNeutral(onTimeChange),
			Icon:   "local_shipping",
			Format: "percent",
		},
	}
}

func buildSalesKPIs(row snowflake.Row) []KPI {
	return []KPI{
		{
			Label:  "Total Products Sold",
			Value:  float64(util.ToInt64(row["TOTAL_PRODUCTS_SOLD"])),
			Trend:  "neutral",
			Icon:   "inventory_2",
			Format: "number",
		},
		{
			Label:  "Active Categories",
			Value:  float64(util.ToInt64(row["ACTIVE_CATEGORIES"])),
			Trend:  "neutral",
			Icon:   "category",
			Format: "number",
		},
		{
			Label:  "Total Sellers",
			Value:  float64(util.ToInt64(row["TOTAL_SELLERS"])),
			Trend:  "neutral",
			Icon:   "store",
			Format: "number",
		},
		{
			Label:  "Avg Review Score",
			Value:  util.ToFloat64(row["AVG_REVIEW_SCORE"]),
			Trend:  "neutral",
			Icon:   "reviews",
			Format: "rating",
		},
	}
}

// emptyResponse returns a Response with every slice section allocated, so the
// unused half of either dashboard marshals as [] rather than null.
func emptyResponse() *Response {
	return &Response{
		KPIs:               []KPI{},
		RevenueTimeSeries:  []TimeSeriesPoint{},
		OrderStatuses:      []OrderStatus{},
		TopStates:          []StateRevenue{},
		PaymentTypes:       []PaymentType{},
		ReviewDistribution: []ReviewBucket{},
		TopProducts:        []TopProduct{},
		TopSellers:         []TopSeller{},
		CategoryMetrics:    []CategoryMetric{},
		CustomerSegments:   []CustomerSegment{},
		SalesTrend:         []TimeSeriesPoint{},
	}
}

func buildTimeSeries(rows []snowflake.Row) []TimeSeriesPoint {
	points := make([]TimeSeriesPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, TimeSeriesPoint{
			Date:  util.ToString(r["DATE"]),
			Value: util.ToFloat64(r["VALUE"]),
			Label: util.ToString(r["LABEL"]),
		})
	}
	return points
}

// assembleExecutive builds the executive dashboard from the catalog results.
// Pure function of its inputs: nulls and driver strings are coerced to
// numbers, missing values default to zero.
func assembleExecutive(results map[string][]snowflake.Row) *Response {
	kpiRow := firstRow(results["executive_kpis"])
	deliveryRow := firstRow(results["delivery_metrics"])

	resp := emptyResponse()
	resp.KPIs = buildExecutiveKPIs(kpiRow)
	resp.SalesMetrics = SalesMetrics{
		TotalRevenue:      util.ToFloat64(kpiRow["TOTAL_REVENUE"]),
		TotalOrders:       util.ToInt64(kpiRow["TOTAL_ORDERS"]),
		AverageOrderValue: util.ToFloat64(kpiRow["AVG_ORDER_VALUE"]),
		RevenueGrowth:     util.ToFloat64(kpiRow["REVENUE_CHANGE"]),
		OrderGrowth:       util.ToFloat64(kpiRow["ORDERS_CHANGE"]),
	}
	resp.RevenueTimeSeries = buildTimeSeries(results["revenue_time_series"])

	for _, r := range results["order_statuses"] {
		resp.OrderStatuses = append(resp.OrderStatuses, OrderStatus{
			Status:     util.ToString(r["STATUS"]),
			Count:      util.ToInt64(r["COUNT"]),
			Percentage: util.ToFloat64(r["PERCENTAGE"]),
		})
	}
	for _, r := range results["top_states"] {
		resp.TopStates = append(resp.TopStates, StateRevenue{
			State:     util.ToString(r["STATE"]),
			Revenue:   util.ToFloat64(r["REVENUE"]),
			Orders:    util.ToInt64(r["ORDERS"]),
			Customers: util.ToInt64(r["CUSTOMERS"]),
		})
	}
	for _, r := range results["payment_types"] {
		resp.PaymentTypes = append(resp.PaymentTypes, PaymentType{
			Type:       util.ToString(r["TYPE"]),
			Count:      util.ToInt64(r["COUNT"]),
			Value:      util.ToFloat64(r["VALUE"]),
			Percentage: util.ToFloat64(r["PERCENTAGE"]),
		})
	}
	for _, r := range results["review_distribution"] {
		resp.ReviewDistribution = append(resp.ReviewDistribution, ReviewBucket{
			Score:      util.ToInt64(r["SCORE"]),
			Count:      util.ToInt64(r["COUNT"]),
			Percentage: util.ToFloat64(r["PERCENTAGE"]),
		})
	}
	resp.DeliveryMetrics = DeliveryMetrics{
		OnTimeRate:      util.ToFloat64(deliveryRow["ON_TIME_RATE"]),
		AvgDeliveryDays: util.ToFloat64(deliveryRow["AVG_DELIVERY_DAYS"]),
		LateDeliveries:  util.ToInt64(deliveryRow["LATE_DELIVERIES"]),
		EarlyDeliveries: util.ToInt64(deliveryRow["EARLY_DELIVERIES"]),
	}
	return resp
}

// assembleSales builds the sales analytics dashboard from the catalog results.
func assembleSales(results map[string][]snowflake.Row) *Response {
	kpiRow := firstRow(results["sales_kpis"])

	resp := emptyResponse()
	resp.KPIs = buildSalesKPIs(kpiRow)
	resp.SalesTrend = buildTimeSeries(results["sales_trend"])

	for _, r := range results["top_products"] {
		resp.TopProducts = append(resp.TopProducts, TopProduct{
			Rank:      util.ToInt64(r["RANK"]),
			ProductID: util.ToString(r["PRODUCT_ID"]),
			Category:  util.ToString(r["CATEGORY"]),
			Revenue:   util.ToFloat64(r["REVENUE"]),
			Orders:    util.ToInt64(r["ORDERS"]),
			AvgPrice:  util.ToFloat64(r["AVG_PRICE"]),
			AvgReview: util.ToFloat64(r["AVG_REVIEW"]),
		})
	}
	for _, r := range results["top_sellers"] {
		resp.TopSellers = append(resp.TopSellers, TopSeller{
			SellerID:        util.ToString(r["SELLER_ID"]),
			City:            util.ToString(r["CITY"]),
			State:           util.ToString(r["STATE"]),
			Revenue:         util.ToFloat64(r["REVENUE"]),
			Orders:          util.ToInt64(r["ORDERS"]),
			AvgRating:       util.ToFloat64(r["AVG_RATING"]),
			FulfillmentRate: util.ToFloat64(r["FULFILLMENT_RATE"]),
		})
	}
	for _, r := range results["category_metrics"] {
		resp.CategoryMetrics = append(resp.CategoryMetrics, CategoryMetric{
			Category:     util.ToString(r["CATEGORY"]),
			Revenue:      util.ToFloat64(r["REVENUE"]),
			Orders:       util.ToInt64(r["ORDERS"]),
			AvgPrice:     util.ToFloat64(r["AVG_PRICE"]),
			ProductCount: util.ToInt64(r["PRODUCT_COUNT"]),
		})
	}
	for _, r := range results["customer_segments"] {
		segment := util.ToString(r["SEGMENT"])
		if segment == "" {
			segment = fallbackSegmentLabel
		}
		color, ok := segmentColors[segment]
		if !ok {
			color = defaultSegmentColor
		}
		resp.CustomerSegments = append(resp.CustomerSegments, CustomerSegment{
			Segment:       segment,
			Count:         util.ToInt64(r["COUNT"]),
			Revenue:       util.ToFloat64(r["REVENUE"]),
			AvgOrderValue: util.ToFloat64(r["AVG_ORDER_VALUE"]),
			Color:         color,
		})
	}
	return resp
}
