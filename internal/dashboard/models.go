package dashboard

// Response is the single shape shared by both dashboards. Sections the
// requested dashboard does not populate are present with empty or zero-valued
// defaults, never omitted — the frontend binds to every key.
type Response struct {
	KPIs               []KPI             `json:"kpis"`
	SalesMetrics       SalesMetrics      `json:"salesMetrics"`
	RevenueTimeSeries  []TimeSeriesPoint `json:"revenueTimeSeries"`
	OrderStatuses      []OrderStatus     `json:"orderStatuses"`
	TopStates          []StateRevenue    `json:"topStates"`
	PaymentTypes       []PaymentType     `json:"paymentTypes"`
	ReviewDistribution []ReviewBucket    `json:"reviewDistribution"`
	DeliveryMetrics    DeliveryMetrics   `json:"deliveryMetrics"`
	TopProducts        []TopProduct      `json:"topProducts"`
	TopSellers         []TopSeller       `json:"topSellers"`
	CategoryMetrics    []CategoryMetric  `json:"categoryMetrics"`
	CustomerSegments   []CustomerSegment `json:"customerSegments"`
	SalesTrend         []TimeSeriesPoint `json:"salesTrend"`
}

// KPI is one headline card. Icon and Format are display hints for the
// frontend ("attach_money"/"currency" etc.), not interpreted here.
type KPI struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
	Icon   string  `json:"icon"`
	Format string  `json:"format"`
}

type SalesMetrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int64   `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	RevenueGrowth     float64 `json:"revenueGrowth"`
	OrderGrowth       float64 `json:"orderGrowth"`
}

type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type OrderStatus struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type StateRevenue struct {
	State     string  `json:"state"`
	Revenue   float64 `json:"revenue"`
	Orders    int64   `json:"orders"`
	Customers int64   `json:"customers"`
}

type PaymentType struct {
	Type       string  `json:"type"`
	Count      int64   `json:"count"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

type ReviewBucket struct {
	Score      int64   `json:"score"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DeliveryMetrics struct {
	OnTimeRate      float64 `json:"onTimeRate"`
	AvgDeliveryDays float64 `json:"avgDeliveryDays"`
	LateDeliveries  int64   `json:"lateDeliveries"`
	EarlyDeliveries int64   `json:"earlyDeliveries"`
}

type TopProduct struct {
	Rank      int64   `json:"rank"`
	ProductID string  `json:"productId"`
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
	Orders    int64   `json:"orders"`
	AvgPrice  float64 `json:"avgPrice"`
	AvgReview float64 `json:"avgReview"`
}

type TopSeller struct {
	SellerID        string  `json:"sellerId"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Revenue         float64 `json:"revenue"`
	Orders          int64   `json:"orders"`
	AvgRating       float64 `json:"avgRating"`
	FulfillmentRate float64 `json:"fulfillmentRate"`
}

type CategoryMetric struct {
	Category     string  `json:"category"`
	Revenue      float64 `json:"revenue"`
	Orders       int64   `json:"orders"`
	AvgPrice     float64 `json:"avgPrice"`
	ProductCount int64   `json:"productCount"`
}

type CustomerSegment struct {
	Segment       string  `json:"segment"`
	Count         int64   `json:"count"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	Color         string  `json:"color"`
}
