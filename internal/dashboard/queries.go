package dashboard

import "github.com/samhrndi/ecommerce-analytics/internal/snowflake"

// The query catalog. Every statement is a fixed, parameterless aggregation
// over the dbt marts; the warehouse does all the computation and this service
// only reshapes the rows. Column names, rounding and filters are part of the
// contract with the assembler — change them together or not at all.

const executiveKPIsSQL = `
WITH totals AS (
    SELECT
        ROUND(SUM(ORDER_TOTAL), 2)                                          AS total_revenue,
        COUNT(*)                                                             AS total_orders,
        ROUND(AVG(ORDER_TOTAL), 2)                                          AS avg_order_value,
        COUNT(DISTINCT CUSTOMER_UNIQUE_ID)                                   AS unique_customers,
        ROUND(AVG(AVG_REVIEW_SCORE), 2)                                     AS avg_review_score,
        ROUND(AVG(CASE WHEN IS_DELIVERED_ON_TIME THEN 1.0 ELSE 0.0 END)*100, 1)
                                                                             AS on_time_rate
    FROM MARTS.FCT_ORDERS
),
current_half AS (
    SELECT
        ROUND(SUM(ORDER_TOTAL), 2)            AS revenue,
        COUNT(*)                               AS orders,
        ROUND(AVG(ORDER_TOTAL), 2)            AS aov,
        COUNT(DISTINCT CUSTOMER_UNIQUE_ID)     AS customers,
        ROUND(AVG(AVG_REVIEW_SCORE), 2)       AS review,
        ROUND(AVG(CASE WHEN IS_DELIVERED_ON_TIME THEN 1.0 ELSE 0.0 END)*100, 1) AS on_time
    FROM MARTS.FCT_ORDERS
    WHERE ORDER_MONTH >= '2018-01-01'
),
previous_half AS (
    SELECT
        ROUND(SUM(ORDER_TOTAL), 2)            AS revenue,
        COUNT(*)                               AS orders,
        ROUND(AVG(ORDER_TOTAL), 2)            AS aov,
        COUNT(DISTINCT CUSTOMER_UNIQUE_ID)     AS customers,
        ROUND(AVG(AVG_REVIEW_SCORE), 2)       AS review,
        ROUND(AVG(CASE WHEN IS_DELIVERED_ON_TIME THEN 1.0 ELSE 0.0 END)*100, 1) AS on_time
    FROM MARTS.FCT_ORDERS
    WHERE ORDER_MONTH < '2018-01-01'
)
SELECT
    t.*,
    ROUND((c.revenue  - p.revenue)  * 100.0 / NULLIF(p.revenue, 0), 1)   AS revenue_change,
    ROUND((c.orders   - p.orders)   * 100.0 / NULLIF(p.orders, 0), 1)    AS orders_change,
    ROUND((c.aov      - p.aov)      * 100.0 / NULLIF(p.aov, 0), 1)      AS aov_change,
    ROUND((c.customers- p.customers)* 100.0 / NULLIF(p.customers, 0), 1) AS customers_change,
    ROUND(c.review - p.review, 2)                                          AS review_change,
    ROUND(c.on_time - p.on_time, 1)                                        AS on_time_change
FROM totals t, current_half c, previous_half p
`

const revenueTimeSeriesSQL = `
SELECT
    TO_CHAR(ORDER_MONTH, 'YYYY-MM')  AS date,
    TO_CHAR(ORDER_MONTH, 'Mon YYYY') AS label,
    ROUND(SUM(ORDER_TOTAL), 2)       AS value
FROM MARTS.FCT_ORDERS
GROUP BY ORDER_MONTH
ORDER BY ORDER_MONTH
`

const orderStatusesSQL = `
SELECT
    INITCAP(ORDER_STATUS)                                       AS status,
    COUNT(*)                                                     AS count,
    ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER(), 1)          AS percentage
FROM MARTS.FCT_ORDERS
GROUP BY ORDER_STATUS
ORDER BY count DESC
`

const topStatesSQL = `
SELECT
    CUSTOMER_STATE                             AS state,
    ROUND(SUM(ORDER_TOTAL), 2)                AS revenue,
    COUNT(*)                                   AS orders,
    COUNT(DISTINCT CUSTOMER_UNIQUE_ID)         AS customers
FROM MARTS.FCT_ORDERS
WHERE CUSTOMER_STATE IS NOT NULL
GROUP BY CUSTOMER_STATE
ORDER BY revenue DESC
LIMIT 10
`

const paymentTypesSQL = `
SELECT
    INITCAP(REPLACE(PRIMARY_PAYMENT_TYPE, '_', ' ')) AS type,
    COUNT(*)                                          AS count,
    ROUND(SUM(PAYMENT_TOTAL), 2)                     AS value,
    ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER(), 1) AS percentage
FROM MARTS.FCT_ORDERS
WHERE PRIMARY_PAYMENT_TYPE IS NOT NULL
GROUP BY PRIMARY_PAYMENT_TYPE
ORDER BY count DESC
`

const reviewDistributionSQL = `
SELECT
    ROUND(AVG_REVIEW_SCORE)::INT                                AS score,
    COUNT(*)                                                     AS count,
    ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER(), 1)          AS percentage
FROM MARTS.FCT_ORDERS
WHERE AVG_REVIEW_SCORE IS NOT NULL
GROUP BY ROUND(AVG_REVIEW_SCORE)
ORDER BY score DESC
`

const deliveryMetricsSQL = `
SELECT
    ROUND(AVG(CASE WHEN IS_DELIVERED_ON_TIME THEN 1.0 ELSE 0.0 END)*100, 1)     AS on_time_rate,
    ROUND(AVG(DAYS_TO_DELIVER), 1)                                                AS avg_delivery_days,
    SUM(CASE WHEN IS_DELIVERED_ON_TIME = FALSE AND DAYS_TO_DELIVER IS NOT NULL
        THEN 1 ELSE 0 END)                                                        AS late_deliveries,
    SUM(CASE WHEN IS_DELIVERED_ON_TIME THEN 1 ELSE 0 END)                         AS early_deliveries
FROM MARTS.FCT_ORDERS
WHERE ORDER_STATUS = 'delivered'
`

const salesKPIsSQL = `
SELECT
    SUM(ITEM_COUNT)                                               AS total_products_sold,
    (SELECT COUNT(DISTINCT CATEGORY)
     FROM MARTS.DIM_PRODUCTS WHERE TOTAL_ORDERS > 0)             AS active_categories,
    (SELECT COUNT(*)
     FROM MARTS.DIM_SELLERS WHERE TOTAL_ORDERS > 0)              AS total_sellers,
    ROUND(AVG(AVG_REVIEW_SCORE), 2)                              AS avg_review_score
FROM MARTS.FCT_ORDERS
WHERE AVG_REVIEW_SCORE IS NOT NULL
`

const salesTrendSQL = `
SELECT
    TO_CHAR(ORDER_MONTH, 'YYYY-MM')  AS date,
    TO_CHAR(ORDER_MONTH, 'Mon YYYY') AS label,
    ROUND(SUM(ORDER_TOTAL), 2)       AS value
FROM MARTS.FCT_ORDERS
GROUP BY ORDER_MONTH
ORDER BY ORDER_MONTH
`

const topProductsSQL = `
SELECT
    ROW_NUMBER() OVER (ORDER BY TOTAL_REVENUE DESC) AS rank,
    PRODUCT_ID                                       AS product_id,
    COALESCE(CATEGORY, 'Unknown')                    AS category,
    ROUND(TOTAL_REVENUE, 2)                          AS revenue,
    TOTAL_ORDERS                                     AS orders,
    ROUND(COALESCE(AVG_PRICE, 0), 2)                AS avg_price,
    ROUND(COALESCE(AVG_REVIEW_SCORE, 0), 1)         AS avg_review
FROM MARTS.DIM_PRODUCTS
WHERE TOTAL_ORDERS > 0
ORDER BY TOTAL_REVENUE DESC
LIMIT 10
`

const topSellersSQL = `
SELECT
    s.SELLER_ID                                        AS seller_id,
    INITCAP(s.CITY)                                    AS city,
    s.STATE                                            AS state,
    ROUND(s.TOTAL_REVENUE, 2)                          AS revenue,
    s.TOTAL_ORDERS                                     AS orders,
    ROUND(COALESCE(s.AVG_REVIEW_SCORE, 0), 1)         AS avg_rating,
    ROUND(
        COUNT(CASE WHEN oi.ORDER_STATUS = 'delivered' THEN 1 END) * 100.0
        / NULLIF(COUNT(*), 0), 1
    )                                                   AS fulfillment_rate
FROM MARTS.DIM_SELLERS s
LEFT JOIN INTERMEDIATE.INT_ORDER_ITEMS_ENRICHED oi
    ON s.SELLER_ID = oi.SELLER_ID
WHERE s.TOTAL_ORDERS > 0
GROUP BY s.SELLER_ID, s.CITY, s.STATE,
         s.TOTAL_REVENUE, s.TOTAL_ORDERS, s.AVG_REVIEW_SCORE
ORDER BY revenue DESC
LIMIT 10
`

const categoryMetricsSQL = `
SELECT
    CATEGORY                          AS category,
    ROUND(SUM(TOTAL_REVENUE), 2)     AS revenue,
    SUM(TOTAL_ORDERS)                 AS orders,
    ROUND(AVG(AVG_PRICE), 2)         AS avg_price,
    COUNT(*)                          AS product_count
FROM MARTS.DIM_PRODUCTS
WHERE CATEGORY IS NOT NULL AND TOTAL_ORDERS > 0
GROUP BY CATEGORY
ORDER BY revenue DESC
LIMIT 10
`

const customerSegmentsSQL = `
SELECT
    CASE ENGAGEMENT_TIER
        WHEN 'high'   THEN 'Champions'
        WHEN 'medium' THEN 'Loyal Customers'
        WHEN 'low'    THEN 'One-Time Buyers'
    END                                     AS segment,
    COUNT(*)                                AS count,
    ROUND(SUM(LIFETIME_VALUE), 2)          AS revenue,
    ROUND(AVG(AVG_ORDER_VALUE), 2)         AS avg_order_value
FROM MARTS.DIM_CUSTOMERS
GROUP BY ENGAGEMENT_TIER
ORDER BY revenue DESC
`

// catalogQuery names one statement and the schema its session runs in.
type catalogQuery struct {
	name   string
	sql    string
	schema string
}

var executiveCatalog = []catalogQuery{
	{name: "executive_kpis", sql: executiveKPIsSQL, schema: snowflake.SchemaMarts},
	{name: "revenue_time_series", sql: revenueTimeSeriesSQL, schema: snowflake.SchemaMarts},
	{name: "order_statuses", sql: orderStatusesSQL, schema: snowflake.SchemaMarts},
	{name: "top_states", sql: topStatesSQL, schema: snowflake.SchemaMarts},
	{name: "payment_types", sql: paymentTypesSQL, schema: snowflake.SchemaMarts},
	{name: "review_distribution", sql: reviewDistributionSQL, schema: snowflake.SchemaMarts},
	{name: "delivery_metrics", sql: deliveryMetricsSQL, schema: snowflake.SchemaMarts},
}

var salesCatalog = []catalogQuery{
	{name: "sales_kpis", sql: salesKPIsSQL, schema: snowflake.SchemaMarts},
	{name: "sales_trend", sql: salesTrendSQL, schema: snowflake.SchemaMarts},
	{name: "top_products", sql: topProductsSQL, schema: snowflake.SchemaMarts},
	{name: "top_sellers", sql: topSellersSQL, schema: snowflake.SchemaMarts},
	{name: "category_metrics", sql: categoryMetricsSQL, schema: snowflake.SchemaMarts},
	{name: "customer_segments", sql: customerSegmentsSQL, schema: snowflake.SchemaMarts},
}
