package warehouse

import (
	"context"
	"fmt"

	"ecomdash/internal/models"
)

// Pre-built analytical queries over the star schema. Each mirrors one of
// the precomputed in-memory analyses so dashboards backed by either source
// return the same shapes.

func (s *Store) RevenueTrends(ctx context.Context, startYear, endYear int) ([]models.YearlyRevenue, error) {
	const query = `
	SELECT
		dd.year,
		SUM(ft.final_amount) AS total_revenue,
		COUNT(DISTINCT ft.transaction_id) AS transactions,
		ROUND(AVG(ft.final_amount)::numeric, 2) AS avg_order_value
	FROM fact_transactions ft
	JOIN dim_date dd ON ft.date_id = dd.date_id
	WHERE dd.year BETWEEN $1 AND $2
	GROUP BY dd.year
	ORDER BY dd.year`

	rows, err := s.db.QueryContext(ctx, query, startYear, endYear)
	if err != nil {
		return nil, fmt.Errorf("revenue trends: %w", err)
	}
	defer rows.Close()

	var result []models.YearlyRevenue
	for rows.Next() {
		var yr models.YearlyRevenue
		if err := rows.Scan(&yr.Year, &yr.TotalRevenue, &yr.Transactions, &yr.AvgOrder); err != nil {
			return nil, fmt.Errorf("scan revenue trend: %w", err)
		}
		result = append(result, yr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := 1; i < len(result); i++ {
		if prev := result[i-1].TotalRevenue; prev > 0 {
			result[i].GrowthRate = (result[i].TotalRevenue - prev) / prev * 100
		}
	}
	return result, nil
}

func (s *Store) MonthlyRevenue(ctx context.Context, year int) ([]models.MonthlySummary, error) {
	const query = `
	SELECT
		dd.month,
		dd.month_name,
		SUM(ft.final_amount) AS monthly_revenue,
		COUNT(DISTINCT ft.transaction_id) AS transactions,
		ROUND(AVG(ft.final_amount)::numeric, 2) AS avg_order_value
	FROM fact_transactions ft
	JOIN dim_date dd ON ft.date_id = dd.date_id
	WHERE dd.year = $1
	GROUP BY dd.month, dd.month_name
	ORDER BY dd.month`

	rows, err := s.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	defer rows.Close()

	var result []models.MonthlySummary
	for rows.Next() {
		var m models.MonthlySummary
		if err := rows.Scan(&m.Month, &m.MonthName, &m.TotalRevenue, &m.Transactions, &m.AvgOrder); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (s *Store) CategoryPerformance(ctx context.Context) ([]models.CategoryPerformance, error) {
	const query = `
	SELECT
		dp.category,
		SUM(ft.final_amount) AS total_revenue,
		ROUND(100 * SUM(ft.final_amount) /
			(SELECT SUM(final_amount) FROM fact_transactions), 2) AS market_share,
		COUNT(DISTINCT ft.transaction_id) AS transactions,
		COUNT(DISTINCT ft.customer_id) AS unique_customers,
		ROUND(AVG(ft.final_amount)::numeric, 2) AS avg_order_value,
		ROUND(AVG(dp.rating)::numeric, 2) AS avg_rating,
		ROUND(100.0 * SUM(CASE WHEN ft.return_status = 'Returned' THEN 1 ELSE 0 END)
			/ COUNT(*), 2) AS return_rate
	FROM fact_transactions ft
	JOIN dim_product dp ON ft.product_id = dp.product_id
	GROUP BY dp.category
	ORDER BY total_revenue DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category performance: %w", err)
	}
	defer rows.Close()

	var result []models.CategoryPerformance
	for rows.Next() {
		var c models.CategoryPerformance
		if err := rows.Scan(&c.Category, &c.TotalRevenue, &c.MarketShare, &c.Transactions,
			&c.UniqueCustomers, &c.AvgOrder, &c.AvgRating, &c.ReturnRate); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (s *Store) TopBrands(ctx context.Context, limit int) ([]models.BrandPerformance, error) {
	const query = `
	SELECT
		dp.brand,
		SUM(ft.final_amount) AS total_revenue,
		COUNT(DISTINCT ft.transaction_id) AS transactions,
		ROUND(AVG(ft.final_amount)::numeric, 2) AS avg_order_value,
		ROUND(AVG(dp.rating)::numeric, 2) AS avg_rating,
		ROUND(100 * SUM(ft.final_amount) /
			(SELECT SUM(final_amount) FROM fact_transactions), 2) AS revenue_share
	FROM fact_transactions ft
	JOIN dim_product dp ON ft.product_id = dp.product_id
	GROUP BY dp.brand
	ORDER BY total_revenue DESC
	LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top brands: %w", err)
	}
	defer rows.Close()

	var result []models.BrandPerformance
	for rows.Next() {
		var b models.BrandPerformance
		if err := rows.Scan(&b.Brand, &b.TotalRevenue, &b.Transactions, &b.AvgOrder,
			&b.AvgRating, &b.RevenueShare); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (s *Store) TopCustomers(ctx context.Context, limit int) ([]models.TopCustomer, error) {
	const query = `
	SELECT
		dc.customer_id,
		dc.customer_state,
		COALESCE(dc.rfm_segment, ''),
		COUNT(DISTINCT ft.transaction_id) AS purchases,
		ROUND(SUM(ft.final_amount)::numeric, 2) AS lifetime_value,
		ROUND(AVG(ft.final_amount)::numeric, 2) AS avg_order_value,
		dc.is_prime_member
	FROM dim_customer dc
	JOIN fact_transactions ft ON dc.customer_id = ft.customer_id
	GROUP BY dc.customer_id, dc.customer_state, dc.rfm_segment, dc.is_prime_member
	ORDER BY SUM(ft.final_amount) DESC
	LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()

	var result []models.TopCustomer
	for rows.Next() {
		var c models.TopCustomer
		if err := rows.Scan(&c.CustomerID, &c.State, &c.Segment, &c.Purchases,
			&c.LifetimeValue, &c.AvgOrder, &c.IsPrimeMember); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (s *Store) GeographicPerformance(ctx context.Context) ([]models.StatePerformance, error) {
	const query = `
	SELECT
		dc.customer_state,
		COALESCE(dc.customer_tier, ''),
		ROUND(SUM(ft.final_amount)::numeric, 2) AS total_revenue,
		COUNT(DISTINCT ft.transaction_id) AS transactions,
		COUNT(DISTINCT dc.customer_id) AS unique_customers,
		ROUND(AVG(ft.final_amount)::numeric, 2) AS avg_order_value
	FROM dim_customer dc
	JOIN fact_transactions ft ON dc.customer_id = ft.customer_id
	GROUP BY dc.customer_state, dc.customer_tier
	ORDER BY total_revenue DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("geographic performance: %w", err)
	}
	defer rows.Close()

	var result []models.StatePerformance
	for rows.Next() {
		var st models.StatePerformance
		if err := rows.Scan(&st.State, &st.Tier, &st.TotalRevenue, &st.Transactions,
			&st.UniqueCustomers, &st.AvgOrder); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func (s *Store) PaymentMethodTrends(ctx context.Context, startYear int) ([]models.PaymentTrend, error) {
	const query = `
	SELECT
		dd.year,
		ft.payment_method,
		COUNT(DISTINCT ft.transaction_id) AS transactions,
		SUM(ft.final_amount) AS total_value,
		ROUND(100.0 * COUNT(*) / SUM(COUNT(*)) OVER (PARTITION BY dd.year), 2) AS share_of_year
	FROM fact_transactions ft
	JOIN dim_date dd ON ft.date_id = dd.date_id
	WHERE dd.year >= $1
	GROUP BY dd.year, ft.payment_method
	ORDER BY dd.year, ft.payment_method`

	rows, err := s.db.QueryContext(ctx, query, startYear)
	if err != nil {
		return nil, fmt.Errorf("payment trends: %w", err)
	}
	defer rows.Close()

	var result []models.PaymentTrend
	for rows.Next() {
		var p models.PaymentTrend
		if err := rows.Scan(&p.Year, &p.PaymentMethod, &p.Transactions, &p.TotalValue, &p.ShareOfYear); err != nil {
			return nil, fmt.Errorf("scan payment trend: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *Store) DeliveryMetrics(ctx context.Context) ([]models.DeliveryPerformance, error) {
	const query = `
	SELECT
		ft.delivery_type,
		COUNT(DISTINCT ft.transaction_id) AS orders,
		ROUND(AVG(ft.delivery_days)::numeric, 2) AS avg_days,
		MIN(ft.delivery_days) AS min_days,
		MAX(ft.delivery_days) AS max_days,
		ROUND(100.0 * SUM(CASE WHEN ft.delivery_days <= 3 THEN 1 ELSE 0 END) / COUNT(*), 2) AS on_time_3d,
		ROUND(100.0 * SUM(CASE WHEN ft.delivery_days <= 7 THEN 1 ELSE 0 END) / COUNT(*), 2) AS on_time_7d,
		ROUND(AVG(ft.customer_rating)::numeric, 2) AS avg_rating
	FROM fact_transactions ft
	GROUP BY ft.delivery_type
	ORDER BY ft.delivery_type`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("delivery metrics: %w", err)
	}
	defer rows.Close()

	var result []models.DeliveryPerformance
	for rows.Next() {
		var d models.DeliveryPerformance
		if err := rows.Scan(&d.DeliveryType, &d.Orders, &d.AvgDays, &d.MinDays, &d.MaxDays,
			&d.OnTime3Pct, &d.OnTime7Pct, &d.AvgRating); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (s *Store) PrimeImpact(ctx context.Context) ([]models.PrimeImpact, error) {
	const query = `
	SELECT
		CASE WHEN ft.is_prime_member THEN 'Prime' ELSE 'Non-Prime' END AS membership,
		COUNT(DISTINCT ft.transaction_id) AS transactions,
		SUM(ft.final_amount) AS total_revenue,
		COUNT(DISTINCT ft.customer_id) AS unique_customers,
		ROUND(AVG(ft.final_amount)::numeric, 2) AS avg_order_value,
		ROUND(AVG(ft.delivery_days)::numeric, 2) AS avg_delivery_days,
		ROUND(AVG(ft.customer_rating)::numeric, 2) AS avg_rating,
		ROUND(100.0 * SUM(CASE WHEN ft.return_status = 'Returned' THEN 1 ELSE 0 END)
			/ COUNT(*), 2) AS return_rate
	FROM fact_transactions ft
	GROUP BY ft.is_prime_member
	ORDER BY membership DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("prime impact: %w", err)
	}
	defer rows.Close()

	var result []models.PrimeImpact
	for rows.Next() {
		var p models.PrimeImpact
		if err := rows.Scan(&p.Membership, &p.Transactions, &p.TotalRevenue, &p.UniqueCustomers,
			&p.AvgOrder, &p.AvgDeliveryDays, &p.AvgRating, &p.ReturnRate); err != nil {
			return nil, fmt.Errorf("scan prime impact: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *Store) CustomerSegments(ctx context.Context) ([]models.SegmentSummary, error) {
	const query = `
	SELECT
		dc.rfm_segment,
		COUNT(DISTINCT dc.customer_id) AS customers,
		ROUND(SUM(ft.final_amount)::numeric, 2) AS total_value,
		ROUND(100 * SUM(ft.final_amount) /
			(SELECT SUM(final_amount) FROM fact_transactions), 2) AS revenue_share
	FROM dim_customer dc
	JOIN fact_transactions ft ON dc.customer_id = ft.customer_id
	WHERE dc.rfm_segment IS NOT NULL
	GROUP BY dc.rfm_segment
	ORDER BY total_value DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("customer segments: %w", err)
	}
	defer rows.Close()

	var result []models.SegmentSummary
	for rows.Next() {
		var seg models.SegmentSummary
		if err := rows.Scan(&seg.Segment, &seg.Customers, &seg.TotalValue, &seg.RevenueShare); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		result = append(result, seg)
	}
	return result, rows.Err()
}

func (s *Store) ExecutiveSummary(ctx context.Context) (models.BusinessHealth, error) {
	const query = `
	SELECT
		ROUND(SUM(ft.final_amount)::numeric, 2) AS total_revenue,
		COUNT(DISTINCT ft.transaction_id) AS transactions,
		COUNT(DISTINCT ft.customer_id) AS unique_customers,
		ROUND(AVG(ft.final_amount)::numeric, 2) AS avg_order_value,
		ROUND(AVG(ft.delivery_days)::numeric, 2) AS avg_delivery_days,
		ROUND(100.0 * SUM(CASE WHEN ft.delivery_days <= 7 THEN 1 ELSE 0 END) / COUNT(*), 2) AS on_time_pct,
		ROUND(100.0 * SUM(CASE WHEN ft.return_status = 'Returned' THEN 1 ELSE 0 END) / COUNT(*), 2) AS return_rate
	FROM fact_transactions ft`

	var health models.BusinessHealth
	err := s.db.QueryRowContext(ctx, query).Scan(
		&health.TotalRevenue,
		&health.Transactions,
		&health.UniqueCustomers,
		&health.AvgOrder,
		&health.AvgDeliveryDays,
		&health.OnTimePct,
		&health.ReturnRate,
	)
	if err != nil {
		return models.BusinessHealth{}, fmt.Errorf("executive summary: %w", err)
	}
	return health, nil
}
