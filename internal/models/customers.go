package models

// RFMProfile is the derived recency/frequency/monetary row for one customer.
type RFMProfile struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
	RScore     int     `json:"r_score"`
	FScore     int     `json:"f_score"`
	MScore     int     `json:"m_score"`
	RFMScore   int     `json:"rfm_score"`
	Segment    string  `json:"segment"`
}

// SegmentSummary rolls RFM profiles up by segment label.
type SegmentSummary struct {
	Segment      string  `json:"segment"`
	Customers    int     `json:"customers"`
	AvgRecency   float64 `json:"avg_recency"`
	AvgFrequency float64 `json:"avg_frequency"`
	AvgMonetary  float64 `json:"avg_monetary"`
	TotalValue   float64 `json:"total_value"`
	RevenueShare float64 `json:"revenue_share"`
}

// CohortCLV aggregates customer lifetime value by first-purchase year.
type CohortCLV struct {
	CohortYear int     `json:"cohort_year"`
	Customers  int     `json:"customers"`
	AvgCLV     float64 `json:"avg_clv"`
	TotalCLV   float64 `json:"total_clv"`
}

// CLVQuartile is one value band of the customer base.
type CLVQuartile struct {
	Label      string  `json:"label"`
	Customers  int     `json:"customers"`
	TotalValue float64 `json:"total_value"`
}

// TopCustomer is one row of the warehouse lifetime-value leaderboard.
type TopCustomer struct {
	CustomerID    string  `json:"customer_id"`
	State         string  `json:"state"`
	Segment       string  `json:"segment"`
	Purchases     int     `json:"purchases"`
	LifetimeValue float64 `json:"lifetime_value"`
	AvgOrder      float64 `json:"avg_order_value"`
	IsPrimeMember bool    `json:"is_prime_member"`
}

// LifecycleSegment groups customers by purchase count.
type LifecycleSegment struct {
	Lifecycle  string  `json:"lifecycle"`
	Customers  int     `json:"customers"`
	AvgValue   float64 `json:"avg_value"`
	TotalValue float64 `json:"total_value"`
}
