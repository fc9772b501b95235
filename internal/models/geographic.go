package models

// StatePerformance is one row of the per-state breakdown.
type StatePerformance struct {
	State           string  `json:"state"`
	Tier            string  `json:"tier"`
	TotalRevenue    float64 `json:"total_revenue"`
	Transactions    int     `json:"transactions"`
	UniqueCustomers int     `json:"unique_customers"`
	AvgOrder        float64 `json:"avg_order_value"`
}

// TierSummary rolls state performance up into market tiers.
type TierSummary struct {
	Tier            string  `json:"tier"`
	TotalRevenue    float64 `json:"total_revenue"`
	Transactions    int     `json:"transactions"`
	UniqueCustomers int     `json:"unique_customers"`
	AvgOrder        float64 `json:"avg_order_value"`
	RevenueShare    float64 `json:"revenue_share"`
}

// FestivalImpact summarizes sales attributed to one festival.
type FestivalImpact struct {
	Festival     string  `json:"festival"`
	TotalRevenue float64 `json:"total_revenue"`
	Transactions int     `json:"transactions"`
	AvgOrder     float64 `json:"avg_order_value"`
	AvgRating    float64 `json:"avg_rating"`
}

// FestivalSplit is the festival vs non-festival revenue share.
type FestivalSplit struct {
	FestivalRevenue    float64 `json:"festival_revenue"`
	NonFestivalRevenue float64 `json:"non_festival_revenue"`
	FestivalPct        float64 `json:"festival_pct"`
}

// StateDelivery ranks states by average delivery time.
type StateDelivery struct {
	State   string  `json:"state"`
	AvgDays float64 `json:"avg_days"`
	Orders  int     `json:"orders"`
}
