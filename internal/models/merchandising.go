package models

// CategoryPerformance is one row of the category breakdown.
type CategoryPerformance struct {
	Category        string  `json:"category"`
	TotalRevenue    float64 `json:"total_revenue"`
	MarketShare     float64 `json:"market_share"`
	Transactions    int     `json:"transactions"`
	UniqueCustomers int     `json:"unique_customers"`
	AvgOrder        float64 `json:"avg_order_value"`
	AvgRating       float64 `json:"avg_rating"`
	ReturnRate      float64 `json:"return_rate"`
}

// BrandPerformance is one row of the top-brand leaderboard.
type BrandPerformance struct {
	Brand        string  `json:"brand"`
	TotalRevenue float64 `json:"total_revenue"`
	Transactions int     `json:"transactions"`
	AvgOrder     float64 `json:"avg_order_value"`
	AvgRating    float64 `json:"avg_rating"`
	RevenueShare float64 `json:"revenue_share"`
}

// PriceBand buckets demand by original price.
type PriceBand struct {
	Label        string  `json:"label"`
	Low          float64 `json:"low"`
	High         float64 `json:"high"`
	Transactions int     `json:"transactions"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRating    float64 `json:"avg_rating"`
}

// DiscountBand buckets orders by discount percentage.
type DiscountBand struct {
	Label        string  `json:"label"`
	Transactions int     `json:"transactions"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgOrder     float64 `json:"avg_order_value"`
	ReturnRate   float64 `json:"return_rate"`
}

// RatingBand buckets orders by product rating.
type RatingBand struct {
	Label        string  `json:"label"`
	Transactions int     `json:"transactions"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgOrder     float64 `json:"avg_order_value"`
	ReturnRate   float64 `json:"return_rate"`
}

// LifecyclePhase aggregates product revenue by time on the catalog.
type LifecyclePhase struct {
	Phase        string  `json:"phase"`
	Products     int     `json:"products"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRevenue   float64 `json:"avg_revenue"`
}
