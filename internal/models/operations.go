package models

// PaymentTrend is one (year, method) cell of payment adoption.
type PaymentTrend struct {
	Year          int     `json:"year"`
	PaymentMethod string  `json:"payment_method"`
	Transactions  int     `json:"transactions"`
	TotalValue    float64 `json:"total_value"`
	ShareOfYear   float64 `json:"share_of_year"`
}

// DeliveryPerformance summarizes one delivery type.
type DeliveryPerformance struct {
	DeliveryType string  `json:"delivery_type"`
	Orders       int     `json:"orders"`
	AvgDays      float64 `json:"avg_days"`
	MinDays      int     `json:"min_days"`
	MaxDays      int     `json:"max_days"`
	OnTime3Pct   float64 `json:"on_time_3d_pct"`
	OnTime7Pct   float64 `json:"on_time_7d_pct"`
	AvgRating    float64 `json:"avg_rating"`
}

// ReturnStats summarizes one return status.
type ReturnStats struct {
	Status       string  `json:"status"`
	Transactions int     `json:"transactions"`
	Share        float64 `json:"share"`
	AvgRating    float64 `json:"avg_rating"`
}

// CategoryReturnRate is the per-category return percentage.
type CategoryReturnRate struct {
	Category   string  `json:"category"`
	Returned   int     `json:"returned"`
	Total      int     `json:"total"`
	ReturnRate float64 `json:"return_rate"`
}

// PrimeImpact compares Prime against non-Prime orders.
type PrimeImpact struct {
	Membership      string  `json:"membership"`
	Transactions    int     `json:"transactions"`
	TotalRevenue    float64 `json:"total_revenue"`
	UniqueCustomers int     `json:"unique_customers"`
	AvgOrder        float64 `json:"avg_order_value"`
	AvgDeliveryDays float64 `json:"avg_delivery_days"`
	AvgRating       float64 `json:"avg_rating"`
	ReturnRate      float64 `json:"return_rate"`
}
