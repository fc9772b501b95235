package models

// YearlyRevenue is one row of the annual revenue trend.
type YearlyRevenue struct {
	Year         int     `json:"year"`
	TotalRevenue float64 `json:"total_revenue"`
	Transactions int     `json:"transactions"`
	AvgOrder     float64 `json:"avg_order_value"`
	GrowthRate   float64 `json:"growth_rate"`
}

// MonthlyCell is one cell of the month-by-year revenue heatmap.
type MonthlyCell struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

// MonthlySummary aggregates one calendar month across all years.
type MonthlySummary struct {
	Month        int     `json:"month"`
	MonthName    string  `json:"month_name"`
	TotalRevenue float64 `json:"total_revenue"`
	Transactions int     `json:"transactions"`
	AvgOrder     float64 `json:"avg_order_value"`
	Peak         bool    `json:"peak"`
}

// WeekdayPattern aggregates sales by day of week.
type WeekdayPattern struct {
	Weekday      int     `json:"weekday"`
	DayName      string  `json:"day_name"`
	Transactions int     `json:"transactions"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgOrder     float64 `json:"avg_order_value"`
}

// BusinessHealth is the executive summary card set.
type BusinessHealth struct {
	TotalRevenue    float64 `json:"total_revenue"`
	Transactions    int     `json:"transactions"`
	UniqueCustomers int     `json:"unique_customers"`
	AvgOrder        float64 `json:"avg_order_value"`
	YoYGrowth       float64 `json:"yoy_growth"`
	RetentionRate   float64 `json:"retention_rate"`
	AvgDeliveryDays float64 `json:"avg_delivery_days"`
	OnTimePct       float64 `json:"on_time_pct"`
	ReturnRate      float64 `json:"return_rate"`
	TopCategory     string  `json:"top_category"`
}
