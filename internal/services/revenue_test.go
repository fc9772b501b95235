package services

import (
	"testing"
	"time"

	"ecomdash/internal/models"
)

func txOn(date time.Time, customer string, amount float64) models.Transaction {
	return models.Transaction{
		OrderDate:   date,
		CustomerID:  customer,
		FinalAmount: amount,
	}
}

func TestBuildYearlyRevenue(t *testing.T) {
	data := []models.Transaction{
		txOn(time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), "C1", 100),
		txOn(time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC), "C1", 300),
		txOn(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), "C2", 600),
	}

	result := buildYearlyRevenue(data)

	if len(result) != 2 {
		t.Fatalf("expected 2 years, got %d", len(result))
	}
	if result[0].Year != 2022 || result[1].Year != 2023 {
		t.Errorf("years should be sorted ascending, got %d, %d", result[0].Year, result[1].Year)
	}
	if result[0].TotalRevenue != 400 {
		t.Errorf("2022 revenue = %v, want 400", result[0].TotalRevenue)
	}
	if result[0].AvgOrder != 200 {
		t.Errorf("2022 avg order = %v, want 200", result[0].AvgOrder)
	}
	if result[0].GrowthRate != 0 {
		t.Errorf("first year growth should be 0, got %v", result[0].GrowthRate)
	}
	// 400 -> 600 is +50%
	if result[1].GrowthRate != 50 {
		t.Errorf("2023 growth = %v, want 50", result[1].GrowthRate)
	}
}

func TestBuildMonthlyPivot(t *testing.T) {
	data := []models.Transaction{
		txOn(time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), "C1", 100),
		txOn(time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC), "C1", 50),
		txOn(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), "C2", 200),
		txOn(time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC), "C2", 75),
	}

	result := buildMonthlyPivot(data)

	if len(result) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(result))
	}
	// Sorted by year then month.
	if result[0].Year != 2022 || result[0].Month != 12 {
		t.Errorf("first cell should be 2022-12, got %d-%d", result[0].Year, result[0].Month)
	}
	if result[1].Revenue != 150 {
		t.Errorf("2023-01 revenue = %v, want 150", result[1].Revenue)
	}
}

func TestBuildMonthlySummary_PeakMonths(t *testing.T) {
	// January dominates; it must be the only peak of the four months.
	data := []models.Transaction{
		txOn(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "C1", 1000),
		txOn(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), "C1", 100),
		txOn(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), "C1", 100),
		txOn(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), "C1", 100),
	}

	result := buildMonthlySummary(data)

	if len(result) != 4 {
		t.Fatalf("expected 4 months, got %d", len(result))
	}

	peaks := 0
	for _, m := range result {
		if m.Peak {
			peaks++
			if m.Month != 1 {
				t.Errorf("month %d should not be a peak", m.Month)
			}
		}
	}
	if peaks != 1 {
		t.Errorf("expected exactly 1 peak month, got %d", peaks)
	}
	if result[0].MonthName != "January" {
		t.Errorf("MonthName = %q, want January", result[0].MonthName)
	}
}

func TestBuildWeekdayPatterns(t *testing.T) {
	// 2023-06-05 is a Monday, 2023-06-11 a Sunday.
	data := []models.Transaction{
		txOn(time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC), "C1", 100),
		txOn(time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC), "C1", 200),
		txOn(time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC), "C2", 50),
	}

	result := buildWeekdayPatterns(data)

	if len(result) != 2 {
		t.Fatalf("expected 2 weekdays, got %d", len(result))
	}
	// Sunday is weekday 0, sorted first.
	if result[0].DayName != "Sunday" {
		t.Errorf("first weekday should be Sunday, got %q", result[0].DayName)
	}
	if result[1].DayName != "Monday" || result[1].TotalRevenue != 300 {
		t.Errorf("Monday revenue = %v, want 300", result[1].TotalRevenue)
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"median of odd set", []float64{1, 2, 3}, 0.5, 2},
		{"median interpolated", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p75 of quartet", []float64{10, 20, 30, 40}, 0.75, 32.5},
		{"single value", []float64{7}, 0.75, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentile(tt.values, tt.p); got != tt.want {
				t.Errorf("percentile(%v, %v) = %v, want %v", tt.values, tt.p, got, tt.want)
			}
		})
	}
}

func TestBuildBusinessHealth(t *testing.T) {
	data := []models.Transaction{
		{
			OrderDate:    time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC),
			CustomerID:   "C1",
			Category:     "Electronics",
			FinalAmount:  100,
			DeliveryDays: 3,
			ReturnStatus: "Delivered",
		},
		{
			OrderDate:    time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			CustomerID:   "C1",
			Category:     "Electronics",
			FinalAmount:  200,
			DeliveryDays: 9,
			ReturnStatus: "Returned",
		},
		{
			OrderDate:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			CustomerID:   "C2",
			Category:     "Fashion",
			FinalAmount:  50,
			DeliveryDays: 5,
			ReturnStatus: "Delivered",
		},
	}

	health := buildBusinessHealth(data)

	if health.TotalRevenue != 350 {
		t.Errorf("TotalRevenue = %v, want 350", health.TotalRevenue)
	}
	if health.UniqueCustomers != 2 {
		t.Errorf("UniqueCustomers = %d, want 2", health.UniqueCustomers)
	}
	// C1 bought twice, C2 once: 50% retention.
	if health.RetentionRate != 50 {
		t.Errorf("RetentionRate = %v, want 50", health.RetentionRate)
	}
	// 2022: 100, 2023: 250 -> +150%
	if health.YoYGrowth != 150 {
		t.Errorf("YoYGrowth = %v, want 150", health.YoYGrowth)
	}
	// 2 of 3 orders within 7 days.
	if want := 2.0 / 3.0 * 100; health.OnTimePct < want-0.001 || health.OnTimePct > want+0.001 {
		t.Errorf("OnTimePct = %v, want %v", health.OnTimePct, want)
	}
	if health.TopCategory != "Electronics" {
		t.Errorf("TopCategory = %q, want Electronics", health.TopCategory)
	}
}

func TestBuildBusinessHealth_Empty(t *testing.T) {
	health := buildBusinessHealth(nil)
	if health.TotalRevenue != 0 || health.Transactions != 0 {
		t.Errorf("empty data should produce zero health, got %+v", health)
	}
}
