package services

import (
	"slices"
	"time"

	"ecomdash/internal/models"
)

func buildYearlyRevenue(data []models.Transaction) []models.YearlyRevenue {
	groups := make(map[int]*models.YearlyRevenue)

	for _, tx := range data {
		year := tx.OrderDate.Year()
		g := groups[year]
		if g == nil {
			g = &models.YearlyRevenue{Year: year}
			groups[year] = g
		}
		g.TotalRevenue += tx.FinalAmount
		g.Transactions++
	}

	result := make([]models.YearlyRevenue, 0, len(groups))
	for _, g := range groups {
		if g.Transactions > 0 {
			g.AvgOrder = g.TotalRevenue / float64(g.Transactions)
		}
		result = append(result, *g)
	}
	slices.SortFunc(result, func(a, b models.YearlyRevenue) int {
		return a.Year - b.Year
	})

	// Year-over-year growth; the first year stays at zero.
	for i := 1; i < len(result); i++ {
		prev := result[i-1].TotalRevenue
		if prev > 0 {
			result[i].GrowthRate = (result[i].TotalRevenue - prev) / prev * 100
		}
	}

	return result
}

func buildMonthlyPivot(data []models.Transaction) []models.MonthlyCell {
	type key struct {
		year  int
		month int
	}
	groups := make(map[key]float64)

	for _, tx := range data {
		k := key{tx.OrderDate.Year(), int(tx.OrderDate.Month())}
		groups[k] += tx.FinalAmount
	}

	result := make([]models.MonthlyCell, 0, len(groups))
	for k, revenue := range groups {
		result = append(result, models.MonthlyCell{Year: k.year, Month: k.month, Revenue: revenue})
	}
	slices.SortFunc(result, func(a, b models.MonthlyCell) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Month - b.Month
	})
	return result
}

func buildMonthlySummary(data []models.Transaction) []models.MonthlySummary {
	groups := make(map[int]*models.MonthlySummary)

	for _, tx := range data {
		month := int(tx.OrderDate.Month())
		g := groups[month]
		if g == nil {
			g = &models.MonthlySummary{
				Month:     month,
				MonthName: time.Month(month).String(),
			}
			groups[month] = g
		}
		g.TotalRevenue += tx.FinalAmount
		g.Transactions++
	}

	result := make([]models.MonthlySummary, 0, len(groups))
	for _, g := range groups {
		if g.Transactions > 0 {
			g.AvgOrder = g.TotalRevenue / float64(g.Transactions)
		}
		result = append(result, *g)
	}
	slices.SortFunc(result, func(a, b models.MonthlySummary) int {
		return a.Month - b.Month
	})

	// Peak months sit at or above the 75th percentile of monthly revenue.
	if len(result) > 0 {
		revenues := make([]float64, len(result))
		for i, m := range result {
			revenues[i] = m.TotalRevenue
		}
		threshold := percentile(revenues, 0.75)
		for i := range result {
			result[i].Peak = result[i].TotalRevenue >= threshold
		}
	}

	return result
}

// percentile computes the p-th quantile with linear interpolation.
func percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	slices.Sort(sorted)

	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func buildWeekdayPatterns(data []models.Transaction) []models.WeekdayPattern {
	groups := make(map[int]*models.WeekdayPattern)

	for _, tx := range data {
		wd := int(tx.OrderDate.Weekday())
		g := groups[wd]
		if g == nil {
			g = &models.WeekdayPattern{
				Weekday: wd,
				DayName: tx.OrderDate.Weekday().String(),
			}
			groups[wd] = g
		}
		g.Transactions++
		g.TotalRevenue += tx.FinalAmount
	}

	result := make([]models.WeekdayPattern, 0, len(groups))
	for _, g := range groups {
		if g.Transactions > 0 {
			g.AvgOrder = g.TotalRevenue / float64(g.Transactions)
		}
		result = append(result, *g)
	}
	slices.SortFunc(result, func(a, b models.WeekdayPattern) int {
		return a.Weekday - b.Weekday
	})
	return result
}

func buildBusinessHealth(data []models.Transaction) models.BusinessHealth {
	var health models.BusinessHealth
	if len(data) == 0 {
		return health
	}

	customers := make(map[string]int)
	categoryRevenue := make(map[string]float64)
	yearRevenue := make(map[int]float64)
	var deliveryDays, onTime, returned int

	for _, tx := range data {
		health.TotalRevenue += tx.FinalAmount
		health.Transactions++
		customers[tx.CustomerID]++
		categoryRevenue[tx.Category] += tx.FinalAmount
		yearRevenue[tx.OrderDate.Year()] += tx.FinalAmount

		deliveryDays += tx.DeliveryDays
		if tx.DeliveryDays <= 7 {
			onTime++
		}
		if tx.Returned() {
			returned++
		}
	}

	total := float64(health.Transactions)
	health.UniqueCustomers = len(customers)
	health.AvgOrder = health.TotalRevenue / total
	health.AvgDeliveryDays = float64(deliveryDays) / total
	health.OnTimePct = float64(onTime) / total * 100
	health.ReturnRate = float64(returned) / total * 100

	repeat := 0
	for _, n := range customers {
		if n > 1 {
			repeat++
		}
	}
	health.RetentionRate = float64(repeat) / float64(len(customers)) * 100

	var latest, previous int
	for year := range yearRevenue {
		if year > latest {
			previous = latest
			latest = year
		} else if year > previous {
			previous = year
		}
	}
	if previous > 0 && yearRevenue[previous] > 0 {
		health.YoYGrowth = (yearRevenue[latest] - yearRevenue[previous]) / yearRevenue[previous] * 100
	}

	var topRevenue float64
	for category, revenue := range categoryRevenue {
		if revenue > topRevenue || (revenue == topRevenue && category < health.TopCategory) {
			topRevenue = revenue
			health.TopCategory = category
		}
	}

	return health
}
