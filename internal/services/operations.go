package services

import (
	"slices"
	"strings"

	"ecomdash/internal/models"
)

func buildPaymentTrends(data []models.Transaction) []models.PaymentTrend {
	type key struct {
		year   int
		method string
	}
	groups := make(map[key]*models.PaymentTrend)
	yearTotals := make(map[int]int)

	for _, tx := range data {
		k := key{tx.OrderDate.Year(), tx.PaymentMethod}
		g := groups[k]
		if g == nil {
			g = &models.PaymentTrend{Year: k.year, PaymentMethod: k.method}
			groups[k] = g
		}
		g.Transactions++
		g.TotalValue += tx.FinalAmount
		yearTotals[k.year]++
	}

	result := make([]models.PaymentTrend, 0, len(groups))
	for k, g := range groups {
		if total := yearTotals[k.year]; total > 0 {
			g.ShareOfYear = float64(g.Transactions) / float64(total) * 100
		}
		result = append(result, *g)
	}
	slices.SortFunc(result, func(a, b models.PaymentTrend) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return strings.Compare(a.PaymentMethod, b.PaymentMethod)
	})
	return result
}

func buildDeliveryPerformance(data []models.Transaction) []models.DeliveryPerformance {
	type accum struct {
		perf          models.DeliveryPerformance
		days          int
		rating        float64
		within3       int
		within7       int
		haveFirstDays bool
	}
	groups := make(map[string]*accum)

	for _, tx := range data {
		acc := groups[tx.DeliveryType]
		if acc == nil {
			acc = &accum{perf: models.DeliveryPerformance{DeliveryType: tx.DeliveryType}}
			groups[tx.DeliveryType] = acc
		}
		acc.perf.Orders++
		acc.days += tx.DeliveryDays
		acc.rating += tx.CustomerRating
		if tx.DeliveryDays <= 3 {
			acc.within3++
		}
		if tx.DeliveryDays <= 7 {
			acc.within7++
		}
		if !acc.haveFirstDays || tx.DeliveryDays < acc.perf.MinDays {
			acc.perf.MinDays = tx.DeliveryDays
		}
		if tx.DeliveryDays > acc.perf.MaxDays {
			acc.perf.MaxDays = tx.DeliveryDays
		}
		acc.haveFirstDays = true
	}

	result := make([]models.DeliveryPerformance, 0, len(groups))
	for _, acc := range groups {
		n := float64(acc.perf.Orders)
		acc.perf.AvgDays = float64(acc.days) / n
		acc.perf.AvgRating = acc.rating / n
		acc.perf.OnTime3Pct = float64(acc.within3) / n * 100
		acc.perf.OnTime7Pct = float64(acc.within7) / n * 100
		result = append(result, acc.perf)
	}
	slices.SortFunc(result, func(a, b models.DeliveryPerformance) int {
		return strings.Compare(a.DeliveryType, b.DeliveryType)
	})
	return result
}

func buildReturns(data []models.Transaction) ([]models.ReturnStats, []models.CategoryReturnRate) {
	statusGroups := make(map[string]*models.ReturnStats)
	statusRating := make(map[string]float64)
	catTotals := make(map[string]int)
	catReturned := make(map[string]int)

	for _, tx := range data {
		g := statusGroups[tx.ReturnStatus]
		if g == nil {
			g = &models.ReturnStats{Status: tx.ReturnStatus}
			statusGroups[tx.ReturnStatus] = g
		}
		g.Transactions++
		statusRating[tx.ReturnStatus] += tx.CustomerRating

		catTotals[tx.Category]++
		if tx.Returned() {
			catReturned[tx.Category]++
		}
	}

	stats := make([]models.ReturnStats, 0, len(statusGroups))
	for status, g := range statusGroups {
		n := float64(g.Transactions)
		g.Share = n / float64(len(data)) * 100
		g.AvgRating = statusRating[status] / n
		stats = append(stats, *g)
	}
	slices.SortFunc(stats, func(a, b models.ReturnStats) int {
		return b.Transactions - a.Transactions
	})

	catRates := make([]models.CategoryReturnRate, 0, len(catTotals))
	for category, total := range catTotals {
		catRates = append(catRates, models.CategoryReturnRate{
			Category:   category,
			Returned:   catReturned[category],
			Total:      total,
			ReturnRate: float64(catReturned[category]) / float64(total) * 100,
		})
	}
	slices.SortFunc(catRates, func(a, b models.CategoryReturnRate) int {
		if a.ReturnRate > b.ReturnRate {
			return -1
		}
		if a.ReturnRate < b.ReturnRate {
			return 1
		}
		return strings.Compare(a.Category, b.Category)
	})

	return stats, catRates
}

func buildPrimeImpact(data []models.Transaction) []models.PrimeImpact {
	type accum struct {
		perf      models.PrimeImpact
		customers map[string]struct{}
		days      int
		rating    float64
		returned  int
	}
	groups := make(map[bool]*accum)

	for _, tx := range data {
		acc := groups[tx.IsPrimeMember]
		if acc == nil {
			membership := "Non-Prime"
			if tx.IsPrimeMember {
				membership = "Prime"
			}
			acc = &accum{
				perf:      models.PrimeImpact{Membership: membership},
				customers: make(map[string]struct{}),
			}
			groups[tx.IsPrimeMember] = acc
		}
		acc.perf.Transactions++
		acc.perf.TotalRevenue += tx.FinalAmount
		acc.customers[tx.CustomerID] = struct{}{}
		acc.days += tx.DeliveryDays
		acc.rating += tx.CustomerRating
		if tx.Returned() {
			acc.returned++
		}
	}

	result := make([]models.PrimeImpact, 0, len(groups))
	for _, acc := range groups {
		n := float64(acc.perf.Transactions)
		acc.perf.UniqueCustomers = len(acc.customers)
		acc.perf.AvgOrder = acc.perf.TotalRevenue / n
		acc.perf.AvgDeliveryDays = float64(acc.days) / n
		acc.perf.AvgRating = acc.rating / n
		acc.perf.ReturnRate = float64(acc.returned) / n * 100
		result = append(result, acc.perf)
	}
	slices.SortFunc(result, func(a, b models.PrimeImpact) int {
		return strings.Compare(b.Membership, a.Membership) // Prime first
	})
	return result
}
