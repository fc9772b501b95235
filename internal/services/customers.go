package services

import (
	"slices"
	"time"

	"ecomdash/internal/models"
)

type customerValue struct {
	id        string
	firstYear int
	purchases int
	total     float64
}

func accumulateCustomers(data []models.Transaction) []customerValue {
	type accum struct {
		first     time.Time
		purchases int
		total     float64
	}
	byCustomer := make(map[string]*accum)

	for _, tx := range data {
		acc := byCustomer[tx.CustomerID]
		if acc == nil {
			acc = &accum{first: tx.OrderDate}
			byCustomer[tx.CustomerID] = acc
		}
		if tx.OrderDate.Before(acc.first) {
			acc.first = tx.OrderDate
		}
		acc.purchases++
		acc.total += tx.FinalAmount
	}

	result := make([]customerValue, 0, len(byCustomer))
	for id, acc := range byCustomer {
		result = append(result, customerValue{
			id:        id,
			firstYear: acc.first.Year(),
			purchases: acc.purchases,
			total:     acc.total,
		})
	}
	slices.SortFunc(result, func(a, b customerValue) int {
		if a.id < b.id {
			return -1
		}
		if a.id > b.id {
			return 1
		}
		return 0
	})
	return result
}

func buildCohorts(data []models.Transaction) []models.CohortCLV {
	groups := make(map[int]*models.CohortCLV)

	for _, cv := range accumulateCustomers(data) {
		g := groups[cv.firstYear]
		if g == nil {
			g = &models.CohortCLV{CohortYear: cv.firstYear}
			groups[cv.firstYear] = g
		}
		g.Customers++
		g.TotalCLV += cv.total
	}

	result := make([]models.CohortCLV, 0, len(groups))
	for _, g := range groups {
		if g.Customers > 0 {
			g.AvgCLV = g.TotalCLV / float64(g.Customers)
		}
		result = append(result, *g)
	}
	slices.SortFunc(result, func(a, b models.CohortCLV) int {
		return a.CohortYear - b.CohortYear
	})
	return result
}

var clvQuartileLabels = []string{"Bottom 25%", "25-50%", "50-75%", "Top 25%"}

func buildCLVQuartiles(data []models.Transaction) []models.CLVQuartile {
	customers := accumulateCustomers(data)
	if len(customers) == 0 {
		return []models.CLVQuartile{}
	}

	values := make([]float64, len(customers))
	for i, cv := range customers {
		values[i] = cv.total
	}
	scores := quartileScores(values, false)

	result := make([]models.CLVQuartile, len(clvQuartileLabels))
	for i, label := range clvQuartileLabels {
		result[i].Label = label
	}
	for i, cv := range customers {
		q := &result[scores[i]-1]
		q.Customers++
		q.TotalValue += cv.total
	}
	return result
}

// lifecycleFor buckets a customer by purchase count.
func lifecycleFor(purchases int) string {
	switch {
	case purchases == 1:
		return "One-time Buyer"
	case purchases <= 3:
		return "Occasional Buyer"
	case purchases <= 10:
		return "Regular Buyer"
	default:
		return "Loyal Customer"
	}
}

var lifecycleOrder = []string{"One-time Buyer", "Occasional Buyer", "Regular Buyer", "Loyal Customer"}

func buildLifecycleSegments(data []models.Transaction) []models.LifecycleSegment {
	groups := make(map[string]*models.LifecycleSegment)

	for _, cv := range accumulateCustomers(data) {
		label := lifecycleFor(cv.purchases)
		g := groups[label]
		if g == nil {
			g = &models.LifecycleSegment{Lifecycle: label}
			groups[label] = g
		}
		g.Customers++
		g.TotalValue += cv.total
	}

	result := make([]models.LifecycleSegment, 0, len(groups))
	for _, label := range lifecycleOrder {
		g := groups[label]
		if g == nil {
			continue
		}
		g.AvgValue = g.TotalValue / float64(g.Customers)
		result = append(result, *g)
	}
	return result
}
