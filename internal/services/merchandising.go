package services

import (
	"fmt"
	"slices"
	"time"

	"ecomdash/internal/models"
)

func buildCategoryPerformance(data []models.Transaction) []models.CategoryPerformance {
	type accum struct {
		perf      models.CategoryPerformance
		customers map[string]struct{}
		rating    float64
		returned  int
	}
	groups := make(map[string]*accum)
	var totalRevenue float64

	for _, tx := range data {
		acc := groups[tx.Category]
		if acc == nil {
			acc = &accum{
				perf:      models.CategoryPerformance{Category: tx.Category},
				customers: make(map[string]struct{}),
			}
			groups[tx.Category] = acc
		}
		acc.perf.TotalRevenue += tx.FinalAmount
		acc.perf.Transactions++
		acc.customers[tx.CustomerID] = struct{}{}
		acc.rating += tx.ProductRating
		if tx.Returned() {
			acc.returned++
		}
		totalRevenue += tx.FinalAmount
	}

	result := make([]models.CategoryPerformance, 0, len(groups))
	for _, acc := range groups {
		n := float64(acc.perf.Transactions)
		acc.perf.UniqueCustomers = len(acc.customers)
		acc.perf.AvgOrder = acc.perf.TotalRevenue / n
		acc.perf.AvgRating = acc.rating / n
		acc.perf.ReturnRate = float64(acc.returned) / n * 100
		if totalRevenue > 0 {
			acc.perf.MarketShare = acc.perf.TotalRevenue / totalRevenue * 100
		}
		result = append(result, acc.perf)
	}
	slices.SortFunc(result, func(a, b models.CategoryPerformance) int {
		if a.TotalRevenue > b.TotalRevenue {
			return -1
		}
		if a.TotalRevenue < b.TotalRevenue {
			return 1
		}
		return 0
	})
	return result
}

func buildBrandPerformance(data []models.Transaction) []models.BrandPerformance {
	type accum struct {
		perf   models.BrandPerformance
		rating float64
	}
	groups := make(map[string]*accum)
	var totalRevenue float64

	for _, tx := range data {
		acc := groups[tx.Brand]
		if acc == nil {
			acc = &accum{perf: models.BrandPerformance{Brand: tx.Brand}}
			groups[tx.Brand] = acc
		}
		acc.perf.TotalRevenue += tx.FinalAmount
		acc.perf.Transactions++
		acc.rating += tx.ProductRating
		totalRevenue += tx.FinalAmount
	}

	result := make([]models.BrandPerformance, 0, len(groups))
	for _, acc := range groups {
		n := float64(acc.perf.Transactions)
		acc.perf.AvgOrder = acc.perf.TotalRevenue / n
		acc.perf.AvgRating = acc.rating / n
		if totalRevenue > 0 {
			acc.perf.RevenueShare = acc.perf.TotalRevenue / totalRevenue * 100
		}
		result = append(result, acc.perf)
	}
	slices.SortFunc(result, func(a, b models.BrandPerformance) int {
		if a.TotalRevenue > b.TotalRevenue {
			return -1
		}
		if a.TotalRevenue < b.TotalRevenue {
			return 1
		}
		return 0
	})
	return result
}

const priceBandCount = 10

func buildPriceBands(data []models.Transaction) []models.PriceBand {
	if len(data) == 0 {
		return []models.PriceBand{}
	}

	minPrice, maxPrice := data[0].OriginalPrice, data[0].OriginalPrice
	for _, tx := range data {
		if tx.OriginalPrice < minPrice {
			minPrice = tx.OriginalPrice
		}
		if tx.OriginalPrice > maxPrice {
			maxPrice = tx.OriginalPrice
		}
	}

	width := (maxPrice - minPrice) / priceBandCount
	if width == 0 {
		width = 1
	}

	bands := make([]models.PriceBand, priceBandCount)
	ratings := make([]float64, priceBandCount)
	for i := range bands {
		low := minPrice + float64(i)*width
		high := low + width
		bands[i] = models.PriceBand{
			Label: fmt.Sprintf("₹%.0f-%.0f", low, high),
			Low:   low,
			High:  high,
		}
	}

	for _, tx := range data {
		i := int((tx.OriginalPrice - minPrice) / width)
		if i >= priceBandCount {
			i = priceBandCount - 1
		}
		bands[i].Transactions++
		bands[i].TotalRevenue += tx.FinalAmount
		ratings[i] += tx.ProductRating
	}

	for i := range bands {
		if bands[i].Transactions > 0 {
			bands[i].AvgRating = ratings[i] / float64(bands[i].Transactions)
		}
	}
	return bands
}

// fixedBand places v into left-open right-closed bins over the given
// edges, so a value sitting exactly on the lowest edge belongs to no band.
// Returns -1 when v falls outside every bin.
func fixedBand(edges []float64, v float64) int {
	if v <= edges[0] || v > edges[len(edges)-1] {
		return -1
	}
	for i := 1; i < len(edges); i++ {
		if v <= edges[i] {
			return i - 1
		}
	}
	return -1
}

var discountEdges = []float64{0, 10, 20, 30, 50, 100}

func buildDiscountBands(data []models.Transaction) []models.DiscountBand {
	bands := make([]models.DiscountBand, len(discountEdges)-1)
	returned := make([]int, len(bands))
	for i := range bands {
		bands[i].Label = fmt.Sprintf("%.0f-%.0f%%", discountEdges[i], discountEdges[i+1])
	}

	for _, tx := range data {
		i := fixedBand(discountEdges, tx.DiscountPct)
		if i < 0 {
			continue
		}
		bands[i].Transactions++
		bands[i].TotalRevenue += tx.FinalAmount
		if tx.Returned() {
			returned[i]++
		}
	}

	for i := range bands {
		if bands[i].Transactions > 0 {
			n := float64(bands[i].Transactions)
			bands[i].AvgOrder = bands[i].TotalRevenue / n
			bands[i].ReturnRate = float64(returned[i]) / n * 100
		}
	}
	return bands
}

var ratingEdges = []float64{0, 2, 3, 4, 4.5, 5}

func buildRatingBands(data []models.Transaction) []models.RatingBand {
	bands := make([]models.RatingBand, len(ratingEdges)-1)
	returned := make([]int, len(bands))
	for i := range bands {
		bands[i].Label = fmt.Sprintf("%.1f-%.1f", ratingEdges[i], ratingEdges[i+1])
	}

	for _, tx := range data {
		i := fixedBand(ratingEdges, tx.ProductRating)
		if i < 0 {
			continue
		}
		bands[i].Transactions++
		bands[i].TotalRevenue += tx.FinalAmount
		if tx.Returned() {
			returned[i]++
		}
	}

	for i := range bands {
		if bands[i].Transactions > 0 {
			n := float64(bands[i].Transactions)
			bands[i].AvgOrder = bands[i].TotalRevenue / n
			bands[i].ReturnRate = float64(returned[i]) / n * 100
		}
	}
	return bands
}

// phaseFor buckets a product by months between its first and last sale.
func phaseFor(months int) string {
	switch {
	case months <= 12:
		return "Launch Phase (0-12m)"
	case months <= 36:
		return "Growth Phase (12-36m)"
	case months <= 60:
		return "Maturity Phase (36-60m)"
	default:
		return "Decline Phase (60m+)"
	}
}

var phaseOrder = []string{
	"Launch Phase (0-12m)",
	"Growth Phase (12-36m)",
	"Maturity Phase (36-60m)",
	"Decline Phase (60m+)",
}

func buildProductPhases(data []models.Transaction) []models.LifecyclePhase {
	type accum struct {
		first, last time.Time
		revenue     float64
	}
	byProduct := make(map[string]*accum)

	for _, tx := range data {
		acc := byProduct[tx.ProductID]
		if acc == nil {
			acc = &accum{first: tx.OrderDate, last: tx.OrderDate}
			byProduct[tx.ProductID] = acc
		}
		if tx.OrderDate.Before(acc.first) {
			acc.first = tx.OrderDate
		}
		if tx.OrderDate.After(acc.last) {
			acc.last = tx.OrderDate
		}
		acc.revenue += tx.FinalAmount
	}

	groups := make(map[string]*models.LifecyclePhase)
	for _, acc := range byProduct {
		months := int(acc.last.Sub(acc.first).Hours() / 24 / 30)
		label := phaseFor(months)
		g := groups[label]
		if g == nil {
			g = &models.LifecyclePhase{Phase: label}
			groups[label] = g
		}
		g.Products++
		g.TotalRevenue += acc.revenue
	}

	result := make([]models.LifecyclePhase, 0, len(groups))
	for _, label := range phaseOrder {
		g := groups[label]
		if g == nil {
			continue
		}
		g.AvgRevenue = g.TotalRevenue / float64(g.Products)
		result = append(result, *g)
	}
	return result
}
