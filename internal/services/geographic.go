package services

import (
	"slices"
	"strings"

	"ecomdash/internal/models"
)

// Market tier membership by state. States in neither list count as Rural.
var (
	metroStates = []string{
		"Maharashtra", "Delhi", "Karnataka", "Tamil Nadu", "West Bengal",
		"Gujarat", "Rajasthan", "Uttar Pradesh",
	}
	tier1States = []string{
		"Punjab", "Haryana", "Telangana", "Andhra Pradesh", "Madhya Pradesh",
	}
	tier2States = []string{
		"Jharkhand", "Chhattisgarh", "Odisha", "Assam", "Bihar",
		"Uttarakhand", "Himachal Pradesh",
	}
)

func tierFor(state string) string {
	switch {
	case slices.Contains(metroStates, state):
		return "Metro"
	case slices.Contains(tier1States, state):
		return "Tier-1"
	case slices.Contains(tier2States, state):
		return "Tier-2"
	default:
		return "Rural"
	}
}

func buildStatePerformance(data []models.Transaction) []models.StatePerformance {
	type accum struct {
		perf      models.StatePerformance
		customers map[string]struct{}
	}
	groups := make(map[string]*accum)

	for _, tx := range data {
		acc := groups[tx.CustomerState]
		if acc == nil {
			acc = &accum{
				perf: models.StatePerformance{
					State: tx.CustomerState,
					Tier:  tierFor(tx.CustomerState),
				},
				customers: make(map[string]struct{}),
			}
			groups[tx.CustomerState] = acc
		}
		acc.perf.TotalRevenue += tx.FinalAmount
		acc.perf.Transactions++
		acc.customers[tx.CustomerID] = struct{}{}
	}

	result := make([]models.StatePerformance, 0, len(groups))
	for _, acc := range groups {
		acc.perf.UniqueCustomers = len(acc.customers)
		acc.perf.AvgOrder = acc.perf.TotalRevenue / float64(acc.perf.Transactions)
		result = append(result, acc.perf)
	}
	slices.SortFunc(result, func(a, b models.StatePerformance) int {
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

var tierOrder = []string{"Metro", "Tier-1", "Tier-2", "Rural"}

func buildTierSummary(states []models.StatePerformance) []models.TierSummary {
	groups := make(map[string]*models.TierSummary)
	var totalRevenue float64

	for _, st := range states {
		g := groups[st.Tier]
		if g == nil {
			g = &models.TierSummary{Tier: st.Tier}
			groups[st.Tier] = g
		}
		g.TotalRevenue += st.TotalRevenue
		g.Transactions += st.Transactions
		g.UniqueCustomers += st.UniqueCustomers
		totalRevenue += st.TotalRevenue
	}

	result := make([]models.TierSummary, 0, len(groups))
	for _, tier := range tierOrder {
		g := groups[tier]
		if g == nil {
			continue
		}
		if g.Transactions > 0 {
			g.AvgOrder = g.TotalRevenue / float64(g.Transactions)
		}
		if totalRevenue > 0 {
			g.RevenueShare = g.TotalRevenue / totalRevenue * 100
		}
		result = append(result, *g)
	}
	return result
}

func buildFestivalImpact(data []models.Transaction) ([]models.FestivalImpact, models.FestivalSplit) {
	type accum struct {
		perf   models.FestivalImpact
		rating float64
	}
	groups := make(map[string]*accum)
	var split models.FestivalSplit

	for _, tx := range data {
		if tx.IsFestivalSale {
			split.FestivalRevenue += tx.FinalAmount
		} else {
			split.NonFestivalRevenue += tx.FinalAmount
		}

		if !tx.IsFestivalSale || tx.FestivalName == "" {
			continue
		}
		acc := groups[tx.FestivalName]
		if acc == nil {
			acc = &accum{perf: models.FestivalImpact{Festival: tx.FestivalName}}
			groups[tx.FestivalName] = acc
		}
		acc.perf.TotalRevenue += tx.FinalAmount
		acc.perf.Transactions++
		acc.rating += tx.CustomerRating
	}

	if total := split.FestivalRevenue + split.NonFestivalRevenue; total > 0 {
		split.FestivalPct = split.FestivalRevenue / total * 100
	}

	result := make([]models.FestivalImpact, 0, len(groups))
	for _, acc := range groups {
		n := float64(acc.perf.Transactions)
		acc.perf.AvgOrder = acc.perf.TotalRevenue / n
		acc.perf.AvgRating = acc.rating / n
		result = append(result, acc.perf)
	}
	slices.SortFunc(result, func(a, b models.FestivalImpact) int {
		if a.TotalRevenue > b.TotalRevenue {
			return -1
		}
		if a.TotalRevenue < b.TotalRevenue {
			return 1
		}
		return strings.Compare(a.Festival, b.Festival)
	})
	return result, split
}

func buildSlowestStates(data []models.Transaction) []models.StateDelivery {
	type accum struct {
		days   int
		orders int
	}
	groups := make(map[string]*accum)

	for _, tx := range data {
		acc := groups[tx.CustomerState]
		if acc == nil {
			acc = &accum{}
			groups[tx.CustomerState] = acc
		}
		acc.days += tx.DeliveryDays
		acc.orders++
	}

	result := make([]models.StateDelivery, 0, len(groups))
	for state, acc := range groups {
		result = append(result, models.StateDelivery{
			State:   state,
			AvgDays: float64(acc.days) / float64(acc.orders),
			Orders:  acc.orders,
		})
	}
	slices.SortFunc(result, func(a, b models.StateDelivery) int {
		if a.AvgDays > b.AvgDays {
			return -1
		}
		if a.AvgDays < b.AvgDays {
			return 1
		}
		return strings.Compare(a.State, b.State)
	})
	return result
}
