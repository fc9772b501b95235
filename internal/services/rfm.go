package services

import (
	"slices"
	"sort"
	"strings"

	"ecomdash/internal/models"
)

// Segment labels in display order.
var SegmentOrder = []string{"Champions", "Loyal Customers", "Potential Loyalists", "At Risk", "Lost"}

// BuildRFM derives one recency/frequency/monetary profile per customer.
//
// The reference date is the latest order date plus one day, so recency is
// never negative. Each metric is scored 1-4 by equal-population quartile
// binning over the customer population: recency inverted (most recent gets
// 4), frequency over a stable rank to break ties, monetary over raw values
// with duplicate quantile edges collapsed. The combined score (3-12) maps
// to a segment through fixed thresholds.
func BuildRFM(data []models.Transaction) []models.RFMProfile {
	if len(data) == 0 {
		return []models.RFMProfile{}
	}

	type accum struct {
		last  int64 // unix seconds of the latest order
		count int
		total float64
	}

	byCustomer := make(map[string]*accum)
	var maxDate int64

	for _, tx := range data {
		ts := tx.OrderDate.Unix()
		if ts > maxDate {
			maxDate = ts
		}

		acc := byCustomer[tx.CustomerID]
		if acc == nil {
			acc = &accum{}
			byCustomer[tx.CustomerID] = acc
		}
		if ts > acc.last {
			acc.last = ts
		}
		acc.count++
		acc.total += tx.FinalAmount
	}

	const daySeconds = 24 * 60 * 60
	referenceDate := maxDate + daySeconds

	profiles := make([]models.RFMProfile, 0, len(byCustomer))
	for id, acc := range byCustomer {
		profiles = append(profiles, models.RFMProfile{
			CustomerID: id,
			Recency:    int((referenceDate - acc.last) / daySeconds),
			Frequency:  acc.count,
			Monetary:   acc.total,
		})
	}

	// Sorting by customer id fixes the tie-break order for the frequency
	// rank, so identical inputs always score identically.
	slices.SortFunc(profiles, func(a, b models.RFMProfile) int {
		return strings.Compare(a.CustomerID, b.CustomerID)
	})

	recency := make([]float64, len(profiles))
	frequency := make([]float64, len(profiles))
	monetary := make([]float64, len(profiles))
	for i, p := range profiles {
		recency[i] = float64(p.Recency)
		frequency[i] = float64(p.Frequency)
		monetary[i] = float64(p.Monetary)
	}

	rScores := quartileScores(recency, true)
	fScores := quartileScores(stableRank(frequency), false)
	mScores := quartileScores(monetary, false)

	for i := range profiles {
		profiles[i].RScore = rScores[i]
		profiles[i].FScore = fScores[i]
		profiles[i].MScore = mScores[i]
		profiles[i].RFMScore = rScores[i] + fScores[i] + mScores[i]
		profiles[i].Segment = segmentForScore(profiles[i].RFMScore)
	}

	return profiles
}

func segmentForScore(score int) string {
	switch {
	case score >= 10:
		return "Champions"
	case score >= 8:
		return "Loyal Customers"
	case score >= 6:
		return "Potential Loyalists"
	case score >= 4:
		return "At Risk"
	default:
		return "Lost"
	}
}

// quartileScores assigns 1-4 by equal-population binning. Duplicate bin
// edges collapse, which shrinks the score range instead of failing when the
// metric has too few distinct values. Inverted scoring gives the lowest
// bin the highest score.
func quartileScores(values []float64, inverted bool) []int {
	scores := make([]int, len(values))
	if len(values) == 0 {
		return scores
	}

	edges := quantileEdges(values, 4)
	bins := len(edges) - 1
	if bins < 1 {
		for i := range scores {
			scores[i] = 1
		}
		return scores
	}

	for i, v := range values {
		bin := binFor(edges, v)
		if inverted {
			scores[i] = bins + 1 - bin
		} else {
			scores[i] = bin
		}
	}
	return scores
}

// quantileEdges computes q+1 linearly interpolated quantile boundaries over
// the values, with duplicate edges collapsed.
func quantileEdges(values []float64, q int) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	edges := make([]float64, 0, q+1)
	for i := 0; i <= q; i++ {
		pos := float64(i) * float64(n-1) / float64(q)
		lo := int(pos)
		frac := pos - float64(lo)

		edge := sorted[lo]
		if frac > 0 && lo+1 < n {
			edge += frac * (sorted[lo+1] - sorted[lo])
		}

		if len(edges) == 0 || edge > edges[len(edges)-1] {
			edges = append(edges, edge)
		}
	}
	return edges
}

// binFor places v into a right-closed bin, 1-based. The lowest edge is
// inclusive; values at a boundary fall into the lower bin.
func binFor(edges []float64, v float64) int {
	for i := 1; i < len(edges)-1; i++ {
		if v <= edges[i] {
			return i
		}
	}
	return len(edges) - 1
}

// stableRank returns 1..n ranks in ascending value order with ties broken
// by position, mirroring a first-occurrence rank.
func stableRank(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	ranks := make([]float64, len(values))
	for rank, i := range idx {
		ranks[i] = float64(rank + 1)
	}
	return ranks
}

func buildSegmentSummary(profiles []models.RFMProfile) []models.SegmentSummary {
	groups := make(map[string]*models.SegmentSummary)
	var totalValue float64

	for _, p := range profiles {
		g := groups[p.Segment]
		if g == nil {
			g = &models.SegmentSummary{Segment: p.Segment}
			groups[p.Segment] = g
		}
		g.Customers++
		g.AvgRecency += float64(p.Recency)
		g.AvgFrequency += float64(p.Frequency)
		g.AvgMonetary += p.Monetary
		g.TotalValue += p.Monetary
		totalValue += p.Monetary
	}

	result := make([]models.SegmentSummary, 0, len(groups))
	for _, label := range SegmentOrder {
		g := groups[label]
		if g == nil {
			continue
		}
		n := float64(g.Customers)
		g.AvgRecency /= n
		g.AvgFrequency /= n
		g.AvgMonetary /= n
		if totalValue > 0 {
			g.RevenueShare = g.TotalValue / totalValue * 100
		}
		result = append(result, *g)
	}
	return result
}
