package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomdash/internal/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func order(customer string, d int, amount float64) models.Transaction {
	return models.Transaction{
		TransactionID: customer + "-" + time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC).Format("20060102"),
		OrderDate:     day(d),
		CustomerID:    customer,
		FinalAmount:   amount,
	}
}

// Four customers whose recency, frequency and monetary all rank the same
// way, so every quartile lands cleanly.
func tieredCustomers() []models.Transaction {
	return []models.Transaction{
		// A: 4 orders, latest day 10, total 4000
		order("CUST-A", 2, 1000), order("CUST-A", 5, 1000),
		order("CUST-A", 8, 1000), order("CUST-A", 10, 1000),
		// B: 3 orders, latest day 7, total 2100
		order("CUST-B", 3, 700), order("CUST-B", 5, 700), order("CUST-B", 7, 700),
		// C: 2 orders, latest day 4, total 600
		order("CUST-C", 2, 300), order("CUST-C", 4, 300),
		// D: 1 order, day 1, total 50
		order("CUST-D", 1, 50),
	}
}

func profileByID(t *testing.T, profiles []models.RFMProfile, id string) models.RFMProfile {
	t.Helper()
	for _, p := range profiles {
		if p.CustomerID == id {
			return p
		}
	}
	t.Fatalf("no profile for customer %s", id)
	return models.RFMProfile{}
}

func TestBuildRFM_OneProfilePerCustomer(t *testing.T) {
	profiles := BuildRFM(tieredCustomers())

	require.Len(t, profiles, 4)

	seen := make(map[string]bool)
	for _, p := range profiles {
		assert.False(t, seen[p.CustomerID], "customer %s appears twice", p.CustomerID)
		seen[p.CustomerID] = true
	}
}

func TestBuildRFM_MetricValues(t *testing.T) {
	profiles := BuildRFM(tieredCustomers())

	// Reference date is the day after the latest order (day 10), so the
	// most recent buyer has recency 1, never 0.
	tests := []struct {
		id        string
		recency   int
		frequency int
		monetary  float64
	}{
		{"CUST-A", 1, 4, 4000},
		{"CUST-B", 4, 3, 2100},
		{"CUST-C", 7, 2, 600},
		{"CUST-D", 10, 1, 50},
	}

	for _, tt := range tests {
		p := profileByID(t, profiles, tt.id)
		assert.Equal(t, tt.recency, p.Recency, "%s recency", tt.id)
		assert.Equal(t, tt.frequency, p.Frequency, "%s frequency", tt.id)
		assert.InDelta(t, tt.monetary, p.Monetary, 0.001, "%s monetary", tt.id)
	}
}

func TestBuildRFM_ScoresAndSegments(t *testing.T) {
	profiles := BuildRFM(tieredCustomers())

	tests := []struct {
		id      string
		r, f, m int
		score   int
		segment string
	}{
		{"CUST-A", 4, 4, 4, 12, "Champions"},
		{"CUST-B", 3, 3, 3, 9, "Loyal Customers"},
		{"CUST-C", 2, 2, 2, 6, "Potential Loyalists"},
		{"CUST-D", 1, 1, 1, 3, "Lost"},
	}

	for _, tt := range tests {
		p := profileByID(t, profiles, tt.id)
		assert.Equal(t, tt.r, p.RScore, "%s r score", tt.id)
		assert.Equal(t, tt.f, p.FScore, "%s f score", tt.id)
		assert.Equal(t, tt.m, p.MScore, "%s m score", tt.id)
		assert.Equal(t, tt.score, p.RFMScore, "%s combined", tt.id)
		assert.Equal(t, tt.segment, p.Segment, "%s segment", tt.id)
	}
}

func TestBuildRFM_RanksHeavyRecentBuyerHighest(t *testing.T) {
	// Three customers, fewer than one per quartile: a recent high-volume
	// buyer must dominate on every dimension, a long-dormant one-off buyer
	// must land at the bottom of recency.
	data := []models.Transaction{
		// A: one order of 100, ten days before the reference date
		order("CUST-A", 191, 100),
		// B: five orders totaling 5000, latest sets the reference date
		order("CUST-B", 196, 1000), order("CUST-B", 197, 1000),
		order("CUST-B", 198, 1000), order("CUST-B", 199, 1000),
		order("CUST-B", 200, 1000),
		// C: one order of 50, two hundred days dormant
		order("CUST-C", 1, 50),
	}

	profiles := BuildRFM(data)
	require.Len(t, profiles, 3)

	a := profileByID(t, profiles, "CUST-A")
	b := profileByID(t, profiles, "CUST-B")
	c := profileByID(t, profiles, "CUST-C")

	assert.Equal(t, 3, a.RScore, "a r score")
	assert.Equal(t, 1, a.FScore, "a f score")
	assert.Equal(t, 2, a.MScore, "a m score")
	assert.Equal(t, "Potential Loyalists", a.Segment)

	assert.Equal(t, 4, b.RScore, "b r score")
	assert.Equal(t, 4, b.FScore, "b f score")
	assert.Equal(t, 4, b.MScore, "b m score")
	assert.Equal(t, "Champions", b.Segment)

	assert.Equal(t, 1, c.RScore, "c r score")
	assert.Equal(t, 2, c.FScore, "c f score")
	assert.Equal(t, 1, c.MScore, "c m score")
	assert.Equal(t, "At Risk", c.Segment)

	for _, other := range []models.RFMProfile{a, c} {
		assert.GreaterOrEqual(t, b.RScore, other.RScore, "%s r", other.CustomerID)
		assert.GreaterOrEqual(t, b.FScore, other.FScore, "%s f", other.CustomerID)
		assert.GreaterOrEqual(t, b.MScore, other.MScore, "%s m", other.CustomerID)
	}
	assert.Less(t, c.RScore, a.RScore, "dormant buyer must score lowest on recency")
	assert.Less(t, c.RScore, b.RScore, "dormant buyer must score lowest on recency")
}

func TestBuildRFM_ScoreBounds(t *testing.T) {
	profiles := BuildRFM(tieredCustomers())

	for _, p := range profiles {
		assert.GreaterOrEqual(t, p.RFMScore, 3)
		assert.LessOrEqual(t, p.RFMScore, 12)
		assert.Positive(t, p.Recency)
		assert.Equal(t, p.RScore+p.FScore+p.MScore, p.RFMScore)
	}
}

func TestBuildRFM_MonetaryQuartileBoundaries(t *testing.T) {
	// Same day, one order each: only the monetary amount separates the
	// customers, and the four distinct values must spread across all four
	// quartiles in order.
	data := []models.Transaction{
		order("CUST-1", 1, 100),
		order("CUST-2", 1, 200),
		order("CUST-3", 1, 300),
		order("CUST-4", 1, 400),
	}

	profiles := BuildRFM(data)
	require.Len(t, profiles, 4)

	for i, want := range []int{1, 2, 3, 4} {
		assert.Equal(t, want, profiles[i].MScore, "customer %s", profiles[i].CustomerID)
	}
}

func TestBuildRFM_Idempotent(t *testing.T) {
	data := tieredCustomers()

	first := BuildRFM(data)
	second := BuildRFM(data)

	require.Equal(t, first, second)
}

func TestBuildRFM_EmptyData(t *testing.T) {
	profiles := BuildRFM(nil)
	assert.Empty(t, profiles)
	assert.NotNil(t, profiles)
}

func TestSegmentForScore(t *testing.T) {
	tests := []struct {
		score   int
		segment string
	}{
		{12, "Champions"},
		{10, "Champions"},
		{9, "Loyal Customers"},
		{8, "Loyal Customers"},
		{7, "Potential Loyalists"},
		{6, "Potential Loyalists"},
		{5, "At Risk"},
		{4, "At Risk"},
		{3, "Lost"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.segment, segmentForScore(tt.score), "score %d", tt.score)
	}
}

func TestQuantileEdges_CollapsesDuplicates(t *testing.T) {
	// Heavily skewed values leave fewer than four distinct boundaries; the
	// surviving edges must stay strictly increasing.
	edges := quantileEdges([]float64{1, 1, 1, 1, 1, 100}, 4)

	for i := 1; i < len(edges); i++ {
		assert.Greater(t, edges[i], edges[i-1])
	}
}

func TestQuartileScores_AllEqualValues(t *testing.T) {
	scores := quartileScores([]float64{5, 5, 5, 5}, false)
	assert.Equal(t, []int{1, 1, 1, 1}, scores)
}

func TestStableRank_BreaksTiesByPosition(t *testing.T) {
	ranks := stableRank([]float64{2, 1, 2, 1})
	assert.Equal(t, []float64{3, 1, 4, 2}, ranks)
}

func TestBuildSegmentSummary(t *testing.T) {
	profiles := BuildRFM(tieredCustomers())
	summary := buildSegmentSummary(profiles)

	require.NotEmpty(t, summary)

	var share float64
	var customers int
	for _, s := range summary {
		share += s.RevenueShare
		customers += s.Customers
	}
	assert.InDelta(t, 100.0, share, 0.001, "revenue shares should sum to 100")
	assert.Equal(t, len(profiles), customers)

	// Display order follows SegmentOrder.
	last := -1
	for _, s := range summary {
		pos := -1
		for i, label := range SegmentOrder {
			if label == s.Segment {
				pos = i
			}
		}
		require.GreaterOrEqual(t, pos, 0)
		assert.Greater(t, pos, last, "segments out of display order")
		last = pos
	}
}
