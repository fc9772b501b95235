package services

import "ecomdash/internal/models"

// Fast query methods - O(1) reads from the published snapshot.

func (a *Analytics) YearlyRevenue() []models.YearlyRevenue {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Yearly
}

func (a *Analytics) MonthlyPivot() []models.MonthlyCell {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.MonthlyPivot
}

func (a *Analytics) MonthlySummary() []models.MonthlySummary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.MonthlySummary
}

func (a *Analytics) WeekdayPatterns() []models.WeekdayPattern {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Weekdays
}

func (a *Analytics) BusinessHealth() models.BusinessHealth {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Health
}

func (a *Analytics) RFMProfiles() []models.RFMProfile {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Profiles
}

func (a *Analytics) SegmentSummary() []models.SegmentSummary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Segments
}

func (a *Analytics) Cohorts() []models.CohortCLV {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Cohorts
}

func (a *Analytics) CLVQuartiles() []models.CLVQuartile {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.CLVQuartiles
}

func (a *Analytics) LifecycleSegments() []models.LifecycleSegment {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Lifecycles
}

func (a *Analytics) CategoryPerformance() []models.CategoryPerformance {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Categories
}

func (a *Analytics) TopBrands(limit int) []models.BrandPerformance {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if len(a.snapshot.Brands) <= limit {
		return a.snapshot.Brands
	}
	return a.snapshot.Brands[:limit]
}

func (a *Analytics) PriceBands() []models.PriceBand {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.PriceBands
}

func (a *Analytics) DiscountBands() []models.DiscountBand {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.DiscountBands
}

func (a *Analytics) RatingBands() []models.RatingBand {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.RatingBands
}

func (a *Analytics) ProductPhases() []models.LifecyclePhase {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.ProductPhases
}

func (a *Analytics) PaymentTrends() []models.PaymentTrend {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Payments
}

func (a *Analytics) DeliveryPerformance() []models.DeliveryPerformance {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Deliveries
}

func (a *Analytics) Returns() []models.ReturnStats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Returns
}

func (a *Analytics) CategoryReturns() []models.CategoryReturnRate {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.CategoryReturns
}

func (a *Analytics) PrimeImpact() []models.PrimeImpact {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Prime
}

func (a *Analytics) StatePerformance() []models.StatePerformance {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.States
}

func (a *Analytics) TierSummary() []models.TierSummary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Tiers
}

func (a *Analytics) FestivalImpact() []models.FestivalImpact {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Festivals
}

func (a *Analytics) FestivalSplit() models.FestivalSplit {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.FestivalSplit
}

func (a *Analytics) SlowestStates(limit int) []models.StateDelivery {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if len(a.snapshot.SlowestStates) <= limit {
		return a.snapshot.SlowestStates
	}
	return a.snapshot.SlowestStates[:limit]
}

func (a *Analytics) SnapshotID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.SnapshotID
}
