package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ecomdash/internal/errors"
	"ecomdash/internal/services"
)

const (
	maxBrands     = 20
	maxSlowStates = 10
)

var cacheHeaders = map[string]string{
	"Cache-Control": "public, max-age=300",
}

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// Revenue

func (h *APIHandlers) HandleYearlyRevenue(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.YearlyRevenue(), cacheHeaders)
}

func (h *APIHandlers) HandleMonthlyPivot(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.MonthlyPivot(), cacheHeaders)
}

func (h *APIHandlers) HandleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.MonthlySummary(), cacheHeaders)
}

func (h *APIHandlers) HandleWeekdayPatterns(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.WeekdayPatterns(), cacheHeaders)
}

func (h *APIHandlers) HandleBusinessHealth(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.BusinessHealth(), cacheHeaders)
}

// Customers

func (h *APIHandlers) HandleSegments(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.SegmentSummary(), cacheHeaders)
}

func (h *APIHandlers) HandleCohorts(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.Cohorts(), cacheHeaders)
}

func (h *APIHandlers) HandleCLVQuartiles(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.CLVQuartiles(), cacheHeaders)
}

func (h *APIHandlers) HandleLifecycles(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.LifecycleSegments(), cacheHeaders)
}

// Merchandising

func (h *APIHandlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.CategoryPerformance(), cacheHeaders)
}

func (h *APIHandlers) HandleTopBrands(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.TopBrands(maxBrands), cacheHeaders)
}

func (h *APIHandlers) HandlePriceBands(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.PriceBands(), cacheHeaders)
}

func (h *APIHandlers) HandleDiscountBands(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.DiscountBands(), cacheHeaders)
}

func (h *APIHandlers) HandleRatingBands(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.RatingBands(), cacheHeaders)
}

func (h *APIHandlers) HandleProductPhases(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.ProductPhases(), cacheHeaders)
}

// Operations

func (h *APIHandlers) HandlePaymentTrends(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.PaymentTrends(), cacheHeaders)
}

func (h *APIHandlers) HandleDeliveryPerformance(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.DeliveryPerformance(), cacheHeaders)
}

func (h *APIHandlers) HandleReturns(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, map[string]any{
		"by_status":   h.analytics.Returns(),
		"by_category": h.analytics.CategoryReturns(),
	}, cacheHeaders)
}

func (h *APIHandlers) HandlePrimeImpact(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.PrimeImpact(), cacheHeaders)
}

// Geography

func (h *APIHandlers) HandleStates(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.StatePerformance(), cacheHeaders)
}

func (h *APIHandlers) HandleTiers(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.TierSummary(), cacheHeaders)
}

func (h *APIHandlers) HandleFestivals(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, map[string]any{
		"festivals": h.analytics.FestivalImpact(),
		"split":     h.analytics.FestivalSplit(),
	}, cacheHeaders)
}

func (h *APIHandlers) HandleSlowestStates(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.SlowestStates(maxSlowStates), cacheHeaders)
}

// Service

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
