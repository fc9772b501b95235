package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ecomdash/internal/errors"
	"ecomdash/internal/observability"
	"ecomdash/internal/warehouse"
)

const (
	defaultStartYear    = 2015
	maxWarehouseResults = 50
)

// WarehouseHandlers serves live queries against the star schema. Unlike the
// precomputed in-memory analyses these hit PostgreSQL on every request, so
// they are only mounted when the warehouse source is enabled.
type WarehouseHandlers struct {
	store  *warehouse.Store
	logger *slog.Logger
}

func NewWarehouseHandlers(store *warehouse.Store, logger *slog.Logger) *WarehouseHandlers {
	return &WarehouseHandlers{
		store:  store,
		logger: logger,
	}
}

func (h *WarehouseHandlers) writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := observability.GetRequestID(r.Context())
	errors.WriteError(w, h.logger, errors.DataSourceWrap(err, "warehouse query failed"), requestID)
}

func queryInt(r *http.Request, name string, fallback int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func (h *WarehouseHandlers) HandleRevenueTrends(w http.ResponseWriter, r *http.Request) {
	start := queryInt(r, "start", defaultStartYear)
	end := queryInt(r, "end", time.Now().Year())

	result, err := h.store.RevenueTrends(r.Context(), start, end)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandleMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", time.Now().Year())

	result, err := h.store.MonthlyRevenue(r.Context(), year)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.CategoryPerformance(r.Context())
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandleTopBrands(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", maxBrands)
	if limit > maxWarehouseResults {
		limit = maxWarehouseResults
	}

	result, err := h.store.TopBrands(r.Context(), limit)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandleTopCustomers(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit > maxWarehouseResults {
		limit = maxWarehouseResults
	}

	result, err := h.store.TopCustomers(r.Context(), limit)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandleStates(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.GeographicPerformance(r.Context())
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandlePaymentTrends(w http.ResponseWriter, r *http.Request) {
	start := queryInt(r, "start", defaultStartYear)

	result, err := h.store.PaymentMethodTrends(r.Context(), start)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandleDelivery(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.DeliveryMetrics(r.Context())
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandleSegments(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.CustomerSegments(r.Context())
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.ExecutiveSummary(r.Context())
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}

func (h *WarehouseHandlers) HandlePrimeImpact(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.PrimeImpact(r.Context())
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	errors.WriteSuccess(w, result)
}
