package server

import (
	"log/slog"
	"net/http"

	"ecomdash/internal/handlers"
	"ecomdash/internal/services"
)

type Server struct {
	analytics   *services.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

// TemplateHandlers carries the page render functions so the server stays
// decoupled from the templating layer.
type TemplateHandlers struct {
	Overview   http.HandlerFunc
	Revenue    http.HandlerFunc
	Customers  http.HandlerFunc
	Products   http.HandlerFunc
	Operations http.HandlerFunc
	Geography  http.HandlerFunc
}

func NewServer(analytics *services.Analytics, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   analytics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(analytics, logger),
		sseHandlers: handlers.NewSSEHandlers(analytics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard pages
	s.mux.HandleFunc("GET /{$}", templateHandlers.Overview)
	s.mux.HandleFunc("GET /revenue", templateHandlers.Revenue)
	s.mux.HandleFunc("GET /customers", templateHandlers.Customers)
	s.mux.HandleFunc("GET /products", templateHandlers.Products)
	s.mux.HandleFunc("GET /operations", templateHandlers.Operations)
	s.mux.HandleFunc("GET /geography", templateHandlers.Geography)

	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/revenue/yearly", s.apiHandlers.HandleYearlyRevenue)
	s.mux.HandleFunc("GET /api/revenue/monthly", s.apiHandlers.HandleMonthlyPivot)
	s.mux.HandleFunc("GET /api/revenue/monthly-summary", s.apiHandlers.HandleMonthlySummary)
	s.mux.HandleFunc("GET /api/revenue/weekdays", s.apiHandlers.HandleWeekdayPatterns)
	s.mux.HandleFunc("GET /api/health-score", s.apiHandlers.HandleBusinessHealth)

	s.mux.HandleFunc("GET /api/customers/segments", s.apiHandlers.HandleSegments)
	s.mux.HandleFunc("GET /api/customers/cohorts", s.apiHandlers.HandleCohorts)
	s.mux.HandleFunc("GET /api/customers/clv-quartiles", s.apiHandlers.HandleCLVQuartiles)
	s.mux.HandleFunc("GET /api/customers/lifecycles", s.apiHandlers.HandleLifecycles)

	s.mux.HandleFunc("GET /api/products/categories", s.apiHandlers.HandleCategories)
	s.mux.HandleFunc("GET /api/products/brands", s.apiHandlers.HandleTopBrands)
	s.mux.HandleFunc("GET /api/products/price-bands", s.apiHandlers.HandlePriceBands)
	s.mux.HandleFunc("GET /api/products/discount-bands", s.apiHandlers.HandleDiscountBands)
	s.mux.HandleFunc("GET /api/products/rating-bands", s.apiHandlers.HandleRatingBands)
	s.mux.HandleFunc("GET /api/products/phases", s.apiHandlers.HandleProductPhases)

	s.mux.HandleFunc("GET /api/operations/payments", s.apiHandlers.HandlePaymentTrends)
	s.mux.HandleFunc("GET /api/operations/delivery", s.apiHandlers.HandleDeliveryPerformance)
	s.mux.HandleFunc("GET /api/operations/returns", s.apiHandlers.HandleReturns)
	s.mux.HandleFunc("GET /api/operations/prime", s.apiHandlers.HandlePrimeImpact)

	s.mux.HandleFunc("GET /api/geography/states", s.apiHandlers.HandleStates)
	s.mux.HandleFunc("GET /api/geography/tiers", s.apiHandlers.HandleTiers)
	s.mux.HandleFunc("GET /api/geography/festivals", s.apiHandlers.HandleFestivals)
	s.mux.HandleFunc("GET /api/geography/slowest-states", s.apiHandlers.HandleSlowestStates)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/overview", s.sseHandlers.HandleOverview)
	s.mux.HandleFunc("GET /sse/revenue", s.sseHandlers.HandleRevenue)
	s.mux.HandleFunc("GET /sse/customers", s.sseHandlers.HandleCustomers)
	s.mux.HandleFunc("GET /sse/products", s.sseHandlers.HandleProducts)
	s.mux.HandleFunc("GET /sse/operations", s.sseHandlers.HandleOperations)
	s.mux.HandleFunc("GET /sse/geography", s.sseHandlers.HandleGeography)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

// MountWarehouse adds the live star-schema query routes. Only called when
// the warehouse source is enabled.
func (s *Server) MountWarehouse(wh *handlers.WarehouseHandlers) {
	s.mux.HandleFunc("GET /api/warehouse/revenue-trends", wh.HandleRevenueTrends)
	s.mux.HandleFunc("GET /api/warehouse/monthly", wh.HandleMonthlyRevenue)
	s.mux.HandleFunc("GET /api/warehouse/categories", wh.HandleCategories)
	s.mux.HandleFunc("GET /api/warehouse/brands", wh.HandleTopBrands)
	s.mux.HandleFunc("GET /api/warehouse/top-customers", wh.HandleTopCustomers)
	s.mux.HandleFunc("GET /api/warehouse/states", wh.HandleStates)
	s.mux.HandleFunc("GET /api/warehouse/payments", wh.HandlePaymentTrends)
	s.mux.HandleFunc("GET /api/warehouse/delivery", wh.HandleDelivery)
	s.mux.HandleFunc("GET /api/warehouse/prime", wh.HandlePrimeImpact)
	s.mux.HandleFunc("GET /api/warehouse/segments", wh.HandleSegments)
	s.mux.HandleFunc("GET /api/warehouse/summary", wh.HandleSummary)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
