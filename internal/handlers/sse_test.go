package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"ecomdash/internal/models"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewSSEHandlers(t *testing.T) {
	analytics := createTestAnalytics()
	logger := quietLogger()

	handlers := NewSSEHandlers(analytics, logger)

	if handlers == nil {
		t.Fatal("NewSSEHandlers() returned nil")
	}
	if handlers.analytics != analytics {
		t.Error("NewSSEHandlers() should set analytics field")
	}
	if handlers.logger != logger {
		t.Error("NewSSEHandlers() should set logger field")
	}
}

func TestSSEHandlers_renderSegmentTable(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), quietLogger())

	testData := []models.SegmentSummary{
		{Segment: "Champions", Customers: 3, AvgRecency: 12.5, AvgFrequency: 8.2, AvgMonetary: 45000, RevenueShare: 62.5},
		{Segment: "Lost", Customers: 1, AvgRecency: 420, AvgFrequency: 1, AvgMonetary: 500, RevenueShare: 0.7},
	}

	html, err := handlers.renderSegmentTable(testData)
	if err != nil {
		t.Fatalf("renderSegmentTable() failed: %v", err)
	}

	expectedContent := []string{
		`id="segments-content"`,
		`<table class="modern-table">`,
		"<th>Segment</th>",
		"<th>Revenue Share</th>",
		"Champions",
		"Lost",
		"12.5 days",
		"₹45000",
		"62.5%",
	}

	for _, content := range expectedContent {
		if !strings.Contains(html, content) {
			t.Errorf("expected HTML to contain %q", content)
		}
	}
}

func TestSSEHandlers_renderCategoryTable(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), quietLogger())

	testData := []models.CategoryPerformance{
		{Category: "Electronics", TotalRevenue: 2399.2, MarketShare: 64, Transactions: 1, AvgOrder: 2399.2, AvgRating: 4.2, ReturnRate: 0},
		{Category: "Fashion", TotalRevenue: 1349.1, MarketShare: 36, Transactions: 1, AvgOrder: 1349.1, AvgRating: 4.0, ReturnRate: 100},
	}

	html, err := handlers.renderCategoryTable(testData)
	if err != nil {
		t.Fatalf("renderCategoryTable() failed: %v", err)
	}

	expectedContent := []string{
		`id="categories-content"`,
		"<th>Category</th>",
		"Electronics",
		"Fashion",
		"₹2399",
		"64.0%",
	}

	for _, content := range expectedContent {
		if !strings.Contains(html, content) {
			t.Errorf("expected HTML to contain %q", content)
		}
	}
}

func TestSSEHandlers_renderStateTable(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), quietLogger())

	testData := []models.StatePerformance{
		{State: "Maharashtra", Tier: "Metro", TotalRevenue: 2399.2, Transactions: 1, UniqueCustomers: 1, AvgOrder: 2399.2},
	}

	html, err := handlers.renderStateTable(testData)
	if err != nil {
		t.Fatalf("renderStateTable() failed: %v", err)
	}

	expectedContent := []string{
		`id="states-content"`,
		"<th>State</th>",
		"Maharashtra",
		"Metro",
	}

	for _, content := range expectedContent {
		if !strings.Contains(html, content) {
			t.Errorf("expected HTML to contain %q", content)
		}
	}
}

func TestSSEHandlers_StreamEndpoints(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), quietLogger())

	tests := []struct {
		name     string
		path     string
		handler  http.HandlerFunc
		contains []string
	}{
		{
			"overview", "/sse/overview", handlers.HandleOverview,
			[]string{"healthData", "yearlyData", "overview-content"},
		},
		{
			"revenue", "/sse/revenue", handlers.HandleRevenue,
			[]string{"yearlyData", "monthlyData", "weekdayData"},
		},
		{
			"customers", "/sse/customers", handlers.HandleCustomers,
			[]string{"segments-content", "cohortData", "lifecycleData"},
		},
		{
			"products", "/sse/products", handlers.HandleProducts,
			[]string{"categories-content", "brandData", "priceData"},
		},
		{
			"operations", "/sse/operations", handlers.HandleOperations,
			[]string{"paymentData", "deliveryData", "primeData"},
		},
		{
			"geography", "/sse/geography", handlers.HandleGeography,
			[]string{"states-content", "tierData", "festivalData"},
		},
		{
			"refresh all", "/sse/refresh-all", handlers.HandleRefreshAll,
			[]string{"segments-content", "categories-content", "states-content", "healthData"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			tt.handler(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("expected SSE content type, got %q", ct)
			}

			body := w.Body.String()
			for _, content := range tt.contains {
				if !strings.Contains(body, content) {
					t.Errorf("expected stream to contain %q", content)
				}
			}
		})
	}
}
