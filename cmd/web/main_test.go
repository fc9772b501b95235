package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"ecomdash/internal/models"
	"ecomdash/internal/server"
	"ecomdash/internal/services"
	"ecomdash/internal/ui/templates"
)

func newTestAnalytics() *services.Analytics {
	a := services.NewAnalytics()
	testData := []models.Transaction{
		{
			TransactionID:  "TXN001",
			OrderDate:      time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			CustomerID:     "CUST001",
			CustomerState:  "Maharashtra",
			CustomerCity:   "Mumbai",
			ProductID:      "PROD001",
			ProductName:    "Wireless Earbuds",
			Category:       "Electronics",
			Brand:          "boAt",
			OriginalPrice:  2999,
			DiscountPct:    20,
			FinalAmount:    2399.2,
			Quantity:       1,
			PaymentMethod:  "UPI",
			DeliveryType:   "Express",
			DeliveryDays:   2,
			IsPrimeMember:  true,
			CustomerRating: 4.5,
			ProductRating:  4.2,
			ReturnStatus:   "Delivered",
		},
		{
			TransactionID:  "TXN002",
			OrderDate:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			CustomerID:     "CUST002",
			CustomerState:  "Bihar",
			CustomerCity:   "Patna",
			ProductID:      "PROD002",
			ProductName:    "Cotton Kurta",
			Category:       "Fashion",
			Brand:          "FabIndia",
			OriginalPrice:  1499,
			DiscountPct:    10,
			FinalAmount:    1349.1,
			Quantity:       2,
			PaymentMethod:  "Cash on Delivery",
			DeliveryType:   "Standard",
			DeliveryDays:   6,
			IsFestivalSale: true,
			FestivalName:   "Diwali",
			CustomerRating: 3.8,
			ProductRating:  4.0,
			ReturnStatus:   "Returned",
		},
		{
			TransactionID:  "TXN003",
			OrderDate:      time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			CustomerID:     "CUST001",
			CustomerState:  "Maharashtra",
			CustomerCity:   "Pune",
			ProductID:      "PROD003",
			ProductName:    "Phone Case",
			Category:       "Electronics",
			Brand:          "boAt",
			OriginalPrice:  499,
			DiscountPct:    0,
			FinalAmount:    499,
			Quantity:       1,
			PaymentMethod:  "UPI",
			DeliveryType:   "Express",
			DeliveryDays:   1,
			IsPrimeMember:  true,
			CustomerRating: 4.0,
			ProductRating:  4.1,
			ReturnStatus:   "Delivered",
		},
	}
	a.SetData(testData)
	return a
}

func newTestServer() *server.Server {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	templateHandlers := &server.TemplateHandlers{
		Overview:   pageHandler(templates.Overview),
		Revenue:    pageHandler(templates.Revenue),
		Customers:  pageHandler(templates.Customers),
		Products:   pageHandler(templates.Products),
		Operations: pageHandler(templates.Operations),
		Geography:  pageHandler(templates.Geography),
	}
	return server.NewServer(newTestAnalytics(), logger, templateHandlers)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		path           string
		expectedStatus int
		contentType    string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/revenue", http.StatusOK, "text/html"},
		{"/customers", http.StatusOK, "text/html"},
		{"/products", http.StatusOK, "text/html"},
		{"/operations", http.StatusOK, "text/html"},
		{"/geography", http.StatusOK, "text/html"},
		{"/api/revenue/yearly", http.StatusOK, "application/json"},
		{"/api/revenue/monthly", http.StatusOK, "application/json"},
		{"/api/customers/segments", http.StatusOK, "application/json"},
		{"/api/products/categories", http.StatusOK, "application/json"},
		{"/api/operations/payments", http.StatusOK, "application/json"},
		{"/api/geography/states", http.StatusOK, "application/json"},
		{"/health", http.StatusOK, "application/json"},
		{"/admin/stats", http.StatusOK, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			ct := w.Header().Get("Content-Type")
			if !strings.Contains(ct, tt.contentType) {
				t.Errorf("content-type = %q, want %q", ct, tt.contentType)
			}

			if tt.contentType == "application/json" {
				var result any
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Errorf("invalid json: %v", err)
				}
			}
		})
	}
}

func TestServer_SegmentsResponse(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/customers/segments", nil)
	srv.ServeHTTP(w, r)

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}

	data, ok := response["data"].([]interface{})
	if !ok || len(data) == 0 {
		t.Fatalf("expected non-empty segments array")
	}

	if item, ok := data[0].(map[string]interface{}); ok {
		if seg, has := item["segment"].(string); !has || seg == "" {
			t.Error("segment row should have non-empty segment field")
		}
		if customers, has := item["customers"].(float64); !has || customers <= 0 {
			t.Error("segment row should have positive customer count")
		}
	} else {
		t.Error("invalid segment row structure")
	}
}

func TestServer_SSERoutes(t *testing.T) {
	srv := newTestServer()

	sseRoutes := []string{
		"/sse/overview",
		"/sse/revenue",
		"/sse/customers",
		"/sse/products",
		"/sse/operations",
		"/sse/geography",
		"/sse/refresh-all",
	}

	for _, route := range sseRoutes {
		t.Run(route, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", route, nil)

			srv.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, should contain 'text/event-stream'", ct)
			}
		})
	}
}

func TestServer_ErrorHandling(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"POST", "/api/revenue/yearly", http.StatusMethodNotAllowed},
		{"PUT", "/", http.StatusMethodNotAllowed},
		{"DELETE", "/health", http.StatusMethodNotAllowed},
		{"PATCH", "/api/customers/segments", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestOverviewPage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	pageHandler(templates.Overview)(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	expectedComponents := []string{
		"E-Commerce Intelligence",
		"Total Revenue",
		"Retention",
		"Revenue by Year",
		"/sse/overview",
	}

	for _, component := range expectedComponents {
		if !strings.Contains(body, component) {
			t.Errorf("overview page should contain %q", component)
		}
	}
}

func TestGeographyPage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/geography", nil)

	pageHandler(templates.Geography)(w, r)

	body := w.Body.String()
	expectedComponents := []string{
		"State Performance",
		"City Tier Summary",
		"Festival Impact",
		"Slowest Delivery States",
		"/sse/geography",
	}

	for _, component := range expectedComponents {
		if !strings.Contains(body, component) {
			t.Errorf("geography page should contain %q", component)
		}
	}
}
