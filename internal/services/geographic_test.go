package services

import (
	"testing"

	"ecomdash/internal/models"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{"Maharashtra", "Metro"},
		{"Delhi", "Metro"},
		{"Punjab", "Tier-1"},
		{"Telangana", "Tier-1"},
		{"Bihar", "Tier-2"},
		{"Odisha", "Tier-2"},
		{"Sikkim", "Rural"},
		{"", "Rural"},
	}

	for _, tt := range tests {
		if got := tierFor(tt.state); got != tt.want {
			t.Errorf("tierFor(%q) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestBuildStatePerformance(t *testing.T) {
	data := []models.Transaction{
		{CustomerState: "Maharashtra", CustomerID: "C1", FinalAmount: 500},
		{CustomerState: "Maharashtra", CustomerID: "C2", FinalAmount: 300},
		{CustomerState: "Bihar", CustomerID: "C3", FinalAmount: 200},
	}

	result := buildStatePerformance(data)

	if len(result) != 2 {
		t.Fatalf("expected 2 states, got %d", len(result))
	}
	// Sorted by revenue descending.
	top := result[0]
	if top.State != "Maharashtra" || top.Tier != "Metro" {
		t.Errorf("top state = %+v", top)
	}
	if top.UniqueCustomers != 2 || top.AvgOrder != 400 {
		t.Errorf("Maharashtra customers/avg = %d/%v", top.UniqueCustomers, top.AvgOrder)
	}
	if result[1].Tier != "Tier-2" {
		t.Errorf("Bihar tier = %q, want Tier-2", result[1].Tier)
	}
}

func TestBuildTierSummary(t *testing.T) {
	states := []models.StatePerformance{
		{State: "Maharashtra", Tier: "Metro", TotalRevenue: 600, Transactions: 2, UniqueCustomers: 2},
		{State: "Delhi", Tier: "Metro", TotalRevenue: 200, Transactions: 1, UniqueCustomers: 1},
		{State: "Bihar", Tier: "Tier-2", TotalRevenue: 200, Transactions: 1, UniqueCustomers: 1},
	}

	result := buildTierSummary(states)

	if len(result) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(result))
	}
	metro := result[0]
	if metro.Tier != "Metro" {
		t.Fatalf("first tier = %q, want Metro", metro.Tier)
	}
	if metro.TotalRevenue != 800 || metro.RevenueShare != 80 {
		t.Errorf("Metro revenue/share = %v/%v, want 800/80", metro.TotalRevenue, metro.RevenueShare)
	}
	if metro.AvgOrder != 800.0/3.0 {
		t.Errorf("Metro avg order = %v", metro.AvgOrder)
	}
}

func TestBuildFestivalImpact(t *testing.T) {
	data := []models.Transaction{
		{IsFestivalSale: true, FestivalName: "Diwali", FinalAmount: 500, CustomerRating: 5},
		{IsFestivalSale: true, FestivalName: "Diwali", FinalAmount: 300, CustomerRating: 4},
		{IsFestivalSale: true, FestivalName: "Holi", FinalAmount: 100, CustomerRating: 3},
		// Festival flag without a name still counts toward the split.
		{IsFestivalSale: true, FestivalName: "", FinalAmount: 100, CustomerRating: 4},
		{IsFestivalSale: false, FinalAmount: 1000, CustomerRating: 4},
	}

	festivals, split := buildFestivalImpact(data)

	if len(festivals) != 2 {
		t.Fatalf("expected 2 festivals, got %d", len(festivals))
	}
	if festivals[0].Festival != "Diwali" || festivals[0].TotalRevenue != 800 {
		t.Errorf("first festival = %+v", festivals[0])
	}
	if festivals[0].AvgOrder != 400 || festivals[0].AvgRating != 4.5 {
		t.Errorf("Diwali avg order/rating = %v/%v", festivals[0].AvgOrder, festivals[0].AvgRating)
	}

	if split.FestivalRevenue != 1000 || split.NonFestivalRevenue != 1000 {
		t.Errorf("split = %+v", split)
	}
	if split.FestivalPct != 50 {
		t.Errorf("festival pct = %v, want 50", split.FestivalPct)
	}
}

func TestBuildSlowestStates(t *testing.T) {
	data := []models.Transaction{
		{CustomerState: "Bihar", DeliveryDays: 8},
		{CustomerState: "Bihar", DeliveryDays: 6},
		{CustomerState: "Maharashtra", DeliveryDays: 2},
		{CustomerState: "Delhi", DeliveryDays: 3},
	}

	result := buildSlowestStates(data)

	if len(result) != 3 {
		t.Fatalf("expected 3 states, got %d", len(result))
	}
	if result[0].State != "Bihar" || result[0].AvgDays != 7 {
		t.Errorf("slowest = %+v", result[0])
	}
	if result[0].Orders != 2 {
		t.Errorf("Bihar orders = %d, want 2", result[0].Orders)
	}
	// Fastest last.
	if result[2].State != "Maharashtra" {
		t.Errorf("fastest state = %q, want Maharashtra", result[2].State)
	}
}
