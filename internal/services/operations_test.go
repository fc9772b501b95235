package services

import (
	"testing"
	"time"

	"ecomdash/internal/models"
)

func TestBuildPaymentTrends(t *testing.T) {
	data := []models.Transaction{
		{OrderDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), PaymentMethod: "UPI", FinalAmount: 100},
		{OrderDate: time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC), PaymentMethod: "UPI", FinalAmount: 100},
		{OrderDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), PaymentMethod: "Credit Card", FinalAmount: 300},
		{OrderDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), PaymentMethod: "UPI", FinalAmount: 200},
	}

	result := buildPaymentTrends(data)

	if len(result) != 3 {
		t.Fatalf("expected 3 trend rows, got %d", len(result))
	}
	// Sorted by year then method.
	if result[0].Year != 2022 || result[0].PaymentMethod != "Credit Card" {
		t.Errorf("first row = %+v", result[0])
	}
	// UPI is 2 of 3 transactions in 2022.
	upi2022 := result[1]
	if upi2022.PaymentMethod != "UPI" || upi2022.Transactions != 2 {
		t.Fatalf("second row = %+v", upi2022)
	}
	want := 2.0 / 3.0 * 100
	if upi2022.ShareOfYear < want-0.001 || upi2022.ShareOfYear > want+0.001 {
		t.Errorf("UPI 2022 share = %v, want %v", upi2022.ShareOfYear, want)
	}
	// 2023 has a single method at 100%.
	if result[2].Year != 2023 || result[2].ShareOfYear != 100 {
		t.Errorf("third row = %+v", result[2])
	}
}

func TestBuildDeliveryPerformance(t *testing.T) {
	data := []models.Transaction{
		{DeliveryType: "Express", DeliveryDays: 1, CustomerRating: 5},
		{DeliveryType: "Express", DeliveryDays: 3, CustomerRating: 4},
		{DeliveryType: "Standard", DeliveryDays: 8, CustomerRating: 3},
		{DeliveryType: "Standard", DeliveryDays: 4, CustomerRating: 4},
	}

	result := buildDeliveryPerformance(data)

	if len(result) != 2 {
		t.Fatalf("expected 2 delivery types, got %d", len(result))
	}

	express := result[0]
	if express.DeliveryType != "Express" {
		t.Fatalf("first type = %q, want Express", express.DeliveryType)
	}
	if express.AvgDays != 2 || express.MinDays != 1 || express.MaxDays != 3 {
		t.Errorf("Express days = avg %v min %d max %d", express.AvgDays, express.MinDays, express.MaxDays)
	}
	if express.OnTime3Pct != 100 {
		t.Errorf("Express on-time 3d = %v, want 100", express.OnTime3Pct)
	}

	standard := result[1]
	if standard.OnTime7Pct != 50 {
		t.Errorf("Standard on-time 7d = %v, want 50", standard.OnTime7Pct)
	}
	if standard.MinDays != 4 {
		t.Errorf("Standard min days = %d, want 4", standard.MinDays)
	}
}

func TestBuildReturns(t *testing.T) {
	data := []models.Transaction{
		{ReturnStatus: "Delivered", Category: "Electronics", CustomerRating: 4},
		{ReturnStatus: "Delivered", Category: "Fashion", CustomerRating: 5},
		{ReturnStatus: "Delivered", Category: "Fashion", CustomerRating: 4},
		{ReturnStatus: "Returned", Category: "Fashion", CustomerRating: 2},
	}

	stats, catRates := buildReturns(data)

	if len(stats) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(stats))
	}
	// Sorted by transaction count descending.
	if stats[0].Status != "Delivered" || stats[0].Transactions != 3 {
		t.Errorf("first status = %+v", stats[0])
	}
	if stats[0].Share != 75 {
		t.Errorf("Delivered share = %v, want 75", stats[0].Share)
	}
	if stats[1].AvgRating != 2 {
		t.Errorf("Returned avg rating = %v, want 2", stats[1].AvgRating)
	}

	if len(catRates) != 2 {
		t.Fatalf("expected 2 category rates, got %d", len(catRates))
	}
	// Fashion has the higher return rate, listed first.
	if catRates[0].Category != "Fashion" {
		t.Errorf("first category = %q, want Fashion", catRates[0].Category)
	}
	want := 1.0 / 3.0 * 100
	if catRates[0].ReturnRate < want-0.001 || catRates[0].ReturnRate > want+0.001 {
		t.Errorf("Fashion return rate = %v, want %v", catRates[0].ReturnRate, want)
	}
	if catRates[1].ReturnRate != 0 {
		t.Errorf("Electronics return rate = %v, want 0", catRates[1].ReturnRate)
	}
}

func TestBuildPrimeImpact(t *testing.T) {
	data := []models.Transaction{
		{IsPrimeMember: true, CustomerID: "C1", FinalAmount: 400, DeliveryDays: 2, CustomerRating: 5, ReturnStatus: "Delivered"},
		{IsPrimeMember: true, CustomerID: "C1", FinalAmount: 200, DeliveryDays: 2, CustomerRating: 4, ReturnStatus: "Delivered"},
		{IsPrimeMember: false, CustomerID: "C2", FinalAmount: 100, DeliveryDays: 6, CustomerRating: 3, ReturnStatus: "Returned"},
	}

	result := buildPrimeImpact(data)

	if len(result) != 2 {
		t.Fatalf("expected 2 membership groups, got %d", len(result))
	}
	// Prime listed first.
	prime := result[0]
	if prime.Membership != "Prime" {
		t.Fatalf("first group = %q, want Prime", prime.Membership)
	}
	if prime.AvgOrder != 300 || prime.UniqueCustomers != 1 {
		t.Errorf("Prime = %+v", prime)
	}
	if prime.ReturnRate != 0 {
		t.Errorf("Prime return rate = %v, want 0", prime.ReturnRate)
	}

	nonPrime := result[1]
	if nonPrime.Membership != "Non-Prime" || nonPrime.ReturnRate != 100 {
		t.Errorf("Non-Prime = %+v", nonPrime)
	}
}
