package models

import "time"

// Transaction is one row of the cleaned e-commerce dataset. Every analysis
// reads from this struct; raw CSV columns are never accessed by name after
// parsing.
type Transaction struct {
	TransactionID  string
	OrderDate      time.Time
	CustomerID     string
	CustomerState  string
	CustomerCity   string
	AgeGroup       string
	ProductID      string
	ProductName    string
	Category       string
	Brand          string
	OriginalPrice  float64
	DiscountPct    float64
	FinalAmount    float64
	Quantity       int
	PaymentMethod  string
	DeliveryType   string
	DeliveryDays   int
	IsPrimeMember  bool
	IsFestivalSale bool
	FestivalName   string
	CustomerRating float64
	ProductRating  float64
	ReturnStatus   string
}

// Returned reports whether the order ended in a return.
func (t Transaction) Returned() bool {
	return t.ReturnStatus == "Returned"
}
