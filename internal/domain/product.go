package domain

import "time"

// RegisteredProduct records a purchase validated against the seller's system.
// Immutable after creation; the (CustomerID, SellerID, SellerOrderID) tuple
// is unique.
type RegisteredProduct struct {
	ID            string
	CustomerID    string
	SellerID      string
	SellerOrderID string
	// Phone number the customer held at registration time, as confirmed
	// by the seller. Snapshot, not a live reference.
	PhoneAtSale        string
	ProductName        string
	Price              *float64
	PurchaseDate       time.Time
	WarrantyValidUntil time.Time
	CreatedAt          time.Time
}

// WarrantyActiveOn reports whether the warranty still covers the given day.
func (p *RegisteredProduct) WarrantyActiveOn(day time.Time) bool {
	return !p.WarrantyValidUntil.Before(truncateToDay(day))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
