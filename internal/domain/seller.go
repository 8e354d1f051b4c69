package domain

import "time"

// ContractStatus controls whether new registrations may reference a seller.
type ContractStatus string

const (
	ContractStatusPending     ContractStatus = "PENDING"
	ContractStatusActive      ContractStatus = "ACTIVE"
	ContractStatusDeactivated ContractStatus = "DEACTIVATED"
	ContractStatusTerminated  ContractStatus = "TERMINATED"
)

// Valid reports whether the status is one of the known values.
func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusPending, ContractStatusActive, ContractStatusDeactivated, ContractStatusTerminated:
		return true
	}
	return false
}

// Seller is the business profile owned 1:1 by a SELLER user.
type Seller struct {
	ID             string
	UserID         string
	ShopName       string
	BusinessEmail  string
	BusinessPhone  string
	BusinessAddr   string
	ContractStatus ContractStatus
	// Base URL and credential for the seller's purchase-validation endpoint.
	ValidationURL *string
	ValidationKey *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidationConfigured reports whether the seller can answer validation calls.
func (s *Seller) ValidationConfigured() bool {
	return s.ValidationURL != nil && *s.ValidationURL != "" &&
		s.ValidationKey != nil && *s.ValidationKey != ""
}

// SellerUpdate carries a partial seller-profile update; nil fields are left untouched.
type SellerUpdate struct {
	ShopName      *string
	BusinessEmail *string
	BusinessPhone *string
	BusinessAddr  *string
	ValidationURL *string
	ValidationKey *string
}
