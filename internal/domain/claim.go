package domain

import "time"

// ClaimStatus enumerates lifecycle states for warranty claims.
type ClaimStatus string

const (
	ClaimStatusRequested  ClaimStatus = "REQUESTED"
	ClaimStatusAccepted   ClaimStatus = "ACCEPTED"
	ClaimStatusDenied     ClaimStatus = "DENIED"
	ClaimStatusInProgress ClaimStatus = "IN_PROGRESS"
	ClaimStatusResolved   ClaimStatus = "RESOLVED"
)

// Valid reports whether the status is one of the five known values.
func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusRequested, ClaimStatusAccepted, ClaimStatusDenied,
		ClaimStatusInProgress, ClaimStatusResolved:
		return true
	}
	return false
}

// Terminal reports whether a claim in this status releases the product for
// a new claim.
func (s ClaimStatus) Terminal() bool {
	return s == ClaimStatusResolved || s == ClaimStatusDenied
}

// WarrantyClaim is filed by the owning customer and processed by the seller
// owning the referenced product (or an admin).
type WarrantyClaim struct {
	ID                 string
	ProductID          string
	CustomerID         string
	IssueDescription   string
	Status             ClaimStatus
	SellerNotes        *string
	CreatedAt          time.Time
	LastStatusUpdateAt time.Time
}

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusRequested:  {ClaimStatusAccepted, ClaimStatusDenied, ClaimStatusInProgress},
	ClaimStatusAccepted:   {ClaimStatusInProgress, ClaimStatusResolved, ClaimStatusDenied},
	ClaimStatusInProgress: {ClaimStatusResolved, ClaimStatusDenied},
	ClaimStatusDenied:     {},
	ClaimStatusResolved:   {},
}

// CanTransition reports whether a claim may move from current to next.
// DENIED and RESOLVED are terminal; reopening happens by filing a new claim.
func CanTransition(current, next ClaimStatus) bool {
	for _, candidate := range claimTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}
