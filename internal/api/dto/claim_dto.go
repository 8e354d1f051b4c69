package dto

import (
	"time"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// CreateClaimRequest files a warranty claim.
type CreateClaimRequest struct {
	ProductID        string `json:"product_id"`
	IssueDescription string `json:"issue_description"`
}

// TransitionClaimRequest moves a claim to a new status.
type TransitionClaimRequest struct {
	Status domain.ClaimStatus `json:"status"`
	Notes  *string            `json:"notes"`
}

// ClaimResponse is the externally visible claim shape.
type ClaimResponse struct {
	ID                 string             `json:"id"`
	ProductID          string             `json:"product_id"`
	CustomerID         string             `json:"customer_id"`
	IssueDescription   string             `json:"issue_description"`
	Status             domain.ClaimStatus `json:"status"`
	SellerNotes        *string            `json:"seller_notes,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	LastStatusUpdateAt time.Time          `json:"last_status_update_at"`
}

// NewClaimResponse maps a domain claim.
func NewClaimResponse(claim *domain.WarrantyClaim) ClaimResponse {
	return ClaimResponse{
		ID:                 claim.ID,
		ProductID:          claim.ProductID,
		CustomerID:         claim.CustomerID,
		IssueDescription:   claim.IssueDescription,
		Status:             claim.Status,
		SellerNotes:        claim.SellerNotes,
		CreatedAt:          claim.CreatedAt,
		LastStatusUpdateAt: claim.LastStatusUpdateAt,
	}
}
