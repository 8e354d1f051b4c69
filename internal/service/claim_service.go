package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/events"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/repository"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

// ClaimService drives the warranty-claim lifecycle.
type ClaimService struct {
	claims     repository.ClaimRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// ClaimDependencies bundles collaborators for the claim service.
type ClaimDependencies struct {
	ClaimRepo   repository.ClaimRepository
	ProductRepo repository.ProductRepository
	Dispatcher  events.Dispatcher
}

// ClaimActor identifies who is transitioning a claim. Admin bypasses the
// seller-ownership check; SellerID is set for SELLER principals only.
type ClaimActor struct {
	UserID   string
	SellerID *string
	Admin    bool
}

// NewClaimService constructs the service.
func NewClaimService(deps ClaimDependencies) *ClaimService {
	return &ClaimService{
		claims:     deps.ClaimRepo,
		products:   deps.ProductRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateClaim files a claim for the owning customer. Preconditions, each a
// hard gate: product exists, caller owns it, warranty still active, no open
// claim on the product.
func (s *ClaimService) CreateClaim(ctx context.Context, customerID, productID, issueDescription, origin string) (*domain.WarrantyClaim, error) {
	issueDescription = strings.TrimSpace(issueDescription)
	if issueDescription == "" {
		return nil, apperrors.NewValidationError("issue description required", nil)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", nil)
		}
		return nil, err
	}
	if product.CustomerID != customerID {
		return nil, apperrors.NewForbidden("product belongs to another customer")
	}
	if !product.WarrantyActiveOn(time.Now()) {
		return nil, apperrors.NewWarrantyExpired("warranty expired on " +
			product.WarrantyValidUntil.Format(DateLayout))
	}

	if _, err := s.claims.GetOpenByProduct(ctx, productID); err == nil {
		return nil, apperrors.NewConflict("an open claim already exists for this product", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	claim := &domain.WarrantyClaim{
		ProductID:        productID,
		CustomerID:       customerID,
		IssueDescription: issueDescription,
		Status:           domain.ClaimStatusRequested,
	}
	if err := s.claims.Create(ctx, claim); err != nil {
		// Partial unique index backs the open-claim invariant when two
		// creations race past the pre-check.
		if repository.IsUniqueViolation(err, repository.ConstraintOpenClaimProduct) {
			return nil, apperrors.NewConflict("an open claim already exists for this product", nil)
		}
		return nil, err
	}

	publishAudit(ctx, s.dispatcher, &customerID, domain.ActionClaimCreated, "warranty_claim", claim.ID, origin, map[string]any{
		"product_id": productID,
	})
	return claim, nil
}

// TransitionClaim moves a claim to a new status. Only the seller owning the
// referenced product (or an admin) may act; DENIED requires non-empty notes.
func (s *ClaimService) TransitionClaim(ctx context.Context, actor ClaimActor, claimID string, target domain.ClaimStatus, notes *string, origin string) (*domain.WarrantyClaim, error) {
	if !target.Valid() {
		return nil, apperrors.NewValidationError("unknown claim status", nil)
	}
	if target == domain.ClaimStatusDenied && (notes == nil || strings.TrimSpace(*notes) == "") {
		return nil, apperrors.NewValidationError("denial requires response notes", nil)
	}

	claim, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("claim", nil)
		}
		return nil, err
	}

	if !actor.Admin {
		product, err := s.products.GetByID(ctx, claim.ProductID)
		if err != nil {
			return nil, err
		}
		if actor.SellerID == nil || product.SellerID != *actor.SellerID {
			return nil, apperrors.NewForbidden("claim belongs to another seller")
		}
	}

	if !domain.CanTransition(claim.Status, target) {
		return nil, apperrors.NewValidationError("invalid status transition",
			map[string]any{"from": claim.Status, "to": target})
	}

	if err := s.claims.UpdateStatus(ctx, claim.ID, target, notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("claim", nil)
		}
		return nil, err
	}

	oldStatus := claim.Status
	claim.Status = target
	if notes != nil {
		claim.SellerNotes = notes
	}
	claim.LastStatusUpdateAt = time.Now()

	publishAudit(ctx, s.dispatcher, &actor.UserID, domain.ActionClaimTransitioned, "warranty_claim", claim.ID, origin, map[string]any{
		"old_status": oldStatus,
		"new_status": target,
	})
	return claim, nil
}

// ClaimsForCustomer lists the caller's claims.
func (s *ClaimService) ClaimsForCustomer(ctx context.Context, customerID string, limit, offset int) ([]domain.WarrantyClaim, error) {
	return s.claims.ListByCustomer(ctx, customerID, limit, offset)
}

// ClaimsForSeller lists claims on products sold by the seller.
func (s *ClaimService) ClaimsForSeller(ctx context.Context, sellerID string, limit, offset int) ([]domain.WarrantyClaim, error) {
	return s.claims.ListBySeller(ctx, sellerID, limit, offset)
}

// AllClaims lists every claim for admin oversight.
func (s *ClaimService) AllClaims(ctx context.Context, limit, offset int) ([]domain.WarrantyClaim, error) {
	return s.claims.List(ctx, limit, offset)
}
