package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/events"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/repository"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

// SellerService manages seller profiles and contract state.
type SellerService struct {
	sellers    repository.SellerRepository
	dispatcher events.Dispatcher
}

// NewSellerService constructs the service.
func NewSellerService(sellers repository.SellerRepository, dispatcher events.Dispatcher) *SellerService {
	return &SellerService{sellers: sellers, dispatcher: dispatcher}
}

// UpdateProfile applies a partial update to the seller's own profile.
func (s *SellerService) UpdateProfile(ctx context.Context, actorID, sellerID string, update domain.SellerUpdate, origin string) (*domain.Seller, error) {
	if err := s.sellers.Update(ctx, sellerID, update); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("seller", nil)
		}
		return nil, err
	}
	seller, err := s.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	publishAudit(ctx, s.dispatcher, &actorID, domain.ActionSellerUpdated, "seller", sellerID, origin, nil)
	return seller, nil
}

// DeactivateOwnContract is the only contract transition a seller may apply
// to itself.
func (s *SellerService) DeactivateOwnContract(ctx context.Context, actorID, sellerID, origin string) error {
	return s.setContractStatus(ctx, actorID, sellerID, domain.ContractStatusDeactivated, origin)
}

// SetContractStatus applies any contract transition; admin only.
func (s *SellerService) SetContractStatus(ctx context.Context, actorID, sellerID string, status domain.ContractStatus, origin string) error {
	if !status.Valid() {
		return apperrors.NewValidationError("invalid contract status", nil)
	}
	return s.setContractStatus(ctx, actorID, sellerID, status, origin)
}

func (s *SellerService) setContractStatus(ctx context.Context, actorID, sellerID string, status domain.ContractStatus, origin string) error {
	if err := s.sellers.SetContractStatus(ctx, sellerID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("seller", nil)
		}
		return err
	}
	publishAudit(ctx, s.dispatcher, &actorID, domain.ActionContractStatusSet, "seller", sellerID, origin, map[string]any{
		"contract_status": status,
	})
	return nil
}

// GetByID fetches a seller profile.
func (s *SellerService) GetByID(ctx context.Context, sellerID string) (*domain.Seller, error) {
	seller, err := s.sellers.GetByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("seller", nil)
		}
		return nil, err
	}
	return seller, nil
}

// List returns seller profiles for admin oversight.
func (s *SellerService) List(ctx context.Context, limit, offset int) ([]domain.Seller, error) {
	return s.sellers.List(ctx, limit, offset)
}
