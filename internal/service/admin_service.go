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

// AdminService covers administrative oversight of accounts.
type AdminService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewAdminService constructs the service.
func NewAdminService(users repository.UserRepository, dispatcher events.Dispatcher) *AdminService {
	return &AdminService{users: users, dispatcher: dispatcher}
}

// ListUsers returns accounts for admin oversight.
func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, limit, offset)
}

// SetUserActive toggles the active flag; accounts are never hard-deleted.
func (s *AdminService) SetUserActive(ctx context.Context, actorID, userID string, active bool, origin string) error {
	if err := s.users.SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	publishAudit(ctx, s.dispatcher, &actorID, domain.ActionUserActivationSet, "user", userID, origin, map[string]any{
		"active": active,
	})
	return nil
}
