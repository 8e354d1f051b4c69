package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/auth"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/config"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/events"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/persistence"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/repository"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

// AuthService coordinates registration, login and seller provisioning.
type AuthService struct {
	users      repository.UserRepository
	sellers    repository.SellerRepository
	redis      *persistence.Redis
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	SellerRepo repository.SellerRepository
	Redis      *persistence.Redis
	Dispatcher events.Dispatcher
}

// CustomerRegisterInput describes self-registration payload.
type CustomerRegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// SellerProvisionInput bundles the user and seller halves of provisioning.
type SellerProvisionInput struct {
	User           CustomerRegisterInput
	ShopName       string
	BusinessEmail  string
	BusinessPhone  string
	BusinessAddr   string
	ContractStatus domain.ContractStatus
	ValidationURL  *string
	ValidationKey  *string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sellers:    deps.SellerRepo,
		redis:      deps.Redis,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterCustomer creates a new CUSTOMER account and logs it in.
func (s *AuthService) RegisterCustomer(ctx context.Context, input CustomerRegisterInput, origin string) (*domain.User, string, time.Time, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err, repository.ConstraintUserEmail) {
			return nil, "", time.Time{}, apperrors.NewConflict("email already registered",
				map[string]any{"field": "email"})
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role, nil)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	publishAudit(ctx, s.dispatcher, &user.ID, domain.ActionUserRegistered, "user", user.ID, origin, map[string]any{
		"email": user.Email,
	})
	return user, token, exp, nil
}

// ProvisionSeller creates a SELLER user and its seller profile in one
// transaction. actorID is nil for self-service signup; admins pass their
// own id. Returns the new seller.
func (s *AuthService) ProvisionSeller(ctx context.Context, actorID *string, input SellerProvisionInput, origin string) (*domain.Seller, error) {
	hash, err := auth.HashPassword(input.User.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	contractStatus := input.ContractStatus
	if contractStatus == "" {
		contractStatus = domain.ContractStatusPending
	}
	if !contractStatus.Valid() {
		return nil, apperrors.NewValidationError("invalid contract status", nil)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.User.Name),
		Email:        normalizeEmail(input.User.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.User.Phone),
		Address:      strings.TrimSpace(input.User.Address),
	}
	seller := &domain.Seller{
		ShopName:       strings.TrimSpace(input.ShopName),
		BusinessEmail:  normalizeEmail(input.BusinessEmail),
		BusinessPhone:  strings.TrimSpace(input.BusinessPhone),
		BusinessAddr:   strings.TrimSpace(input.BusinessAddr),
		ContractStatus: contractStatus,
		ValidationURL:  input.ValidationURL,
		ValidationKey:  input.ValidationKey,
	}

	if err := s.sellers.CreateWithUser(ctx, user, seller); err != nil {
		if repository.IsUniqueViolation(err, repository.ConstraintUserEmail) {
			return nil, apperrors.NewConflict("email already registered",
				map[string]any{"field": "email"})
		}
		return nil, apperrors.NewInternalError(err)
	}

	auditActor := actorID
	if auditActor == nil {
		auditActor = &user.ID
	}
	publishAudit(ctx, s.dispatcher, auditActor, domain.ActionSellerProvisioned, "seller", seller.ID, origin, map[string]any{
		"user_id":         user.ID,
		"shop_name":       seller.ShopName,
		"contract_status": seller.ContractStatus,
	})
	return seller, nil
}

// Login authenticates any account; SELLER tokens carry the seller id.
func (s *AuthService) Login(ctx context.Context, email, password, origin string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if !user.IsActive {
		return nil, "", time.Time{}, apperrors.NewForbidden("account deactivated")
	}

	var sellerID *string
	if user.Role == domain.RoleSeller {
		seller, err := s.sellers.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		sellerID = &seller.ID
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role, sellerID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	publishAudit(ctx, s.dispatcher, &user.ID, domain.ActionUserLoggedIn, "user", user.ID, origin, nil)
	return user, token, exp, nil
}

// Logout denylists the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, userID, tokenID string, tokenExpiry time.Time, origin string) error {
	ttl := time.Until(tokenExpiry)
	if err := s.redis.DenyToken(ctx, tokenID, ttl); err != nil {
		return apperrors.NewInternalError(err)
	}
	publishAudit(ctx, s.dispatcher, &userID, domain.ActionUserLoggedOut, "user", userID, origin, nil)
	return nil
}

// UpdateProfile applies a partial profile update for the caller.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update domain.UserUpdate, origin string) (*domain.User, error) {
	if update.Name == nil && update.Phone == nil && update.Address == nil {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}
	if err := s.users.Update(ctx, userID, update); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	publishAudit(ctx, s.dispatcher, &userID, domain.ActionUserUpdated, "user", userID, origin, nil)
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
