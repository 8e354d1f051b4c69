package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/repository"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Seller is non-nil exactly
// when Role is SELLER, so seller-scoped handlers never see a half-built
// identity.
type Principal struct {
	User        *domain.User
	Role        domain.RoleName
	Seller      *domain.Seller
	TokenID     string
	TokenExpiry time.Time
}

// SellerID returns the seller id for SELLER principals.
func (p *Principal) SellerID() (string, bool) {
	if p == nil || p.Seller == nil {
		return "", false
	}
	return p.Seller.ID, true
}

// TokenDenylist reports tokens revoked by logout.
type TokenDenylist interface {
	TokenDenied(ctx context.Context, tokenID string) bool
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	users    repository.UserRepository
	sellers  repository.SellerRepository
	denylist TokenDenylist
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, sellers repository.SellerRepository, denylist TokenDenylist) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, sellers: sellers, denylist: denylist}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewUnauthorized("token expired")
		}
		return apperrors.NewUnauthorized("invalid token")
	}

	if m.denylist != nil && m.denylist.TokenDenied(c.Context(), claims.ID) {
		return apperrors.NewUnauthorized("token revoked")
	}

	user, err := m.users.GetByID(c.Context(), claims.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.MapError(err)
	}
	if !user.IsActive {
		return apperrors.NewForbidden("account deactivated")
	}

	principal := &Principal{
		User:        user,
		Role:        user.Role,
		TokenID:     claims.ID,
		TokenExpiry: claims.ExpiresAt.Time,
	}

	if user.Role == domain.RoleSeller {
		seller, err := m.sellers.GetByUserID(c.Context(), user.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUnauthorized("seller profile missing")
			}
			return apperrors.MapError(err)
		}
		principal.Seller = seller
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
