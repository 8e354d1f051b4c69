package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/api/dto"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/auth"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/service"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

// UsersHandler exposes registration, login and profile endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Phone == "" {
		return apperrors.NewValidationError("name, email, password, phone required", nil)
	}

	user, token, exp, err := h.auth.RegisterCustomer(c.Context(), service.CustomerRegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	}, c.IP())
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "registered", fiber.Map{
		"user": dto.NewUserResponse(user),
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Login handles POST /auth/login for every role.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password, c.IP())
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "logged in", fiber.Map{
		"user": dto.NewUserResponse(user),
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Logout handles POST /auth/logout.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.auth.Logout(c.Context(), principal.User.ID, principal.TokenID, principal.TokenExpiry, c.IP()); err != nil {
		return err
	}
	return success(c, http.StatusOK, "logged out", nil)
}

// Profile handles GET /users/me.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	data := fiber.Map{"user": dto.NewUserResponse(principal.User)}
	if principal.Role == domain.RoleSeller && principal.Seller != nil {
		data["seller"] = dto.NewSellerResponse(principal.Seller)
	}
	return success(c, http.StatusOK, "profile", data)
}

// UpdateProfile handles PATCH /users/me; only supplied fields change.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.UpdateProfile(c.Context(), principal.User.ID, domain.UserUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}, c.IP())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "profile updated", fiber.Map{"user": dto.NewUserResponse(user)})
}
