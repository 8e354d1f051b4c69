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

// AdminHandler exposes administrative oversight endpoints.
type AdminHandler struct {
	authSvc *service.AuthService
	admin   *service.AdminService
	sellers *service.SellerService
	claims  *service.ClaimService
	audit   *service.AuditService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService, adminService *service.AdminService, sellerService *service.SellerService, claimService *service.ClaimService, auditService *service.AuditService) *AdminHandler {
	return &AdminHandler{
		authSvc: authService,
		admin:   adminService,
		sellers: sellerService,
		claims:  claimService,
		audit:   auditService,
	}
}

// CreateSeller handles POST /admin/sellers.
func (h *AdminHandler) CreateSeller(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SellerRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.ShopName == "" {
		return apperrors.NewValidationError("name, email, password, shop_name required", nil)
	}

	seller, err := h.authSvc.ProvisionSeller(c.Context(), &principal.User.ID, sellerProvisionInput(req, domain.ContractStatusActive), c.IP())
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "seller provisioned", fiber.Map{"seller": dto.NewSellerResponse(seller)})
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	users, err := h.admin.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return success(c, http.StatusOK, "users", fiber.Map{"users": items})
}

// SetUserActive handles PATCH /admin/users/:id/active.
func (h *AdminHandler) SetUserActive(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req struct {
		Active *bool `json:"active"`
	}
	if err := c.BodyParser(&req); err != nil || req.Active == nil {
		return apperrors.NewValidationError("active required", nil)
	}

	if err := h.admin.SetUserActive(c.Context(), principal.User.ID, c.Params("id"), *req.Active, c.IP()); err != nil {
		return err
	}
	return success(c, http.StatusOK, "user updated", nil)
}

// ListSellers handles GET /admin/sellers.
func (h *AdminHandler) ListSellers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	sellers, err := h.sellers.List(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.SellerResponse, 0, len(sellers))
	for i := range sellers {
		items = append(items, dto.NewSellerResponse(&sellers[i]))
	}
	return success(c, http.StatusOK, "sellers", fiber.Map{"sellers": items})
}

// SetContractStatus handles PATCH /admin/sellers/:id/contract.
func (h *AdminHandler) SetContractStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ContractStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.sellers.SetContractStatus(c.Context(), principal.User.ID, c.Params("id"), req.ContractStatus, c.IP()); err != nil {
		return err
	}
	return success(c, http.StatusOK, "contract status updated", nil)
}

// ListClaims handles GET /admin/claims.
func (h *AdminHandler) ListClaims(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	claims, err := h.claims.AllClaims(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "claims", fiber.Map{"claims": claimResponses(claims)})
}

// TransitionClaim handles PATCH /admin/claims/:id. Admin bypasses seller
// ownership.
func (h *AdminHandler) TransitionClaim(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.TransitionClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	claim, err := h.claims.TransitionClaim(c.Context(), service.ClaimActor{
		UserID: principal.User.ID,
		Admin:  true,
	}, c.Params("id"), req.Status, req.Notes, c.IP())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "claim updated", fiber.Map{"claim": dto.NewClaimResponse(claim)})
}

// AuditTrail handles GET /admin/audit.
func (h *AdminHandler) AuditTrail(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")

	var (
		entries []domain.LogEntry
		err     error
	)
	if entityType != "" && entityID != "" {
		entries, err = h.audit.ForEntity(c.Context(), entityType, entityID, limit, offset)
	} else {
		entries, err = h.audit.Recent(c.Context(), limit, offset)
	}
	if err != nil {
		return err
	}
	items := make([]dto.AuditEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewAuditEntryResponse(&entries[i]))
	}
	return success(c, http.StatusOK, "audit entries", fiber.Map{"entries": items})
}
