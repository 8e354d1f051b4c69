package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/api/dto"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/auth"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/service"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

// ClaimsHandler exposes customer claim endpoints.
type ClaimsHandler struct {
	claims *service.ClaimService
}

// NewClaimsHandler constructs handler.
func NewClaimsHandler(claimService *service.ClaimService) *ClaimsHandler {
	return &ClaimsHandler{claims: claimService}
}

// Create handles POST /claims.
func (h *ClaimsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID == "" {
		return apperrors.NewValidationError("product_id required", nil)
	}

	claim, err := h.claims.CreateClaim(c.Context(), principal.User.ID, req.ProductID, req.IssueDescription, c.IP())
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "claim created", fiber.Map{"claim": dto.NewClaimResponse(claim)})
}

// List handles GET /claims.
func (h *ClaimsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := pagination(c)
	claims, err := h.claims.ClaimsForCustomer(c.Context(), principal.User.ID, limit, offset)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "claims", fiber.Map{"claims": claimResponses(claims)})
}
