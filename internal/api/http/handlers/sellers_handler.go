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

// SellersHandler exposes seller self-service endpoints.
type SellersHandler struct {
	auth         *service.AuthService
	sellers      *service.SellerService
	registration *service.RegistrationService
	claims       *service.ClaimService
}

// NewSellersHandler constructs handler.
func NewSellersHandler(authService *service.AuthService, sellerService *service.SellerService, registrationService *service.RegistrationService, claimService *service.ClaimService) *SellersHandler {
	return &SellersHandler{
		auth:         authService,
		sellers:      sellerService,
		registration: registrationService,
		claims:       claimService,
	}
}

// Register handles POST /auth/sellers/register (self-service signup, lands
// in PENDING until an admin activates the contract).
func (h *SellersHandler) Register(c *fiber.Ctx) error {
	var req dto.SellerRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.ShopName == "" {
		return apperrors.NewValidationError("name, email, password, shop_name required", nil)
	}

	input := sellerProvisionInput(req, domain.ContractStatusPending)
	// Self-service signups cannot choose their own contract status.
	input.ContractStatus = domain.ContractStatusPending

	seller, err := h.auth.ProvisionSeller(c.Context(), nil, input, c.IP())
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "seller registered", fiber.Map{"seller": dto.NewSellerResponse(seller)})
}

// UpdateProfile handles PATCH /sellers/me.
func (h *SellersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, sellerID, err := sellerPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.SellerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	seller, err := h.sellers.UpdateProfile(c.Context(), principal.User.ID, sellerID, domain.SellerUpdate{
		ShopName:      req.ShopName,
		BusinessEmail: req.BusinessEmail,
		BusinessPhone: req.BusinessPhone,
		BusinessAddr:  req.BusinessAddr,
		ValidationURL: req.ValidationURL,
		ValidationKey: req.ValidationKey,
	}, c.IP())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "seller updated", fiber.Map{"seller": dto.NewSellerResponse(seller)})
}

// Deactivate handles POST /sellers/me/deactivate. The only contract
// transition a seller may apply to itself.
func (h *SellersHandler) Deactivate(c *fiber.Ctx) error {
	principal, sellerID, err := sellerPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.sellers.DeactivateOwnContract(c.Context(), principal.User.ID, sellerID, c.IP()); err != nil {
		return err
	}
	return success(c, http.StatusOK, "contract deactivated", nil)
}

// ListProducts handles GET /sellers/me/products.
func (h *SellersHandler) ListProducts(c *fiber.Ctx) error {
	_, sellerID, err := sellerPrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := pagination(c)
	products, err := h.registration.ProductsForSeller(c.Context(), sellerID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, dto.NewProductResponse(&products[i]))
	}
	return success(c, http.StatusOK, "products", fiber.Map{"products": items})
}

// ListClaims handles GET /sellers/me/claims.
func (h *SellersHandler) ListClaims(c *fiber.Ctx) error {
	_, sellerID, err := sellerPrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := pagination(c)
	claims, err := h.claims.ClaimsForSeller(c.Context(), sellerID, limit, offset)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "claims", fiber.Map{"claims": claimResponses(claims)})
}

// TransitionClaim handles PATCH /sellers/me/claims/:id.
func (h *SellersHandler) TransitionClaim(c *fiber.Ctx) error {
	principal, sellerID, err := sellerPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.TransitionClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	claim, err := h.claims.TransitionClaim(c.Context(), service.ClaimActor{
		UserID:   principal.User.ID,
		SellerID: &sellerID,
	}, c.Params("id"), req.Status, req.Notes, c.IP())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "claim updated", fiber.Map{"claim": dto.NewClaimResponse(claim)})
}

func sellerPrincipal(c *fiber.Ctx) (*auth.Principal, string, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, "", apperrors.NewUnauthorized("authentication required")
	}
	sellerID, ok := principal.SellerID()
	if !ok {
		return nil, "", apperrors.NewForbidden("seller account required")
	}
	return principal, sellerID, nil
}

func sellerProvisionInput(req dto.SellerRegisterRequest, defaultStatus domain.ContractStatus) service.SellerProvisionInput {
	status := domain.ContractStatus(req.ContractStatus)
	if status == "" {
		status = defaultStatus
	}
	return service.SellerProvisionInput{
		User: service.CustomerRegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
			Address:  req.Address,
		},
		ShopName:       req.ShopName,
		BusinessEmail:  req.BusinessEmail,
		BusinessPhone:  req.BusinessPhone,
		BusinessAddr:   req.BusinessAddr,
		ContractStatus: status,
		ValidationURL:  req.ValidationURL,
		ValidationKey:  req.ValidationKey,
	}
}

func claimResponses(claims []domain.WarrantyClaim) []dto.ClaimResponse {
	items := make([]dto.ClaimResponse, 0, len(claims))
	for i := range claims {
		items = append(items, dto.NewClaimResponse(&claims[i]))
	}
	return items
}
