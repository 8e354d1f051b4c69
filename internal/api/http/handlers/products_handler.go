package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/api/dto"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/auth"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/service"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

// ProductsHandler exposes customer product-registration endpoints.
type ProductsHandler struct {
	registration *service.RegistrationService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(registrationService *service.RegistrationService) *ProductsHandler {
	return &ProductsHandler{registration: registrationService}
}

// Register handles POST /products.
func (h *ProductsHandler) Register(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.RegisterProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.SellerID == "" || req.SellerOrderID == "" || req.PurchaseDate == "" {
		return apperrors.NewValidationError("seller_id, seller_order_id, purchase_date required", nil)
	}
	purchaseDate, err := time.Parse(service.DateLayout, req.PurchaseDate)
	if err != nil {
		return apperrors.NewValidationError("purchase_date must be YYYY-MM-DD", nil)
	}

	product, err := h.registration.RegisterProduct(c.Context(), principal.User, service.ProductRegisterInput{
		SellerID:      req.SellerID,
		SellerOrderID: req.SellerOrderID,
		PurchaseDate:  purchaseDate,
	}, c.IP())
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "product registered", fiber.Map{"product": dto.NewProductResponse(product)})
}

// List handles GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := pagination(c)
	products, err := h.registration.ProductsForCustomer(c.Context(), principal.User.ID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, dto.NewProductResponse(&products[i]))
	}
	return success(c, http.StatusOK, "products", fiber.Map{"products": items})
}
