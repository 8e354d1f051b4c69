package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/events"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/repository"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/validation"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

// DateLayout is the wire format for purchase dates.
const DateLayout = "2006-01-02"

// RegistrationService runs the product-registration workflow: dedupe,
// seller eligibility, external validation, warranty computation, persist.
type RegistrationService struct {
	products   repository.ProductRepository
	sellers    repository.SellerRepository
	validator  validation.Client
	dispatcher events.Dispatcher
}

// RegistrationDependencies bundles collaborators for the workflow.
type RegistrationDependencies struct {
	ProductRepo repository.ProductRepository
	SellerRepo  repository.SellerRepository
	Validator   validation.Client
	Dispatcher  events.Dispatcher
}

// ProductRegisterInput is the customer's claim; only a lookup key. The
// seller's answer is authoritative for every stored field.
type ProductRegisterInput struct {
	SellerID      string
	SellerOrderID string
	PurchaseDate  time.Time
}

// NewRegistrationService constructs the service.
func NewRegistrationService(deps RegistrationDependencies) *RegistrationService {
	return &RegistrationService{
		products:   deps.ProductRepo,
		sellers:    deps.SellerRepo,
		validator:  deps.Validator,
		dispatcher: deps.Dispatcher,
	}
}

// RegisterProduct validates a claimed purchase against the seller's system
// and persists the registered product. No write happens before the final
// insert, so a retry after a validation failure is safe.
func (s *RegistrationService) RegisterProduct(ctx context.Context, customer *domain.User, input ProductRegisterInput, origin string) (*domain.RegisteredProduct, error) {
	if startOfDay(input.PurchaseDate).After(startOfDay(time.Now())) {
		return nil, apperrors.NewValidationError("purchase date cannot be in the future", nil)
	}

	if _, err := s.products.GetByOrder(ctx, customer.ID, input.SellerID, input.SellerOrderID); err == nil {
		return nil, apperrors.NewConflict("product already registered for this order", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	seller, err := s.sellers.GetByID(ctx, input.SellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("seller", nil)
		}
		return nil, err
	}
	if seller.ContractStatus != domain.ContractStatusActive {
		return nil, apperrors.NewDomainError("SELLER_NOT_ACTIVE",
			"seller is not accepting registrations", http.StatusBadRequest, nil)
	}
	if !seller.ValidationConfigured() {
		return nil, apperrors.NewDomainError("SELLER_NOT_CONFIGURED",
			"seller has no validation endpoint configured", http.StatusBadRequest, nil)
	}

	details, err := s.validator.ValidatePurchase(ctx, *seller.ValidationURL, *seller.ValidationKey, validation.PurchaseQuery{
		OrderID:       input.SellerOrderID,
		CustomerPhone: customer.Phone,
		PurchaseDate:  input.PurchaseDate.Format(DateLayout),
	})
	if err != nil {
		var valErr *validation.Error
		if errors.As(err, &valErr) && valErr.Message != "" {
			return nil, apperrors.NewFailedDependency("seller could not validate the purchase",
				map[string]any{"seller_message": valErr.Message})
		}
		return nil, apperrors.NewFailedDependency("seller validation unavailable", nil)
	}

	authoritativeDate, err := time.Parse(DateLayout, details.PurchaseDate)
	if err != nil {
		return nil, apperrors.NewFailedDependency("seller returned an invalid purchase date", nil)
	}
	if details.WarrantyPeriodMonths <= 0 {
		return nil, apperrors.NewFailedDependency("seller returned an invalid warranty period", nil)
	}

	product := &domain.RegisteredProduct{
		CustomerID:         customer.ID,
		SellerID:           seller.ID,
		SellerOrderID:      input.SellerOrderID,
		PhoneAtSale:        details.CustomerPhoneNumber,
		ProductName:        strings.TrimSpace(details.ProductName),
		Price:              details.Price,
		PurchaseDate:       authoritativeDate,
		WarrantyValidUntil: domain.WarrantyExpiry(authoritativeDate, details.WarrantyPeriodMonths),
	}
	if err := s.products.Create(ctx, product); err != nil {
		// The unique constraint closes the race two concurrent registrations
		// open between the dedupe read and this insert.
		if repository.IsUniqueViolation(err, repository.ConstraintProductOrder) {
			return nil, apperrors.NewConflict("product already registered for this order", nil)
		}
		return nil, err
	}

	publishAudit(ctx, s.dispatcher, &customer.ID, domain.ActionProductRegistered, "registered_product", product.ID, origin, map[string]any{
		"seller_id":            seller.ID,
		"seller_order_id":      product.SellerOrderID,
		"warranty_valid_until": product.WarrantyValidUntil.Format(DateLayout),
	})
	return product, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ProductsForCustomer lists the customer's registered products.
func (s *RegistrationService) ProductsForCustomer(ctx context.Context, customerID string, limit, offset int) ([]domain.RegisteredProduct, error) {
	return s.products.ListByCustomer(ctx, customerID, limit, offset)
}

// ProductsForSeller lists products registered against a seller.
func (s *RegistrationService) ProductsForSeller(ctx context.Context, sellerID string, limit, offset int) ([]domain.RegisteredProduct, error) {
	return s.products.ListBySeller(ctx, sellerID, limit, offset)
}
