package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/validation"
	apperrors "github.com/SmartMunimJi/Smartmunimji-sub000/pkg/util"
)

func activeSeller() *domain.Seller {
	url := "https://shop.example.com"
	key := "secret-key"
	return &domain.Seller{
		ID:             "seller-1",
		UserID:         "seller-user-1",
		ShopName:       "Example Shop",
		ContractStatus: domain.ContractStatusActive,
		ValidationURL:  &url,
		ValidationKey:  &key,
	}
}

func testCustomer() *domain.User {
	return &domain.User{
		ID:    "customer-1",
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "+911234567890",
		Role:  domain.RoleCustomer,
	}
}

func newRegistrationFixture() (*RegistrationService, *MockProductRepository, *MockSellerRepository, *MockValidationClient) {
	products := new(MockProductRepository)
	sellers := new(MockSellerRepository)
	validator := new(MockValidationClient)
	svc := NewRegistrationService(RegistrationDependencies{
		ProductRepo: products,
		SellerRepo:  sellers,
		Validator:   validator,
	})
	return svc, products, sellers, validator
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestRegisterProductFutureDate(t *testing.T) {
	svc, products, _, _ := newRegistrationFixture()

	_, err := svc.RegisterProduct(context.Background(), testCustomer(), ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Now().AddDate(0, 0, 2),
	}, "127.0.0.1")

	assertCode(t, err, "VALIDATION_FAILED")
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterProductDuplicate(t *testing.T) {
	svc, products, _, _ := newRegistrationFixture()
	products.On("GetByOrder", mock.Anything, "customer-1", "seller-1", "ORD-1").
		Return(&domain.RegisteredProduct{ID: "existing"}, nil)

	_, err := svc.RegisterProduct(context.Background(), testCustomer(), ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Now().AddDate(0, -1, 0),
	}, "127.0.0.1")

	assertCode(t, err, "CONFLICT")
}

func TestRegisterProductSellerNotFound(t *testing.T) {
	svc, products, sellers, _ := newRegistrationFixture()
	products.On("GetByOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, pgx.ErrNoRows)
	sellers.On("GetByID", mock.Anything, "seller-1").Return(nil, pgx.ErrNoRows)

	_, err := svc.RegisterProduct(context.Background(), testCustomer(), ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Now().AddDate(0, -1, 0),
	}, "127.0.0.1")

	assertCode(t, err, "NOT_FOUND")
}

func TestRegisterProductSellerNotActive(t *testing.T) {
	svc, products, sellers, _ := newRegistrationFixture()
	seller := activeSeller()
	seller.ContractStatus = domain.ContractStatusDeactivated

	products.On("GetByOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, pgx.ErrNoRows)
	sellers.On("GetByID", mock.Anything, "seller-1").Return(seller, nil)

	_, err := svc.RegisterProduct(context.Background(), testCustomer(), ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Now().AddDate(0, -1, 0),
	}, "127.0.0.1")

	assertCode(t, err, "SELLER_NOT_ACTIVE")
}

func TestRegisterProductSellerNotConfigured(t *testing.T) {
	svc, products, sellers, _ := newRegistrationFixture()
	seller := activeSeller()
	seller.ValidationKey = nil

	products.On("GetByOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, pgx.ErrNoRows)
	sellers.On("GetByID", mock.Anything, "seller-1").Return(seller, nil)

	_, err := svc.RegisterProduct(context.Background(), testCustomer(), ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Now().AddDate(0, -1, 0),
	}, "127.0.0.1")

	assertCode(t, err, "SELLER_NOT_CONFIGURED")
}

func TestRegisterProductValidationFailureWritesNothing(t *testing.T) {
	svc, products, sellers, validator := newRegistrationFixture()

	products.On("GetByOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, pgx.ErrNoRows)
	sellers.On("GetByID", mock.Anything, "seller-1").Return(activeSeller(), nil)
	validator.On("ValidatePurchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &validation.Error{StatusCode: 404, Message: "order not found"})

	_, err := svc.RegisterProduct(context.Background(), testCustomer(), ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Now().AddDate(0, -1, 0),
	}, "127.0.0.1")

	assertCode(t, err, "FAILED_DEPENDENCY")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "order not found", domainErr.Details["seller_message"])
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterProductSuccessUsesAuthoritativeValues(t *testing.T) {
	svc, products, sellers, validator := newRegistrationFixture()
	customer := testCustomer()
	price := 499.0

	products.On("GetByOrder", mock.Anything, "customer-1", "seller-1", "ORD-1").
		Return(nil, pgx.ErrNoRows)
	sellers.On("GetByID", mock.Anything, "seller-1").Return(activeSeller(), nil)
	validator.On("ValidatePurchase", mock.Anything, "https://shop.example.com", "secret-key", validation.PurchaseQuery{
		OrderID:       "ORD-1",
		CustomerPhone: customer.Phone,
		PurchaseDate:  "2024-07-20",
	}).Return(&validation.PurchaseDetails{
		PurchaseDate:         "2024-07-20",
		WarrantyPeriodMonths: 12,
		CustomerPhoneNumber:  "+911111111111",
		ProductName:          "Mixer Grinder",
		Price:                &price,
	}, nil)
	products.On("Create", mock.Anything, mock.AnythingOfType("*domain.RegisteredProduct")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.RegisteredProduct).ID = "product-1"
		}).
		Return(nil)

	product, err := svc.RegisterProduct(context.Background(), customer, ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
	}, "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "product-1", product.ID)
	assert.Equal(t, "Mixer Grinder", product.ProductName)
	assert.Equal(t, "+911111111111", product.PhoneAtSale)
	assert.Equal(t, &price, product.Price)
	assert.Equal(t, "2025-07-20", product.WarrantyValidUntil.Format(DateLayout))
}

func TestRegisterProductInsertRaceSurfacesConflict(t *testing.T) {
	svc, products, sellers, validator := newRegistrationFixture()

	products.On("GetByOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, pgx.ErrNoRows)
	sellers.On("GetByID", mock.Anything, "seller-1").Return(activeSeller(), nil)
	validator.On("ValidatePurchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&validation.PurchaseDetails{
			PurchaseDate:         "2024-07-20",
			WarrantyPeriodMonths: 12,
			ProductName:          "Mixer Grinder",
		}, nil)
	products.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "registered_products_customer_seller_order_key",
	})

	_, err := svc.RegisterProduct(context.Background(), testCustomer(), ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
	}, "127.0.0.1")

	assertCode(t, err, "CONFLICT")
}

func TestRegisterProductBadAuthoritativeAnswer(t *testing.T) {
	svc, products, sellers, validator := newRegistrationFixture()

	products.On("GetByOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, pgx.ErrNoRows)
	sellers.On("GetByID", mock.Anything, "seller-1").Return(activeSeller(), nil)
	validator.On("ValidatePurchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&validation.PurchaseDetails{
			PurchaseDate:         "20/07/2024",
			WarrantyPeriodMonths: 12,
		}, nil)

	_, err := svc.RegisterProduct(context.Background(), testCustomer(), ProductRegisterInput{
		SellerID:      "seller-1",
		SellerOrderID: "ORD-1",
		PurchaseDate:  time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
	}, "127.0.0.1")

	assertCode(t, err, "FAILED_DEPENDENCY")
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
