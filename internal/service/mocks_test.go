package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/validation"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, update domain.UserUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockSellerRepository is a mock implementation of repository.SellerRepository.
type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) CreateWithUser(ctx context.Context, user *domain.User, seller *domain.Seller) error {
	args := m.Called(ctx, user, seller)
	return args.Error(0)
}

func (m *MockSellerRepository) Update(ctx context.Context, id string, update domain.SellerUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockSellerRepository) SetContractStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockSellerRepository) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Seller, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seller), args.Error(1)
}

func (m *MockSellerRepository) List(ctx context.Context, limit, offset int) ([]domain.Seller, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seller), args.Error(1)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.RegisteredProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.RegisteredProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisteredProduct), args.Error(1)
}

func (m *MockProductRepository) GetByOrder(ctx context.Context, customerID, sellerID, orderID string) (*domain.RegisteredProduct, error) {
	args := m.Called(ctx, customerID, sellerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisteredProduct), args.Error(1)
}

func (m *MockProductRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]domain.RegisteredProduct, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisteredProduct), args.Error(1)
}

func (m *MockProductRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]domain.RegisteredProduct, error) {
	args := m.Called(ctx, sellerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisteredProduct), args.Error(1)
}

// MockClaimRepository is a mock implementation of repository.ClaimRepository.
type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) Create(ctx context.Context, claim *domain.WarrantyClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockClaimRepository) UpdateStatus(ctx context.Context, id string, status domain.ClaimStatus, notes *string) error {
	args := m.Called(ctx, id, status, notes)
	return args.Error(0)
}

func (m *MockClaimRepository) GetByID(ctx context.Context, id string) (*domain.WarrantyClaim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarrantyClaim), args.Error(1)
}

func (m *MockClaimRepository) GetOpenByProduct(ctx context.Context, productID string) (*domain.WarrantyClaim, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarrantyClaim), args.Error(1)
}

func (m *MockClaimRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]domain.WarrantyClaim, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarrantyClaim), args.Error(1)
}

func (m *MockClaimRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]domain.WarrantyClaim, error) {
	args := m.Called(ctx, sellerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarrantyClaim), args.Error(1)
}

func (m *MockClaimRepository) List(ctx context.Context, limit, offset int) ([]domain.WarrantyClaim, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarrantyClaim), args.Error(1)
}

// MockAuditRepository is a mock implementation of repository.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.LogEntry, error) {
	args := m.Called(ctx, entityType, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogEntry), args.Error(1)
}

func (m *MockAuditRepository) List(ctx context.Context, limit, offset int) ([]domain.LogEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogEntry), args.Error(1)
}

// MockValidationClient is a mock implementation of validation.Client.
type MockValidationClient struct {
	mock.Mock
}

func (m *MockValidationClient) ValidatePurchase(ctx context.Context, baseURL, credential string, query validation.PurchaseQuery) (*validation.PurchaseDetails, error) {
	args := m.Called(ctx, baseURL, credential, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*validation.PurchaseDetails), args.Error(1)
}
