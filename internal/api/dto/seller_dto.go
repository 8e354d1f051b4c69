package dto

import (
	"time"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// SellerRegisterRequest provisions a seller account with its user half.
type SellerRegisterRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	ShopName       string  `json:"shop_name"`
	BusinessEmail  string  `json:"business_email"`
	BusinessPhone  string  `json:"business_phone"`
	BusinessAddr   string  `json:"business_address"`
	ContractStatus string  `json:"contract_status,omitempty"`
	ValidationURL  *string `json:"validation_url"`
	ValidationKey  *string `json:"validation_key"`
}

// SellerUpdateRequest carries a partial update; absent fields stay unchanged.
type SellerUpdateRequest struct {
	ShopName      *string `json:"shop_name"`
	BusinessEmail *string `json:"business_email"`
	BusinessPhone *string `json:"business_phone"`
	BusinessAddr  *string `json:"business_address"`
	ValidationURL *string `json:"validation_url"`
	ValidationKey *string `json:"validation_key"`
}

// ContractStatusRequest sets a seller's contract status.
type ContractStatusRequest struct {
	ContractStatus domain.ContractStatus `json:"contract_status"`
}

// SellerResponse is the externally visible seller shape. The validation
// credential is never echoed back.
type SellerResponse struct {
	ID                   string                `json:"id"`
	UserID               string                `json:"user_id"`
	ShopName             string                `json:"shop_name"`
	BusinessEmail        string                `json:"business_email"`
	BusinessPhone        string                `json:"business_phone"`
	BusinessAddr         string                `json:"business_address"`
	ContractStatus       domain.ContractStatus `json:"contract_status"`
	ValidationURL        *string               `json:"validation_url,omitempty"`
	ValidationConfigured bool                  `json:"validation_configured"`
	CreatedAt            time.Time             `json:"created_at"`
}

// NewSellerResponse maps a domain seller.
func NewSellerResponse(seller *domain.Seller) SellerResponse {
	return SellerResponse{
		ID:                   seller.ID,
		UserID:               seller.UserID,
		ShopName:             seller.ShopName,
		BusinessEmail:        seller.BusinessEmail,
		BusinessPhone:        seller.BusinessPhone,
		BusinessAddr:         seller.BusinessAddr,
		ContractStatus:       seller.ContractStatus,
		ValidationURL:        seller.ValidationURL,
		ValidationConfigured: seller.ValidationConfigured(),
		CreatedAt:            seller.CreatedAt,
	}
}
