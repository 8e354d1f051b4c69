package dto

import (
	"time"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// RegisterProductRequest is the customer's claimed purchase.
type RegisterProductRequest struct {
	SellerID      string `json:"seller_id"`
	SellerOrderID string `json:"seller_order_id"`
	PurchaseDate  string `json:"purchase_date"`
}

// ProductResponse is the externally visible registered product.
type ProductResponse struct {
	ID                 string    `json:"id"`
	SellerID           string    `json:"seller_id"`
	SellerOrderID      string    `json:"seller_order_id"`
	ProductName        string    `json:"product_name"`
	Price              *float64  `json:"price,omitempty"`
	PurchaseDate       string    `json:"purchase_date"`
	WarrantyValidUntil string    `json:"warranty_valid_until"`
	WarrantyActive     bool      `json:"warranty_active"`
	CreatedAt          time.Time `json:"created_at"`
}

const dateLayout = "2006-01-02"

// NewProductResponse maps a domain product.
func NewProductResponse(product *domain.RegisteredProduct) ProductResponse {
	return ProductResponse{
		ID:                 product.ID,
		SellerID:           product.SellerID,
		SellerOrderID:      product.SellerOrderID,
		ProductName:        product.ProductName,
		Price:              product.Price,
		PurchaseDate:       product.PurchaseDate.Format(dateLayout),
		WarrantyValidUntil: product.WarrantyValidUntil.Format(dateLayout),
		WarrantyActive:     product.WarrantyActiveOn(time.Now()),
		CreatedAt:          product.CreatedAt,
	}
}
