package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// ProductRepository encapsulates registered-product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.RegisteredProduct) error
	GetByID(ctx context.Context, id string) (*domain.RegisteredProduct, error)
	// GetByOrder looks up the uniqueness tuple (customer, seller, order id).
	GetByOrder(ctx context.Context, customerID, sellerID, orderID string) (*domain.RegisteredProduct, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]domain.RegisteredProduct, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]domain.RegisteredProduct, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository instantiates repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `
        id, customer_user_id, seller_id, seller_order_id, phone_at_sale,
        product_name, price, purchase_date, warranty_valid_until, created_at`

func (r *productRepository) Create(ctx context.Context, product *domain.RegisteredProduct) error {
	const query = `
        INSERT INTO registered_products (customer_user_id, seller_id, seller_order_id,
            phone_at_sale, product_name, price, purchase_date, warranty_valid_until)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		product.CustomerID,
		product.SellerID,
		product.SellerOrderID,
		product.PhoneAtSale,
		product.ProductName,
		product.Price,
		product.PurchaseDate,
		product.WarrantyValidUntil,
	).Scan(&product.ID, &product.CreatedAt)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.RegisteredProduct, error) {
	const query = `SELECT` + productColumns + ` FROM registered_products WHERE id = $1`
	return r.fetchSingle(ctx, r.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) GetByOrder(ctx context.Context, customerID, sellerID, orderID string) (*domain.RegisteredProduct, error) {
	const query = `
        SELECT` + productColumns + `
        FROM registered_products
        WHERE customer_user_id = $1 AND seller_id = $2 AND seller_order_id = $3`
	return r.fetchSingle(ctx, r.pool.QueryRow(ctx, query, customerID, sellerID, orderID))
}

func (r *productRepository) fetchSingle(_ context.Context, row pgx.Row) (*domain.RegisteredProduct, error) {
	var product domain.RegisteredProduct
	if err := row.Scan(
		&product.ID,
		&product.CustomerID,
		&product.SellerID,
		&product.SellerOrderID,
		&product.PhoneAtSale,
		&product.ProductName,
		&product.Price,
		&product.PurchaseDate,
		&product.WarrantyValidUntil,
		&product.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]domain.RegisteredProduct, error) {
	const query = `
        SELECT` + productColumns + `
        FROM registered_products WHERE customer_user_id = $1
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, customerID, limit, offset)
}

func (r *productRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]domain.RegisteredProduct, error) {
	const query = `
        SELECT` + productColumns + `
        FROM registered_products WHERE seller_id = $1
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, sellerID, limit, offset)
}

func (r *productRepository) list(ctx context.Context, query, ownerID string, limit, offset int) ([]domain.RegisteredProduct, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RegisteredProduct
	for rows.Next() {
		var product domain.RegisteredProduct
		if err := rows.Scan(
			&product.ID,
			&product.CustomerID,
			&product.SellerID,
			&product.SellerOrderID,
			&product.PhoneAtSale,
			&product.ProductName,
			&product.Price,
			&product.PurchaseDate,
			&product.WarrantyValidUntil,
			&product.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}
