package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// SellerRepository encapsulates seller persistence, including the atomic
// user+seller provisioning transaction.
type SellerRepository interface {
	// CreateWithUser inserts the SELLER user and its seller profile inside
	// one transaction. Any failure rolls back both rows.
	CreateWithUser(ctx context.Context, user *domain.User, seller *domain.Seller) error
	Update(ctx context.Context, id string, update domain.SellerUpdate) error
	SetContractStatus(ctx context.Context, id string, status domain.ContractStatus) error
	GetByID(ctx context.Context, id string) (*domain.Seller, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Seller, error)
	List(ctx context.Context, limit, offset int) ([]domain.Seller, error)
}

type sellerRepository struct {
	pool *pgxpool.Pool
}

// NewSellerRepository instantiates repository.
func NewSellerRepository(pool *pgxpool.Pool) SellerRepository {
	return &sellerRepository{pool: pool}
}

const sellerColumns = `
        id, user_id, shop_name, business_email, business_phone, business_address,
        contract_status, validation_url, validation_key, created_at, updated_at`

func (r *sellerRepository) CreateWithUser(ctx context.Context, user *domain.User, seller *domain.Seller) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertUser = `
        INSERT INTO users (name, email, password_hash, phone, address, role_id)
        VALUES ($1, $2, $3, $4, $5, (SELECT id FROM roles WHERE name = $6))
        RETURNING id, role_id, is_active, created_at, updated_at`

	if err := tx.QueryRow(ctx, insertUser,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Address,
		domain.RoleSeller,
	).Scan(&user.ID, &user.RoleID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return err
	}
	user.Role = domain.RoleSeller

	const insertSeller = `
        INSERT INTO sellers (user_id, shop_name, business_email, business_phone,
            business_address, contract_status, validation_url, validation_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, insertSeller,
		user.ID,
		seller.ShopName,
		seller.BusinessEmail,
		seller.BusinessPhone,
		seller.BusinessAddr,
		seller.ContractStatus,
		seller.ValidationURL,
		seller.ValidationKey,
	).Scan(&seller.ID, &seller.CreatedAt, &seller.UpdatedAt); err != nil {
		return err
	}
	seller.UserID = user.ID

	return tx.Commit(ctx)
}

func (r *sellerRepository) Update(ctx context.Context, id string, update domain.SellerUpdate) error {
	const query = `
        UPDATE sellers SET
            shop_name = COALESCE($1, shop_name),
            business_email = COALESCE($2, business_email),
            business_phone = COALESCE($3, business_phone),
            business_address = COALESCE($4, business_address),
            validation_url = COALESCE($5, validation_url),
            validation_key = COALESCE($6, validation_key),
            updated_at = NOW()
        WHERE id = $7`

	cmd, err := r.pool.Exec(ctx, query,
		update.ShopName,
		update.BusinessEmail,
		update.BusinessPhone,
		update.BusinessAddr,
		update.ValidationURL,
		update.ValidationKey,
		id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sellerRepository) SetContractStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	const query = `UPDATE sellers SET contract_status = $1, updated_at = NOW() WHERE id = $2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	const query = `SELECT` + sellerColumns + ` FROM sellers WHERE id = $1`
	return r.fetchSingle(ctx, query, id)
}

func (r *sellerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Seller, error) {
	const query = `SELECT` + sellerColumns + ` FROM sellers WHERE user_id = $1`
	return r.fetchSingle(ctx, query, userID)
}

func (r *sellerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Seller, error) {
	var seller domain.Seller
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&seller.ID,
		&seller.UserID,
		&seller.ShopName,
		&seller.BusinessEmail,
		&seller.BusinessPhone,
		&seller.BusinessAddr,
		&seller.ContractStatus,
		&seller.ValidationURL,
		&seller.ValidationKey,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) List(ctx context.Context, limit, offset int) ([]domain.Seller, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `SELECT` + sellerColumns + ` FROM sellers ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Seller
	for rows.Next() {
		var seller domain.Seller
		if err := rows.Scan(
			&seller.ID,
			&seller.UserID,
			&seller.ShopName,
			&seller.BusinessEmail,
			&seller.BusinessPhone,
			&seller.BusinessAddr,
			&seller.ContractStatus,
			&seller.ValidationURL,
			&seller.ValidationKey,
			&seller.CreatedAt,
			&seller.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, seller)
	}
	return result, rows.Err()
}
