package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// ClaimRepository encapsulates warranty-claim persistence.
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.WarrantyClaim) error
	UpdateStatus(ctx context.Context, id string, status domain.ClaimStatus, notes *string) error
	GetByID(ctx context.Context, id string) (*domain.WarrantyClaim, error)
	// GetOpenByProduct returns the non-terminal claim on a product, if any.
	GetOpenByProduct(ctx context.Context, productID string) (*domain.WarrantyClaim, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]domain.WarrantyClaim, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]domain.WarrantyClaim, error)
	List(ctx context.Context, limit, offset int) ([]domain.WarrantyClaim, error)
}

type claimRepository struct {
	pool *pgxpool.Pool
}

// NewClaimRepository instantiates repository.
func NewClaimRepository(pool *pgxpool.Pool) ClaimRepository {
	return &claimRepository{pool: pool}
}

const claimColumns = `
        c.id, c.registered_product_id, c.customer_user_id, c.issue_description,
        c.status, c.seller_notes, c.created_at, c.last_status_update_at`

func (r *claimRepository) Create(ctx context.Context, claim *domain.WarrantyClaim) error {
	const query = `
        INSERT INTO warranty_claims (registered_product_id, customer_user_id, issue_description, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, last_status_update_at`

	return r.pool.QueryRow(ctx, query,
		claim.ProductID,
		claim.CustomerID,
		claim.IssueDescription,
		claim.Status,
	).Scan(&claim.ID, &claim.CreatedAt, &claim.LastStatusUpdateAt)
}

func (r *claimRepository) UpdateStatus(ctx context.Context, id string, status domain.ClaimStatus, notes *string) error {
	const query = `
        UPDATE warranty_claims SET
            status = $1,
            seller_notes = COALESCE($2, seller_notes),
            last_status_update_at = NOW()
        WHERE id = $3`

	cmd, err := r.pool.Exec(ctx, query, status, notes, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *claimRepository) GetByID(ctx context.Context, id string) (*domain.WarrantyClaim, error) {
	const query = `SELECT` + claimColumns + ` FROM warranty_claims c WHERE c.id = $1`
	return r.fetchSingle(r.pool.QueryRow(ctx, query, id))
}

func (r *claimRepository) GetOpenByProduct(ctx context.Context, productID string) (*domain.WarrantyClaim, error) {
	const query = `
        SELECT` + claimColumns + `
        FROM warranty_claims c
        WHERE c.registered_product_id = $1 AND c.status NOT IN ('RESOLVED', 'DENIED')`
	return r.fetchSingle(r.pool.QueryRow(ctx, query, productID))
}

func (r *claimRepository) fetchSingle(row pgx.Row) (*domain.WarrantyClaim, error) {
	var claim domain.WarrantyClaim
	if err := row.Scan(
		&claim.ID,
		&claim.ProductID,
		&claim.CustomerID,
		&claim.IssueDescription,
		&claim.Status,
		&claim.SellerNotes,
		&claim.CreatedAt,
		&claim.LastStatusUpdateAt,
	); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]domain.WarrantyClaim, error) {
	const query = `
        SELECT` + claimColumns + `
        FROM warranty_claims c WHERE c.customer_user_id = $1
        ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, []any{customerID}, limit, offset)
}

func (r *claimRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]domain.WarrantyClaim, error) {
	const query = `
        SELECT` + claimColumns + `
        FROM warranty_claims c
        JOIN registered_products p ON p.id = c.registered_product_id
        WHERE p.seller_id = $1
        ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, []any{sellerID}, limit, offset)
}

func (r *claimRepository) List(ctx context.Context, limit, offset int) ([]domain.WarrantyClaim, error) {
	const query = `
        SELECT` + claimColumns + `
        FROM warranty_claims c
        ORDER BY c.created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, nil, limit, offset)
}

func (r *claimRepository) list(ctx context.Context, query string, args []any, limit, offset int) ([]domain.WarrantyClaim, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.WarrantyClaim
	for rows.Next() {
		var claim domain.WarrantyClaim
		if err := rows.Scan(
			&claim.ID,
			&claim.ProductID,
			&claim.CustomerID,
			&claim.IssueDescription,
			&claim.Status,
			&claim.SellerNotes,
			&claim.CreatedAt,
			&claim.LastStatusUpdateAt,
		); err != nil {
			return nil, err
		}
		result = append(result, claim)
	}
	return result, rows.Err()
}
