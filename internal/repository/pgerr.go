package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names the duplicate-key translation keys off.
const (
	ConstraintUserEmail        = "users_email_key"
	ConstraintProductOrder     = "registered_products_customer_seller_order_key"
	ConstraintOpenClaimProduct = "warranty_claims_open_product_idx"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, optionally on a specific constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
