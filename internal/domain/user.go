package domain

import "time"

// RoleName enumerates the fixed roles in the system.
type RoleName string

const (
	RoleCustomer RoleName = "CUSTOMER"
	RoleSeller   RoleName = "SELLER"
	RoleAdmin    RoleName = "ADMIN"
)

// Valid reports whether the role is one of the known names.
func (r RoleName) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Role is immutable reference data backing the role column.
type Role struct {
	ID   string
	Name RoleName
}

// User is the domain model for every account: customers, sellers and admins.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	RoleID       string
	Role         RoleName
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate carries a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}
