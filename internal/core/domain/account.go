package domain

import "time"

// Role is the kind of actor an Account represents. It is fixed at signup.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleHospital Role = "hospital"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleHospital
}

// LandingPath is the dashboard a principal of this role is sent to after login.
func (r Role) LandingPath() string {
	if r == RoleHospital {
		return "/hospital"
	}
	return "/customer"
}

// Account models a registered user, either a customer or a hospital.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsHospital reports whether bookings may reference this account.
func (a *Account) IsHospital() bool {
	return a != nil && a.Role == RoleHospital
}
