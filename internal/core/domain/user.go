package domain

import "time"

// Role is the closed set of account roles. The permission model is flat:
// a route or feature is visible to a role only when that role is listed
// explicitly, never through inheritance.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleGeneral       Role = "general"
	RoleSalesOffice   Role = "sales_office"
	RoleTailorCompany Role = "tailor_company"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGeneral, RoleSalesOffice, RoleTailorCompany:
		return true
	}
	return false
}

// User models an account as returned by the backend.
type User struct {
	ID              int       `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	Role            Role      `json:"role"`
	ServiceNumber   string    `json:"service_number"`
	Unit            string    `json:"unit,omitempty"`
	SalesOfficeID   *int      `json:"sales_office_id,omitempty"`
	TailorCompanyID *int      `json:"tailor_company_id,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
