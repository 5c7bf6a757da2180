// Package nav holds the static route table and the pre-navigation guard
// that enforces authentication and role requirements.
package nav

import "github.com/lapiogga/clothing-opencode/internal/core/domain"

// Well-known paths referenced by the guard.
const (
	LoginPath     = "/login"
	DashboardPath = "/"
)

// Route describes one navigable view: its path, whether it requires an
// authenticated session, and which roles may enter. An empty Roles slice
// means any authenticated role.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	Roles        []domain.Role
}

// Routes returns the full route table. Role grants are listed explicitly
// per route; in particular admin appears wherever admins may enter — there
// is no implicit admin override.
func Routes() []Route {
	return []Route{
		{Path: LoginPath, Name: "Login"},
		{Path: DashboardPath, Name: "Dashboard", RequiresAuth: true},

		{Path: "/admin/users", Name: "UserList", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/admin/users/:id", Name: "UserForm", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/admin/categories", Name: "CategoryList", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/admin/clothing", Name: "ClothingList", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/admin/sales-offices", Name: "SalesOfficeList", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/admin/tailor-companies", Name: "TailorCompanyList", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/admin/menus", Name: "MenuList", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/admin/points", Name: "PointGrant", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin}},

		{Path: "/sales/offline", Name: "OfflineSale", RequiresAuth: true, Roles: []domain.Role{domain.RoleSalesOffice}},
		{Path: "/sales/orders", Name: "SalesOrderList", RequiresAuth: true, Roles: []domain.Role{domain.RoleSalesOffice}},
		{Path: "/sales/inventory", Name: "Inventory", RequiresAuth: true, Roles: []domain.Role{domain.RoleSalesOffice}},
		{Path: "/sales/refund", Name: "Refund", RequiresAuth: true, Roles: []domain.Role{domain.RoleSalesOffice}},
		{Path: "/sales/delivery-locations", Name: "DeliveryLocations", RequiresAuth: true, Roles: []domain.Role{domain.RoleSalesOffice}},
		{Path: "/sales/stats", Name: "SalesStats", RequiresAuth: true, Roles: []domain.Role{domain.RoleSalesOffice}},

		{Path: "/user/shop", Name: "Shop", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin, domain.RoleGeneral}},
		{Path: "/user/cart", Name: "Cart", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin, domain.RoleGeneral}},
		{Path: "/user/orders", Name: "Orders", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin, domain.RoleGeneral}},
		{Path: "/user/points", Name: "Points", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin, domain.RoleGeneral}},
		{Path: "/user/vouchers", Name: "UserVouchers", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin, domain.RoleGeneral}},
		{Path: "/user/profile", Name: "Profile", RequiresAuth: true},

		{Path: "/tailor/register", Name: "VoucherRegister", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin, domain.RoleTailorCompany}},
		{Path: "/tailor/vouchers", Name: "VoucherList", RequiresAuth: true, Roles: []domain.Role{domain.RoleAdmin, domain.RoleTailorCompany}},
	}
}
