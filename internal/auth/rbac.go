package auth

import "pharma-pos/internal/models"

// Actions the capability table can grant. Routes declare one action each instead
// of re-checking roles ad hoc per screen.
const (
	ActionSell           = "pos.sell"
	ActionHoldSale       = "pos.hold"
	ActionViewProducts   = "products.view"
	ActionManageProducts = "products.manage"
	ActionDeleteProducts = "products.delete"
	ActionViewReports    = "reports.view"
	ActionViewSettings   = "settings.view"
	ActionManageSettings = "settings.manage"
	ActionManageUsers    = "users.manage"
	ActionViewAudit      = "audit.view"
	ActionExportBackup   = "system.backup"
)

var capabilities = map[string]map[string]bool{
	models.RoleAdmin: {
		ActionSell: true, ActionHoldSale: true,
		ActionViewProducts: true, ActionManageProducts: true, ActionDeleteProducts: true,
		ActionViewReports: true, ActionViewSettings: true, ActionManageSettings: true,
		ActionManageUsers: true, ActionViewAudit: true, ActionExportBackup: true,
	},
	models.RolePharmacist: {
		ActionSell: true, ActionHoldSale: true,
		ActionViewProducts: true, ActionManageProducts: true,
		ActionViewReports: true, ActionViewSettings: true,
	},
	models.RoleCashier: {
		ActionSell: true, ActionHoldSale: true,
		ActionViewProducts: true, ActionViewSettings: true,
	},
}

// Allowed reports whether the role may perform the action. Unknown roles get
// nothing.
func Allowed(role, action string) bool {
	return capabilities[role][action]
}
