package auth

import (
	"testing"

	"pharma-pos/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAdminHasEveryCapability(t *testing.T) {
	for _, action := range []string{
		ActionSell, ActionHoldSale, ActionViewProducts, ActionManageProducts,
		ActionDeleteProducts, ActionViewReports, ActionViewSettings,
		ActionManageSettings, ActionManageUsers, ActionViewAudit, ActionExportBackup,
	} {
		assert.True(t, Allowed(models.RoleAdmin, action), action)
	}
}

func TestCashierIsLimitedToTheTill(t *testing.T) {
	assert.True(t, Allowed(models.RoleCashier, ActionSell))
	assert.True(t, Allowed(models.RoleCashier, ActionHoldSale))
	assert.True(t, Allowed(models.RoleCashier, ActionViewProducts))

	assert.False(t, Allowed(models.RoleCashier, ActionManageProducts))
	assert.False(t, Allowed(models.RoleCashier, ActionDeleteProducts))
	assert.False(t, Allowed(models.RoleCashier, ActionViewReports))
	assert.False(t, Allowed(models.RoleCashier, ActionManageUsers))
}

func TestPharmacistManagesCatalogButNotUsers(t *testing.T) {
	assert.True(t, Allowed(models.RolePharmacist, ActionManageProducts))
	assert.True(t, Allowed(models.RolePharmacist, ActionViewReports))
	assert.False(t, Allowed(models.RolePharmacist, ActionDeleteProducts))
	assert.False(t, Allowed(models.RolePharmacist, ActionManageSettings))
}

func TestUnknownRoleGetsNothing(t *testing.T) {
	assert.False(t, Allowed("intern", ActionSell))
	assert.False(t, Allowed("", ActionViewProducts))
}
