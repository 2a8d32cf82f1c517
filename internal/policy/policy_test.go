package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/models"
)

var (
	systemAdmin = Identity{UserID: "user-sys", Role: models.RoleSuperadmin, VendorID: models.SystemVendorID}
	tenantAdmin = Identity{UserID: "user-adm", Role: models.RoleAdmin, VendorID: "vendor-aaaa1111"}
	tracker     = Identity{UserID: "user-trk", Role: models.RoleTracking, VendorID: "vendor-aaaa1111"}
	otherAdmin  = Identity{UserID: "user-oth", Role: models.RoleAdmin, VendorID: "vendor-bbbb2222"}
)

func TestIdentityClassification(t *testing.T) {
	assert.True(t, systemAdmin.IsSystemAdmin())
	assert.False(t, systemAdmin.IsTenantAdmin())
	assert.Empty(t, systemAdmin.VendorScope())

	// A superadmin role inside a regular tenant is a tenant admin, not the
	// system administrator.
	tenantSuper := Identity{Role: models.RoleSuperadmin, VendorID: "vendor-aaaa1111"}
	assert.False(t, tenantSuper.IsSystemAdmin())
	assert.True(t, tenantSuper.IsTenantAdmin())
	assert.Equal(t, "vendor-aaaa1111", tenantSuper.VendorScope())

	assert.True(t, tenantAdmin.IsTenantAdmin())
	assert.False(t, tracker.IsTenantAdmin())
}

func TestFilterLocks(t *testing.T) {
	locks := []models.Lock{
		{ID: "lock-1", VendorID: "vendor-aaaa1111", AssignedTo: "user-trk"},
		{ID: "lock-2", VendorID: "vendor-aaaa1111"},
		{ID: "lock-3", VendorID: "vendor-bbbb2222", AssignedTo: "user-else"},
	}

	ids := func(in []models.Lock) []string {
		out := make([]string, 0, len(in))
		for _, l := range in {
			out = append(out, l.ID)
		}
		return out
	}

	assert.Equal(t, []string{"lock-1", "lock-2", "lock-3"}, ids(FilterLocks(systemAdmin, locks)))
	assert.Equal(t, []string{"lock-1", "lock-2"}, ids(FilterLocks(tenantAdmin, locks)))
	assert.Equal(t, []string{"lock-1"}, ids(FilterLocks(tracker, locks)))
	assert.Equal(t, []string{"lock-3"}, ids(FilterLocks(otherAdmin, locks)))
}

func TestCanCreateTenantData(t *testing.T) {
	err := CanCreateTenantData(systemAdmin)
	require.Error(t, err)
	assert.Equal(t, apperrors.Forbidden, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "tenant management")

	err = CanCreateTenantData(tracker)
	require.Error(t, err)
	assert.Equal(t, apperrors.Forbidden, apperrors.KindOf(err))

	assert.NoError(t, CanCreateTenantData(tenantAdmin))
}

func TestCanMutateTenantEntity(t *testing.T) {
	assert.NoError(t, CanMutateTenantEntity(tenantAdmin, "vendor-aaaa1111"))

	// Out-of-tenant entities read as absent.
	err := CanMutateTenantEntity(tenantAdmin, "vendor-bbbb2222")
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))

	err = CanMutateTenantEntity(tracker, "vendor-aaaa1111")
	require.Error(t, err)
	assert.Equal(t, apperrors.Forbidden, apperrors.KindOf(err))

	err = CanMutateTenantEntity(systemAdmin, "vendor-aaaa1111")
	require.Error(t, err)
	assert.Equal(t, apperrors.Forbidden, apperrors.KindOf(err))
}

func TestCanTransitionLock(t *testing.T) {
	own := &models.Lock{ID: "lock-1", VendorID: "vendor-aaaa1111", AssignedTo: "user-trk"}
	unassigned := &models.Lock{ID: "lock-2", VendorID: "vendor-aaaa1111"}
	foreign := &models.Lock{ID: "lock-3", VendorID: "vendor-bbbb2222"}

	assert.NoError(t, CanTransitionLock(tracker, own))
	assert.NoError(t, CanTransitionLock(tenantAdmin, own))
	assert.NoError(t, CanTransitionLock(tenantAdmin, unassigned))

	err := CanTransitionLock(tracker, unassigned)
	require.Error(t, err)
	assert.Equal(t, apperrors.Forbidden, apperrors.KindOf(err))

	err = CanTransitionLock(tenantAdmin, foreign)
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))

	err = CanTransitionLock(systemAdmin, own)
	require.Error(t, err)
	assert.Equal(t, apperrors.Forbidden, apperrors.KindOf(err))
}

func TestCanReadEntity(t *testing.T) {
	assert.True(t, CanReadEntity(systemAdmin, "vendor-bbbb2222"))
	assert.True(t, CanReadEntity(tracker, "vendor-aaaa1111"))
	assert.False(t, CanReadEntity(tenantAdmin, "vendor-bbbb2222"))
}

func TestManagementGates(t *testing.T) {
	assert.NoError(t, CanManageVendors(systemAdmin))
	assert.NoError(t, CanManageUsers(systemAdmin))

	for _, id := range []Identity{tenantAdmin, tracker, otherAdmin} {
		err := CanManageVendors(id)
		require.Error(t, err)
		assert.Equal(t, apperrors.Forbidden, apperrors.KindOf(err))
		assert.Error(t, CanManageUsers(id))
	}
}
