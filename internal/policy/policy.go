// Package policy is the authorization/visibility filter. It decides, for the
// identity attached to a request, which entities are visible and which
// mutations are allowed. It is evaluated on every call; nothing here is
// cached, because role and assignment can change between requests.
package policy

import (
	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/models"
)

// Identity is the authenticated caller, decoded fresh from the JWT claims.
type Identity struct {
	UserID   string
	Email    string
	Name     string
	Role     string
	VendorID string
}

// IsSystemAdmin reports whether the identity is the distinguished cross-tenant
// administrator (system vendor + superadmin role).
func (id Identity) IsSystemAdmin() bool {
	return id.VendorID == models.SystemVendorID && id.Role == models.RoleSuperadmin
}

// IsTenantAdmin reports whether the identity holds an admin-level role inside
// a regular tenant.
func (id Identity) IsTenantAdmin() bool {
	if id.IsSystemAdmin() {
		return false
	}
	return id.Role == models.RoleAdmin || id.Role == models.RoleSuperadmin
}

// VendorScope returns the vendor id reads should be scoped to. The empty
// string means all vendors (system administrator).
func (id Identity) VendorScope() string {
	if id.IsSystemAdmin() {
		return ""
	}
	return id.VendorID
}

// FilterLocks narrows a lock collection to what the identity may see: the
// system administrator sees everything, tenant admins see their whole tenant,
// and tracking users see only locks assigned to themselves.
func FilterLocks(id Identity, locks []models.Lock) []models.Lock {
	out := make([]models.Lock, 0, len(locks))
	for _, l := range locks {
		if !id.IsSystemAdmin() && l.VendorID != id.VendorID {
			continue
		}
		if id.Role == models.RoleTracking && l.AssignedTo != id.UserID {
			continue
		}
		out = append(out, l)
	}
	return out
}

// CanCreateTenantData gates creation of locks, schedules, remarks and trips.
// The system administrator acts through tenant management only and is
// rejected here with an explanatory message.
func CanCreateTenantData(id Identity) error {
	if id.IsSystemAdmin() {
		return apperrors.New(apperrors.Forbidden,
			"system administrators cannot create tenant data directly; use tenant management to act within a vendor")
	}
	if id.Role == models.RoleTracking {
		return apperrors.New(apperrors.Forbidden, "tracking users have read-only access")
	}
	return nil
}

// CanMutateTenantEntity gates updates/deletes of an entity owned by
// entityVendorID. An entity outside the caller's tenant reads as absent, so
// the violation surfaces as NotFound rather than Forbidden.
func CanMutateTenantEntity(id Identity, entityVendorID string) error {
	if id.IsSystemAdmin() {
		return apperrors.New(apperrors.Forbidden,
			"system administrators cannot modify tenant data directly; use tenant management")
	}
	if id.VendorID != entityVendorID {
		return apperrors.New(apperrors.NotFound, "entity not found")
	}
	if id.Role == models.RoleTracking {
		return apperrors.New(apperrors.Forbidden, "tracking users have read-only access")
	}
	return nil
}

// CanTransitionLock gates status changes. Tenant admins may transition any
// lock in their tenant; tracking users only locks assigned to themselves.
func CanTransitionLock(id Identity, lock *models.Lock) error {
	if id.IsSystemAdmin() {
		return apperrors.New(apperrors.Forbidden,
			"system administrators cannot update lock status; use tenant management")
	}
	if lock.VendorID != id.VendorID {
		return apperrors.New(apperrors.NotFound, "lock not found")
	}
	if id.Role == models.RoleTracking && lock.AssignedTo != id.UserID {
		return apperrors.New(apperrors.Forbidden, "lock is not assigned to you")
	}
	return nil
}

// CanReadEntity reports whether an entity owned by entityVendorID is within
// the identity's read scope.
func CanReadEntity(id Identity, entityVendorID string) bool {
	return id.IsSystemAdmin() || id.VendorID == entityVendorID
}

// CanManageVendors gates vendor create/update/delete and cross-tenant user
// administration. Only the system administrator qualifies.
func CanManageVendors(id Identity) error {
	if !id.IsSystemAdmin() {
		return apperrors.New(apperrors.Forbidden, "only the system administrator can manage vendors")
	}
	return nil
}

// CanManageUsers gates role changes, activation and deletion of users.
func CanManageUsers(id Identity) error {
	if !id.IsSystemAdmin() {
		return apperrors.New(apperrors.Forbidden, "only the system administrator can manage users")
	}
	return nil
}
