package models

import "time"

// Roles a user can hold. Stored and served lowercase; role updates accept
// any casing and normalize before storing.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleTracking   = "tracking"
)

// SystemVendorID marks the distinguished cross-tenant scope. The system
// superadmin belongs to this vendor and reads across all tenants.
const SystemVendorID = "system"

type User struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Password   string    `bson:"password" json:"-"`
	Role       string    `bson:"role" json:"role"`
	VendorID   string    `bson:"vendorID" json:"vendorId"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Department string    `bson:"department,omitempty" json:"department,omitempty"`
	IsActive   bool      `bson:"isActive" json:"isActive"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// IsValidRole reports whether role is one of the three known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleSuperadmin, RoleAdmin, RoleTracking:
		return true
	}
	return false
}
