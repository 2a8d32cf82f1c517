package models

import "time"

type Vendor struct {
	ID           string    `bson:"_id" json:"id"`
	VendorName   string    `bson:"vendorName" json:"vendorName"`
	VendorCode   string    `bson:"vendorCode" json:"vendorCode"` // unique, stored uppercase
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	ContactEmail string    `bson:"contactEmail" json:"contactEmail"`
	ContactPhone string    `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// IsSystem reports whether this is the distinguished system vendor, which is
// excluded from normal vendor listings.
func (v *Vendor) IsSystem() bool {
	return v.ID == SystemVendorID
}
