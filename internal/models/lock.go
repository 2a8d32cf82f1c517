package models

import "time"

// Status is a lock's position in its transit lifecycle. Wire values are
// uppercase, matching the PUT /locks/:id/status?status=ENUM contract.
type Status string

const (
	StatusAvailable        Status = "AVAILABLE"
	StatusInTransit        Status = "IN_TRANSIT"
	StatusOnReverseTransit Status = "ON_REVERSE_TRANSIT"
	StatusReached          Status = "REACHED"
)

type Lock struct {
	ID            string    `bson:"_id" json:"id"`
	LockNumber    string    `bson:"lockNumber" json:"lockNumber"` // unique within a vendor
	Status        Status    `bson:"status" json:"status"`
	AssignedTo    string    `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	CurrentTripID string    `bson:"currentTripID,omitempty" json:"currentTripId,omitempty"`
	VendorID      string    `bson:"vendorID" json:"vendorId"`
	LastUpdated   time.Time `bson:"lastUpdated" json:"lastUpdated"`
}
