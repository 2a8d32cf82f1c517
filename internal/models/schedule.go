package models

import "time"

type Schedule struct {
	ID        string    `bson:"_id" json:"id"`
	Date      string    `bson:"date" json:"date"` // ISO calendar date, e.g. "2026-09-01"
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	VendorID  string    `bson:"vendorID" json:"vendorId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
