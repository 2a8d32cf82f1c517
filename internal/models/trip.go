package models

import "time"

const (
	TripStatusActive    = "ACTIVE"
	TripStatusCompleted = "COMPLETED"
)

// Trip is one transit cycle of a lock, bounded by start/end time and carrying
// the distance and detention metrics that feed analytics.
type Trip struct {
	ID            string     `bson:"_id" json:"id"`
	LockID        string     `bson:"lockID" json:"lockId"`
	ScheduleID    string     `bson:"scheduleID" json:"scheduleId"`
	VendorID      string     `bson:"vendorID" json:"vendorId"`
	StartTime     time.Time  `bson:"startTime" json:"startTime"`
	EndTime       *time.Time `bson:"endTime,omitempty" json:"endTime,omitempty"`
	DistanceKm    *float64   `bson:"distanceKm,omitempty" json:"distanceKm,omitempty"`
	DetentionMins *int       `bson:"detentionMins,omitempty" json:"detentionMins,omitempty"`
	SealPhotoURL  string     `bson:"sealPhotoURL,omitempty" json:"sealPhotoUrl,omitempty"`
	Status        string     `bson:"status" json:"status"`
}
