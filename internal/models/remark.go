package models

import "time"

// Remark is append-only; there is no update or delete path.
type Remark struct {
	ID        string    `bson:"_id" json:"id"`
	LockID    string    `bson:"lockID" json:"lockId"`
	UserID    string    `bson:"userID" json:"userId"`
	UserName  string    `bson:"userName" json:"userName"`
	Message   string    `bson:"message" json:"message"`
	VendorID  string    `bson:"vendorID" json:"vendorId"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
