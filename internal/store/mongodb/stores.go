// Package mongodb implements the store interfaces on MongoDB collections.
package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	"lock-tracking-api-server/internal/store"
)

// New wires one store per collection.
func New(db *mongo.Database) *store.Stores {
	return &store.Stores{
		Users:     &UserStore{coll: db.Collection("users")},
		Vendors:   &VendorStore{coll: db.Collection("vendors")},
		Locks:     &LockStore{coll: db.Collection("locks")},
		Schedules: &ScheduleStore{coll: db.Collection("schedules")},
		Remarks:   &RemarkStore{coll: db.Collection("remarks")},
		Trips:     &TripStore{coll: db.Collection("trips")},
	}
}

// vendorFilter scopes a query to one vendor; empty means all vendors.
func vendorFilter(vendorID string) map[string]interface{} {
	if vendorID == "" {
		return map[string]interface{}{}
	}
	return map[string]interface{}{"vendorID": vendorID}
}
