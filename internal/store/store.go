// Package store defines the persistence interface consumed by the handlers.
// Two implementations exist: mongodb for real deployments and memory for
// tests and offline development, selected by the store.driver config key.
package store

import (
	"context"
	"errors"

	"lock-tracking-api-server/internal/models"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// In list methods, an empty vendorID means all vendors (system scope).

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, vendorID string) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type VendorStore interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id string) (*models.Vendor, error)
	GetByCode(ctx context.Context, code string) (*models.Vendor, error)
	List(ctx context.Context) ([]models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id string) error
}

type LockStore interface {
	Create(ctx context.Context, lock *models.Lock) error
	GetByID(ctx context.Context, id string) (*models.Lock, error)
	GetByNumber(ctx context.Context, vendorID, lockNumber string) (*models.Lock, error)
	List(ctx context.Context, vendorID string) ([]models.Lock, error)
	Update(ctx context.Context, lock *models.Lock) error
}

type ScheduleStore interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	List(ctx context.Context, vendorID string) ([]models.Schedule, error)
	Delete(ctx context.Context, id string) error
}

type RemarkStore interface {
	Create(ctx context.Context, remark *models.Remark) error
	List(ctx context.Context, vendorID string) ([]models.Remark, error)
	ListByLock(ctx context.Context, lockID string) ([]models.Remark, error)
}

type TripStore interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id string) (*models.Trip, error)
	List(ctx context.Context, vendorID string) ([]models.Trip, error)
	ListByLock(ctx context.Context, lockID string) ([]models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
}

// Stores bundles the per-entity stores handed to the handlers.
type Stores struct {
	Users     UserStore
	Vendors   VendorStore
	Locks     LockStore
	Schedules ScheduleStore
	Remarks   RemarkStore
	Trips     TripStore
}
