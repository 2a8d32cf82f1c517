// Package memory is the in-memory store implementation, used for tests and
// offline development (store.driver=memory). It keeps insertion order so
// listings are deterministic.
package memory

import (
	"context"
	"strings"
	"sync"

	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/store"
)

// New builds an empty in-memory store set sharing one lock.
func New() *store.Stores {
	db := &db{}
	return &store.Stores{
		Users:     &userStore{db: db},
		Vendors:   &vendorStore{db: db},
		Locks:     &lockStore{db: db},
		Schedules: &scheduleStore{db: db},
		Remarks:   &remarkStore{db: db},
		Trips:     &tripStore{db: db},
	}
}

type db struct {
	mu        sync.RWMutex
	users     []models.User
	vendors   []models.Vendor
	locks     []models.Lock
	schedules []models.Schedule
	remarks   []models.Remark
	trips     []models.Trip
}

// --- users ---

type userStore struct{ db *db }

func (s *userStore) Create(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.users = append(s.db.users, *user)
	return nil
}

func (s *userStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for i := range s.db.users {
		if s.db.users[i].ID == id {
			u := s.db.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for i := range s.db.users {
		if strings.EqualFold(s.db.users[i].Email, email) {
			u := s.db.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) List(_ context.Context, vendorID string) ([]models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.User{}
	for _, u := range s.db.users {
		if vendorID == "" || u.VendorID == vendorID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userStore) Update(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.users {
		if s.db.users[i].ID == user.ID {
			s.db.users[i] = *user
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *userStore) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.users {
		if s.db.users[i].ID == id {
			s.db.users = append(s.db.users[:i], s.db.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// --- vendors ---

type vendorStore struct{ db *db }

func (s *vendorStore) Create(_ context.Context, vendor *models.Vendor) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.vendors = append(s.db.vendors, *vendor)
	return nil
}

func (s *vendorStore) GetByID(_ context.Context, id string) (*models.Vendor, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for i := range s.db.vendors {
		if s.db.vendors[i].ID == id {
			v := s.db.vendors[i]
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *vendorStore) GetByCode(_ context.Context, code string) (*models.Vendor, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for i := range s.db.vendors {
		if s.db.vendors[i].VendorCode == code {
			v := s.db.vendors[i]
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *vendorStore) List(_ context.Context) ([]models.Vendor, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := make([]models.Vendor, len(s.db.vendors))
	copy(out, s.db.vendors)
	return out, nil
}

func (s *vendorStore) Update(_ context.Context, vendor *models.Vendor) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.vendors {
		if s.db.vendors[i].ID == vendor.ID {
			s.db.vendors[i] = *vendor
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *vendorStore) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.vendors {
		if s.db.vendors[i].ID == id {
			s.db.vendors = append(s.db.vendors[:i], s.db.vendors[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// --- locks ---

type lockStore struct{ db *db }

func (s *lockStore) Create(_ context.Context, lock *models.Lock) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.locks = append(s.db.locks, *lock)
	return nil
}

func (s *lockStore) GetByID(_ context.Context, id string) (*models.Lock, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for i := range s.db.locks {
		if s.db.locks[i].ID == id {
			l := s.db.locks[i]
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *lockStore) GetByNumber(_ context.Context, vendorID, lockNumber string) (*models.Lock, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for i := range s.db.locks {
		if s.db.locks[i].VendorID == vendorID && s.db.locks[i].LockNumber == lockNumber {
			l := s.db.locks[i]
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *lockStore) List(_ context.Context, vendorID string) ([]models.Lock, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Lock{}
	for _, l := range s.db.locks {
		if vendorID == "" || l.VendorID == vendorID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *lockStore) Update(_ context.Context, lock *models.Lock) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.locks {
		if s.db.locks[i].ID == lock.ID {
			s.db.locks[i] = *lock
			return nil
		}
	}
	return store.ErrNotFound
}

// --- schedules ---

type scheduleStore struct{ db *db }

func (s *scheduleStore) Create(_ context.Context, schedule *models.Schedule) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.schedules = append(s.db.schedules, *schedule)
	return nil
}

func (s *scheduleStore) GetByID(_ context.Context, id string) (*models.Schedule, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for i := range s.db.schedules {
		if s.db.schedules[i].ID == id {
			sc := s.db.schedules[i]
			return &sc, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *scheduleStore) List(_ context.Context, vendorID string) ([]models.Schedule, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Schedule{}
	for _, sc := range s.db.schedules {
		if vendorID == "" || sc.VendorID == vendorID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *scheduleStore) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.schedules {
		if s.db.schedules[i].ID == id {
			s.db.schedules = append(s.db.schedules[:i], s.db.schedules[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// --- remarks ---

type remarkStore struct{ db *db }

func (s *remarkStore) Create(_ context.Context, remark *models.Remark) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.remarks = append(s.db.remarks, *remark)
	return nil
}

func (s *remarkStore) List(_ context.Context, vendorID string) ([]models.Remark, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Remark{}
	for _, r := range s.db.remarks {
		if vendorID == "" || r.VendorID == vendorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *remarkStore) ListByLock(_ context.Context, lockID string) ([]models.Remark, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Remark{}
	for _, r := range s.db.remarks {
		if r.LockID == lockID {
			out = append(out, r)
		}
	}
	return out, nil
}

// --- trips ---

type tripStore struct{ db *db }

func (s *tripStore) Create(_ context.Context, trip *models.Trip) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.trips = append(s.db.trips, *trip)
	return nil
}

func (s *tripStore) GetByID(_ context.Context, id string) (*models.Trip, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for i := range s.db.trips {
		if s.db.trips[i].ID == id {
			t := s.db.trips[i]
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *tripStore) List(_ context.Context, vendorID string) ([]models.Trip, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Trip{}
	for _, t := range s.db.trips {
		if vendorID == "" || t.VendorID == vendorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *tripStore) ListByLock(_ context.Context, lockID string) ([]models.Trip, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []models.Trip{}
	for _, t := range s.db.trips {
		if t.LockID == lockID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *tripStore) Update(_ context.Context, trip *models.Trip) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for i := range s.db.trips {
		if s.db.trips[i].ID == trip.ID {
			s.db.trips[i] = *trip
			return nil
		}
	}
	return store.ErrNotFound
}
