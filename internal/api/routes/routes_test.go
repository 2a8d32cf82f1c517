package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lock-tracking-api-server/config"
	"lock-tracking-api-server/internal/auth"
	"lock-tracking-api-server/internal/database"
	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/socket"
	"lock-tracking-api-server/internal/store"
	"lock-tracking-api-server/internal/store/memory"
)

// errorBody is the shape fail() writes.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type env struct {
	t      *testing.T
	router *gin.Engine
	stores *store.Stores
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.JwtSecret = []byte("routes-test-secret")

	stores := memory.New()
	cfg := config.Config{JWT: config.JWTConfig{Expiration: "1h"}}
	router := SetupRouter(cfg, stores, nil, socket.NewHub())
	return &env{t: t, router: router, stores: stores}
}

func (e *env) addVendor(id string, active bool) *models.Vendor {
	e.t.Helper()
	vendor := &models.Vendor{
		ID:           id,
		VendorName:   "Vendor " + id,
		VendorCode:   id,
		ContactEmail: id + "@vendors.test",
		IsActive:     active,
		CreatedAt:    time.Now(),
	}
	require.NoError(e.t, e.stores.Vendors.Create(context.Background(), vendor))
	return vendor
}

func (e *env) addUser(id, role, vendorID string, active bool) *models.User {
	e.t.Helper()
	user := &models.User{
		ID:        id,
		Name:      id,
		Email:     id + "@users.test",
		Role:      role,
		VendorID:  vendorID,
		IsActive:  active,
		CreatedAt: time.Now(),
	}
	require.NoError(e.t, e.stores.Users.Create(context.Background(), user))
	return user
}

func (e *env) token(user *models.User) string {
	e.t.Helper()
	token, err := auth.GenerateJWT(user.ID, user.Email, user.Name, user.Role, user.VendorID, "", time.Hour)
	require.NoError(e.t, err)
	return token
}

func (e *env) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSigninWithSeededSystemAdmin(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, database.SeedSystemIdentity(context.Background(), e.stores))

	w := e.do(http.MethodPost, "/api/auth/signin", "", gin.H{
		"email":    "superadmin@excisemia.com",
		"password": "superadminpassword",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[map[string]any](t, w)
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, models.RoleSuperadmin, resp["role"])
	assert.Equal(t, models.SystemVendorID, resp["vendorId"])

	w = e.do(http.MethodPost, "/api/auth/signin", "", gin.H{
		"email":    "superadmin@excisemia.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode[errorBody](t, w).Code)
}

func TestSignupCreatesTrackingUser(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	e.addVendor("vendor-off", false)

	w := e.do(http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":     "New Tracker",
		"email":    "tracker@users.test",
		"password": "secret123",
		"vendorId": "vendor-a",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	user, err := e.stores.Users.GetByEmail(context.Background(), "tracker@users.test")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTracking, user.Role)
	assert.Equal(t, "vendor-a", user.VendorID)
	assert.True(t, user.IsActive)
	assert.True(t, auth.CheckPasswordHash("secret123", user.Password))

	// Duplicate email.
	w = e.do(http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":     "Dup",
		"email":    "tracker@users.test",
		"password": "secret123",
		"vendorId": "vendor-a",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Inactive vendor.
	w = e.do(http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":     "Nope",
		"email":    "nope@users.test",
		"password": "secret123",
		"vendorId": "vendor-off",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateToken(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	user := e.addUser("user-trk", models.RoleTracking, "vendor-a", true)

	w := e.do(http.MethodPost, "/api/auth/validate-token", e.token(user), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "user-trk", resp["id"])

	w = e.do(http.MethodPost, "/api/auth/validate-token", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Deactivated users fail revalidation even with a live token.
	token := e.token(user)
	user.IsActive = false
	require.NoError(t, e.stores.Users.Update(context.Background(), user))
	w = e.do(http.MethodPost, "/api/auth/validate-token", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodGet, "/api/locks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/locks", nil)
	req.Header.Set("Authorization", "Token abc") // wrong scheme
	w = httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLockLifecycleEndToEnd(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	admin := e.addUser("user-adm", models.RoleAdmin, "vendor-a", true)
	tracker := e.addUser("user-trk", models.RoleTracking, "vendor-a", true)
	adminToken, trackerToken := e.token(admin), e.token(tracker)

	// Admin registers a lock: AVAILABLE, unassigned.
	w := e.do(http.MethodPost, "/api/locks", adminToken, gin.H{"lockNumber": "L001"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	lock := decode[models.Lock](t, w)
	assert.Equal(t, models.StatusAvailable, lock.Status)
	assert.Empty(t, lock.AssignedTo)
	assert.Equal(t, "vendor-a", lock.VendorID)

	// Duplicate number within the vendor.
	w = e.do(http.MethodPost, "/api/locks", adminToken, gin.H{"lockNumber": "L001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tracking users cannot create locks.
	w = e.do(http.MethodPost, "/api/locks", trackerToken, gin.H{"lockNumber": "L002"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Assign to the tracking user.
	w = e.do(http.MethodPut, "/api/locks/"+lock.ID+"/assign?userId=user-trk", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "user-trk", decode[models.Lock](t, w).AssignedTo)

	w = e.do(http.MethodPut, "/api/locks/"+lock.ID+"/assign?userId=user-trk", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "already assigned")

	// The assignee walks the cycle.
	statusURL := func(s models.Status) string {
		return lockStatusPath(lock.ID, string(s))
	}

	w = e.do(http.MethodPut, statusURL(models.StatusInTransit), trackerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusInTransit, decode[models.Lock](t, w).Status)

	// An illegal jump is rejected and leaves the lock untouched.
	w = e.do(http.MethodPut, statusURL(models.StatusAvailable), trackerToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_TRANSITION", decode[errorBody](t, w).Code)

	stored, err := e.stores.Locks.GetByID(context.Background(), lock.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInTransit, stored.Status)
	assert.Equal(t, "user-trk", stored.AssignedTo)

	w = e.do(http.MethodPut, statusURL(models.StatusOnReverseTransit), trackerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = e.do(http.MethodPut, statusURL(models.StatusReached), trackerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = e.do(http.MethodPut, statusURL(models.StatusAvailable), trackerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusAvailable, decode[models.Lock](t, w).Status)

	// Unknown status value.
	w = e.do(http.MethodPut, lockStatusPath(lock.ID, "LOST"), trackerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func lockStatusPath(id, status string) string {
	return fmt.Sprintf("/api/locks/%s/status?status=%s", id, status)
}

func TestAssignPreconditions(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	e.addVendor("vendor-b", true)
	admin := e.addUser("user-adm", models.RoleAdmin, "vendor-a", true)
	e.addUser("user-idle", models.RoleTracking, "vendor-a", false)
	e.addUser("user-foreign", models.RoleTracking, "vendor-b", true)
	adminToken := e.token(admin)

	w := e.do(http.MethodPost, "/api/locks", adminToken, gin.H{"lockNumber": "L010"})
	require.Equal(t, http.StatusCreated, w.Code)
	lock := decode[models.Lock](t, w)

	// Inactive assignee.
	w = e.do(http.MethodPut, "/api/locks/"+lock.ID+"/assign?userId=user-idle", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Assignee from another vendor.
	w = e.do(http.MethodPut, "/api/locks/"+lock.ID+"/assign?userId=user-foreign", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// An admin is not a tracking user.
	w = e.do(http.MethodPut, "/api/locks/"+lock.ID+"/assign?userId=user-adm", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown assignee.
	w = e.do(http.MethodPut, "/api/locks/"+lock.ID+"/assign?userId=user-ghost", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Non-AVAILABLE locks cannot be assigned.
	tracker := e.addUser("user-trk", models.RoleTracking, "vendor-a", true)
	w = e.do(http.MethodPut, "/api/locks/"+lock.ID+"/assign?userId="+tracker.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = e.do(http.MethodPut, lockStatusPath(lock.ID, string(models.StatusInTransit)), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodPut, "/api/locks/"+lock.ID+"/assign?userId="+tracker.ID, adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLockVisibility(t *testing.T) {
	e := newEnv(t)
	e.addVendor(models.SystemVendorID, true)
	e.addVendor("vendor-a", true)
	e.addVendor("vendor-b", true)
	sys := e.addUser("user-sys", models.RoleSuperadmin, models.SystemVendorID, true)
	adminA := e.addUser("user-adm-a", models.RoleAdmin, "vendor-a", true)
	adminB := e.addUser("user-adm-b", models.RoleAdmin, "vendor-b", true)
	tracker := e.addUser("user-trk", models.RoleTracking, "vendor-a", true)

	ctx := context.Background()
	require.NoError(t, e.stores.Locks.Create(ctx, &models.Lock{ID: "lock-1", LockNumber: "L001", Status: models.StatusAvailable, VendorID: "vendor-a", AssignedTo: "user-trk"}))
	require.NoError(t, e.stores.Locks.Create(ctx, &models.Lock{ID: "lock-2", LockNumber: "L002", Status: models.StatusAvailable, VendorID: "vendor-a"}))
	require.NoError(t, e.stores.Locks.Create(ctx, &models.Lock{ID: "lock-3", LockNumber: "L001", Status: models.StatusAvailable, VendorID: "vendor-b"}))

	list := func(token string) []models.Lock {
		w := e.do(http.MethodGet, "/api/locks", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decode[[]models.Lock](t, w)
	}

	assert.Len(t, list(e.token(sys)), 3)
	assert.Len(t, list(e.token(adminA)), 2)
	assert.Len(t, list(e.token(adminB)), 1)

	trackerLocks := list(e.token(tracker))
	require.Len(t, trackerLocks, 1)
	assert.Equal(t, "lock-1", trackerLocks[0].ID)

	// Cross-tenant access reads as absent.
	w := e.do(http.MethodPut, lockStatusPath("lock-3", string(models.StatusInTransit)), e.token(adminA), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Tracking users cannot transition locks not assigned to them.
	w = e.do(http.MethodPut, lockStatusPath("lock-2", string(models.StatusInTransit)), e.token(tracker), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLockActions(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	e.addVendor("vendor-b", true)
	adminB := e.addUser("user-adm-b", models.RoleAdmin, "vendor-b", true)
	tracker := e.addUser("user-trk", models.RoleTracking, "vendor-a", true)

	ctx := context.Background()
	require.NoError(t, e.stores.Locks.Create(ctx, &models.Lock{ID: "lock-1", LockNumber: "L001", Status: models.StatusInTransit, VendorID: "vendor-a", AssignedTo: "user-trk"}))
	require.NoError(t, e.stores.Locks.Create(ctx, &models.Lock{ID: "lock-2", LockNumber: "L002", Status: models.StatusAvailable, VendorID: "vendor-a"}))

	type action struct {
		Status string `json:"status"`
		Label  string `json:"label"`
	}
	type actionsResp struct {
		LockID  string   `json:"lockId"`
		Status  string   `json:"status"`
		Actions []action `json:"actions"`
	}

	w := e.do(http.MethodGet, "/api/locks/lock-1/actions", e.token(tracker), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[actionsResp](t, w)
	assert.Equal(t, string(models.StatusInTransit), resp.Status)
	require.Len(t, resp.Actions, 2)
	assert.Equal(t, action{Status: string(models.StatusOnReverseTransit), Label: "Start Reverse"}, resp.Actions[0])
	assert.Equal(t, action{Status: string(models.StatusReached), Label: "Mark Reached"}, resp.Actions[1])

	// Unassigned locks read as absent for tracking users.
	w = e.do(http.MethodGet, "/api/locks/lock-2/actions", e.token(tracker), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// As do locks of another vendor.
	w = e.do(http.MethodGet, "/api/locks/lock-1/actions", e.token(adminB), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSystemAdminCannotCreateTenantData(t *testing.T) {
	e := newEnv(t)
	e.addVendor(models.SystemVendorID, true)
	sys := e.addUser("user-sys", models.RoleSuperadmin, models.SystemVendorID, true)
	sysToken := e.token(sys)

	w := e.do(http.MethodPost, "/api/locks", sysToken, gin.H{"lockNumber": "L001"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "FORBIDDEN_OPERATION", body.Code)
	assert.Contains(t, body.Error, "tenant management")

	w = e.do(http.MethodPost, "/api/schedules", sysToken, gin.H{"date": "2026-09-01"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(http.MethodPost, "/api/remarks", sysToken, gin.H{"lockId": "lock-x", "message": "hi"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(http.MethodPost, "/api/trips", sysToken, gin.H{"lockId": "lock-x", "scheduleId": "sched-x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTripFlow(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	admin := e.addUser("user-adm", models.RoleAdmin, "vendor-a", true)
	adminToken := e.token(admin)
	ctx := context.Background()

	w := e.do(http.MethodPost, "/api/locks", adminToken, gin.H{"lockNumber": "L001"})
	require.Equal(t, http.StatusCreated, w.Code)
	lock := decode[models.Lock](t, w)

	w = e.do(http.MethodPost, "/api/schedules", adminToken, gin.H{"date": "2026-09-01", "note": "morning run"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	schedule := decode[models.Schedule](t, w)

	// Trips only start for locks in transit.
	w = e.do(http.MethodPost, "/api/trips", adminToken, gin.H{"lockId": lock.ID, "scheduleId": schedule.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodPut, lockStatusPath(lock.ID, string(models.StatusInTransit)), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodPost, "/api/trips", adminToken, gin.H{"lockId": lock.ID, "scheduleId": schedule.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	trip := decode[models.Trip](t, w)
	assert.Equal(t, models.TripStatusActive, trip.Status)

	stored, err := e.stores.Locks.GetByID(ctx, lock.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, stored.CurrentTripID)

	// One active trip per lock.
	w = e.do(http.MethodPost, "/api/trips", adminToken, gin.H{"lockId": lock.ID, "scheduleId": schedule.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodPut, "/api/trips/"+trip.ID+"/complete", adminToken, gin.H{"distanceKm": 12.5, "detentionMins": 15})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	done := decode[models.Trip](t, w)
	assert.Equal(t, models.TripStatusCompleted, done.Status)
	require.NotNil(t, done.EndTime)
	require.NotNil(t, done.DistanceKm)
	assert.InDelta(t, 12.5, *done.DistanceKm, 1e-9)

	stored, err = e.stores.Locks.GetByID(ctx, lock.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.CurrentTripID)

	// Completing twice fails.
	w = e.do(http.MethodPut, "/api/trips/"+trip.ID+"/complete", adminToken, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsEndpoint(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	e.addVendor("vendor-b", true)
	admin := e.addUser("user-adm", models.RoleAdmin, "vendor-a", true)
	tracker := e.addUser("user-trk", models.RoleTracking, "vendor-a", true)

	ctx := context.Background()
	require.NoError(t, e.stores.Locks.Create(ctx, &models.Lock{ID: "lock-1", LockNumber: "L001", VendorID: "vendor-a"}))
	require.NoError(t, e.stores.Locks.Create(ctx, &models.Lock{ID: "lock-2", LockNumber: "L002", VendorID: "vendor-a"}))
	require.NoError(t, e.stores.Locks.Create(ctx, &models.Lock{ID: "lock-3", LockNumber: "L001", VendorID: "vendor-b"}))

	d1, d2 := 10.0, 15.5
	m1, m2 := 20, 10
	require.NoError(t, e.stores.Trips.Create(ctx, &models.Trip{ID: "trip-1", LockID: "lock-1", VendorID: "vendor-a", DistanceKm: &d1, DetentionMins: &m1, Status: models.TripStatusCompleted}))
	require.NoError(t, e.stores.Trips.Create(ctx, &models.Trip{ID: "trip-2", LockID: "lock-1", VendorID: "vendor-a", DistanceKm: &d2, DetentionMins: &m2, Status: models.TripStatusCompleted}))

	w := e.do(http.MethodGet, "/api/analytics", e.token(admin), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rows := decode[[]models.Analytics](t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, "lock-1", rows[0].LockID)
	assert.Equal(t, int64(2), rows[0].TotalTrips)
	assert.InDelta(t, 25.5, rows[0].TotalDistance, 1e-9)
	assert.Equal(t, 30, rows[0].TotalDetentionTime)
	assert.Equal(t, int64(0), rows[1].TotalTrips)

	// Tracking users do not get the analytics screen.
	w = e.do(http.MethodGet, "/api/analytics", e.token(tracker), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// But the ETA helper is open to everyone authenticated.
	w = e.do(http.MethodGet, "/api/analytics/eta?distanceKm=100&speedKmh=50", e.token(tracker), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	etaResp := decode[map[string]any](t, w)
	assert.Equal(t, float64(120), etaResp["estimatedTimeMinutes"])

	w = e.do(http.MethodGet, "/api/analytics/eta", e.token(tracker), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemarks(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	admin := e.addUser("user-adm", models.RoleAdmin, "vendor-a", true)
	tracker := e.addUser("user-trk", models.RoleTracking, "vendor-a", true)
	adminToken, trackerToken := e.token(admin), e.token(tracker)

	w := e.do(http.MethodPost, "/api/locks", adminToken, gin.H{"lockNumber": "L001"})
	require.Equal(t, http.StatusCreated, w.Code)
	lock := decode[models.Lock](t, w)

	w = e.do(http.MethodPost, "/api/remarks", adminToken, gin.H{"lockId": lock.ID, "message": "seal replaced at depot"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	remark := decode[models.Remark](t, w)
	assert.Equal(t, "user-adm", remark.UserID)

	// Remarks are tenant-wide reads, even for tracking users with no
	// assigned locks involved.
	w = e.do(http.MethodGet, "/api/remarks", trackerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Remark](t, w), 1)

	w = e.do(http.MethodGet, "/api/remarks/lock/"+lock.ID, trackerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Remark](t, w), 1)

	// Tracking users cannot write remarks.
	w = e.do(http.MethodPost, "/api/remarks", trackerToken, gin.H{"lockId": lock.ID, "message": "hello"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Remark on an unknown lock.
	w = e.do(http.MethodPost, "/api/remarks", adminToken, gin.H{"lockId": "lock-ghost", "message": "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVendorManagement(t *testing.T) {
	e := newEnv(t)
	e.addVendor(models.SystemVendorID, true)
	e.addVendor("vendor-a", true)
	e.addVendor("vendor-off", false)
	sys := e.addUser("user-sys", models.RoleSuperadmin, models.SystemVendorID, true)
	tenantSuper := e.addUser("user-sup", models.RoleSuperadmin, "vendor-a", true)
	sysToken := e.token(sys)

	// Public listing: active tenants only, system vendor never shown.
	w := e.do(http.MethodGet, "/api/vendors", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	vendors := decode[[]models.Vendor](t, w)
	require.Len(t, vendors, 1)
	assert.Equal(t, "vendor-a", vendors[0].ID)

	// The system administrator also sees inactive vendors.
	w = e.do(http.MethodGet, "/api/vendors", sysToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Vendor](t, w), 2)

	// Create normalizes the code to uppercase.
	w = e.do(http.MethodPost, "/api/vendors", sysToken, gin.H{
		"vendorName":   "Acme Transport",
		"vendorCode":   "acme",
		"contactEmail": "ops@acme.test",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Vendor](t, w)
	assert.Equal(t, "ACME", created.VendorCode)

	w = e.do(http.MethodPost, "/api/vendors", sysToken, gin.H{
		"vendorName":   "Acme Clone",
		"vendorCode":   "ACME",
		"contactEmail": "ops@clone.test",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tenant superadmins pass the role gate but not the policy.
	w = e.do(http.MethodPost, "/api/vendors", e.token(tenantSuper), gin.H{
		"vendorName":   "Rogue",
		"vendorCode":   "ROGUE",
		"contactEmail": "ops@rogue.test",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The system vendor is untouchable.
	w = e.do(http.MethodDelete, "/api/vendors/"+models.SystemVendorID, sysToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserAdministration(t *testing.T) {
	e := newEnv(t)
	e.addVendor(models.SystemVendorID, true)
	e.addVendor("vendor-a", true)
	e.addVendor("vendor-b", true)
	sys := e.addUser("user-sys", models.RoleSuperadmin, models.SystemVendorID, true)
	tenantSuper := e.addUser("user-sup", models.RoleSuperadmin, "vendor-a", true)
	tracker := e.addUser("user-trk", models.RoleTracking, "vendor-a", true)
	e.addUser("user-b", models.RoleAdmin, "vendor-b", true)
	sysToken := e.token(sys)

	// The system administrator lists everyone; a tenant superadmin only
	// their own vendor.
	w := e.do(http.MethodGet, "/api/users", sysToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.User](t, w), 4)

	w = e.do(http.MethodGet, "/api/users", e.token(tenantSuper), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.User](t, w), 2)

	// Mutations are system administrator only.
	w = e.do(http.MethodPut, "/api/users/user-trk/role", e.token(tenantSuper), gin.H{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Role updates normalize casing.
	w = e.do(http.MethodPut, "/api/users/user-trk/role", sysToken, gin.H{"role": "ADMIN"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated, err := e.stores.Users.GetByID(context.Background(), tracker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	w = e.do(http.MethodPut, "/api/users/user-trk/role", sysToken, gin.H{"role": "owner"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodPut, "/api/users/user-trk/deactivate", sysToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	updated, err = e.stores.Users.GetByID(context.Background(), tracker.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	w = e.do(http.MethodPut, "/api/users/user-trk/activate", sysToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// No self-deletion.
	w = e.do(http.MethodDelete, "/api/users/user-sys", sysToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodDelete, "/api/users/user-trk", sysToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, err = e.stores.Users.GetByID(context.Background(), tracker.ID)
	assert.Error(t, err)
}

func TestSealPhotoWithoutUploader(t *testing.T) {
	e := newEnv(t)
	e.addVendor("vendor-a", true)
	admin := e.addUser("user-adm", models.RoleAdmin, "vendor-a", true)
	adminToken := e.token(admin)

	w := e.do(http.MethodPost, "/api/locks", adminToken, gin.H{"lockNumber": "L001"})
	require.Equal(t, http.StatusCreated, w.Code)
	lock := decode[models.Lock](t, w)

	// No uploader configured in this environment.
	w = e.do(http.MethodPost, "/api/locks/"+lock.ID+"/seal-photo", adminToken, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthz(t *testing.T) {
	e := newEnv(t)
	w := e.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
