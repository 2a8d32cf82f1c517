package database

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lock-tracking-api-server/internal/auth"
	"lock-tracking-api-server/internal/logger"
	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/store"
)

const (
	systemAdminEmail    = "superadmin@excisemia.com"
	systemAdminPassword = "superadminpassword" // default, rotate after first login
)

// SeedSystemIdentity creates the system vendor and the system superadmin if
// they are missing. Safe to run on every boot.
func SeedSystemIdentity(ctx context.Context, stores *store.Stores) error {
	log := logger.Get()

	if _, err := stores.Vendors.GetByID(ctx, models.SystemVendorID); err == store.ErrNotFound {
		systemVendor := &models.Vendor{
			ID:           models.SystemVendorID,
			VendorName:   "System Administration",
			VendorCode:   "SYSTEM",
			Description:  "Cross-tenant administrative scope",
			ContactEmail: systemAdminEmail,
			IsActive:     true,
			CreatedAt:    time.Now(),
		}
		if err := stores.Vendors.Create(ctx, systemVendor); err != nil {
			return err
		}
		log.Info("system vendor seeded")
	} else if err != nil {
		return err
	}

	if _, err := stores.Users.GetByEmail(ctx, systemAdminEmail); err == nil {
		log.Info("system superadmin already exists, seeding skipped")
		return nil
	} else if err != store.ErrNotFound {
		return err
	}

	hashedPassword, err := auth.HashPassword(systemAdminPassword)
	if err != nil {
		return err
	}

	superAdmin := &models.User{
		ID:        "user-system-admin",
		Name:      "System Administrator",
		Email:     systemAdminEmail,
		Password:  hashedPassword,
		Role:      models.RoleSuperadmin,
		VendorID:  models.SystemVendorID,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := stores.Users.Create(ctx, superAdmin); err != nil {
		return err
	}

	log.Info("system superadmin seeded", zap.String("email", systemAdminEmail))
	return nil
}
