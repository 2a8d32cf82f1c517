package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/auth"
	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/policy"
	"lock-tracking-api-server/internal/store"
)

type VendorHandler struct {
	Stores *store.Stores
}

type VendorRequest struct {
	VendorName   string `json:"vendorName" binding:"required"`
	VendorCode   string `json:"vendorCode" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone"`
	IsActive     *bool  `json:"isActive"`
}

// GetVendors lists vendors. The route is public so the signup screen can
// offer a vendor picker; unauthenticated callers and tenant users see only
// active vendors, the system administrator sees all. The system vendor is
// excluded from every listing.
func (h *VendorHandler) GetVendors(c *gin.Context) {
	systemView := false
	if header := c.GetHeader("Authorization"); header != "" {
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if claims, err := auth.ParseJWT(tokenString); err == nil {
			id := policy.Identity{UserID: claims.UserID, Role: claims.Role, VendorID: claims.VendorID}
			systemView = id.IsSystemAdmin()
		}
	}

	vendors, err := h.Stores.Vendors.List(c.Request.Context())
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query vendors"))
		return
	}

	out := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if v.IsSystem() {
			continue
		}
		if !systemView && !v.IsActive {
			continue
		}
		out = append(out, v)
	}

	c.JSON(http.StatusOK, out)
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanManageVendors(id); err != nil {
		fail(c, err)
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}

	ctx := c.Request.Context()
	code := strings.ToUpper(strings.TrimSpace(req.VendorCode))

	if _, err := h.Stores.Vendors.GetByCode(ctx, code); err == nil {
		fail(c, apperrors.Newf(apperrors.Validation, "vendor code %s already exists", code))
		return
	}

	vendor := &models.Vendor{
		ID:           newID("vendor"),
		VendorName:   req.VendorName,
		VendorCode:   code,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := h.Stores.Vendors.Create(ctx, vendor); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to create vendor"))
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanManageVendors(id); err != nil {
		fail(c, err)
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}

	ctx := c.Request.Context()
	vendor, err := h.Stores.Vendors.GetByID(ctx, c.Param("id"))
	if err == store.ErrNotFound {
		fail(c, apperrors.New(apperrors.NotFound, "Vendor not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve vendor"))
		return
	}
	if vendor.IsSystem() {
		fail(c, apperrors.New(apperrors.Forbidden, "the system vendor cannot be modified"))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.VendorCode))
	if existing, err := h.Stores.Vendors.GetByCode(ctx, code); err == nil && existing.ID != vendor.ID {
		fail(c, apperrors.Newf(apperrors.Validation, "vendor code %s already exists", code))
		return
	}

	vendor.VendorName = req.VendorName
	vendor.VendorCode = code
	vendor.Description = req.Description
	vendor.ContactEmail = req.ContactEmail
	vendor.ContactPhone = req.ContactPhone
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := h.Stores.Vendors.Update(ctx, vendor); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to update vendor"))
		return
	}

	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanManageVendors(id); err != nil {
		fail(c, err)
		return
	}

	vendorID := c.Param("id")
	if vendorID == models.SystemVendorID {
		fail(c, apperrors.New(apperrors.Forbidden, "the system vendor cannot be deleted"))
		return
	}

	if err := h.Stores.Vendors.Delete(c.Request.Context(), vendorID); err != nil {
		if err == store.ErrNotFound {
			fail(c, apperrors.New(apperrors.NotFound, "Vendor not found"))
		} else {
			fail(c, apperrors.New(apperrors.Internal, "Failed to delete vendor"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}
