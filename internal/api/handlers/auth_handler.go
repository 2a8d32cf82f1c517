package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lock-tracking-api-server/config"
	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/auth"
	"lock-tracking-api-server/internal/metrics"
	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/store"
)

type AuthHandler struct {
	Stores *store.Stores
	Cfg    config.Config
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	VendorID   string `json:"vendorId" binding:"required"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

type SigninResponse struct {
	Token      string `json:"token"`
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	VendorID   string `json:"vendorId"`
	VendorName string `json:"vendorName"`
}

func (h *AuthHandler) Signin(c *gin.Context) {
	if metrics.SigninAttempts != nil {
		metrics.SigninAttempts.Inc()
	}

	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}

	user, err := h.Stores.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPasswordHash(req.Password, user.Password) {
		if metrics.SigninFailures != nil {
			metrics.SigninFailures.Inc()
		}
		fail(c, apperrors.New(apperrors.Unauthenticated, "Invalid credentials"))
		return
	}
	if !user.IsActive {
		fail(c, apperrors.New(apperrors.Forbidden, "Account is inactive, contact an administrator"))
		return
	}

	vendorName := "Unknown"
	if vendor, err := h.Stores.Vendors.GetByID(c.Request.Context(), user.VendorID); err == nil {
		vendorName = vendor.VendorName
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Name, user.Role, user.VendorID, vendorName, h.Cfg.TokenTTL())
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, SigninResponse{
		Token:      token,
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		VendorID:   user.VendorID,
		VendorName: vendorName,
	})
}

// Signup registers a tracking user against an existing active vendor. Role
// upgrades go through the system administrator afterwards.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}

	ctx := c.Request.Context()

	if _, err := h.Stores.Users.GetByEmail(ctx, req.Email); err == nil {
		fail(c, apperrors.New(apperrors.Validation, "Email is already in use"))
		return
	}

	vendor, err := h.Stores.Vendors.GetByID(ctx, req.VendorID)
	if err != nil || !vendor.IsActive || vendor.IsSystem() {
		fail(c, apperrors.New(apperrors.Validation, "Invalid or inactive vendor"))
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to hash password"))
		return
	}

	user := &models.User{
		ID:         newID("user"),
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		Role:       models.RoleTracking,
		VendorID:   req.VendorID,
		Phone:      strings.TrimSpace(req.Phone),
		Department: strings.TrimSpace(req.Department),
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if err := h.Stores.Users.Create(ctx, user); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to create user"))
		return
	}

	if metrics.SignupsTotal != nil {
		metrics.SignupsTotal.Inc()
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Signout acknowledges the request. Tokens are stateless; the client clears
// its local session regardless of this call's outcome.
func (h *AuthHandler) Signout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "User signed out successfully"})
}

// ValidateToken re-validates a bearer token and returns a fresh identity
// snapshot, used to restore a session on app restart.
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		fail(c, apperrors.New(apperrors.Unauthenticated, "Invalid token format"))
		return
	}

	claims, err := auth.ParseJWT(tokenString)
	if err != nil {
		fail(c, apperrors.New(apperrors.Unauthenticated, "Invalid or expired token"))
		return
	}

	user, err := h.Stores.Users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil || !user.IsActive {
		fail(c, apperrors.New(apperrors.Unauthenticated, "Invalid or inactive user"))
		return
	}

	vendorName := "Unknown"
	if vendor, err := h.Stores.Vendors.GetByID(c.Request.Context(), user.VendorID); err == nil {
		vendorName = vendor.VendorName
	}

	c.JSON(http.StatusOK, SigninResponse{
		Token:      tokenString,
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		VendorID:   user.VendorID,
		VendorName: vendorName,
	})
}
