package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lock-tracking-api-server/internal/auth"
	"lock-tracking-api-server/internal/policy"
)

// identityKey is where Authenticate stores the caller's identity.
const identityKey = "identity"

// Authenticate validates the bearer token and attaches the caller's identity
// to the request context. The identity is rebuilt from claims on every
// request; nothing is cached across calls.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := auth.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(identityKey, policy.Identity{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Name:     claims.Name,
			Role:     claims.Role,
			VendorID: claims.VendorID,
		})

		c.Next()
	}
}

// Authorize allows the request through only when the caller holds one of the
// given roles. Must run after Authenticate.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Identity not found in context"})
			return
		}

		for _, role := range allowedRoles {
			if role == id.Role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	}
}

// IdentityFrom returns the identity attached by Authenticate.
func IdentityFrom(c *gin.Context) (policy.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return policy.Identity{}, false
	}
	id, ok := v.(policy.Identity)
	return id, ok
}
