package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/api/middleware"
	"lock-tracking-api-server/internal/policy"
)

// fail writes an error response carrying the taxonomy code alongside the
// human-readable message.
func fail(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"error": err.Error(),
		"code":  apperrors.KindOf(err),
	})
}

// mustIdentity pulls the caller identity, aborting with 401 if it is missing.
func mustIdentity(c *gin.Context) (policy.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return policy.Identity{}, false
	}
	return id, true
}

// newID mints a short prefixed business id, e.g. "lock-1a2b3c4d".
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}
