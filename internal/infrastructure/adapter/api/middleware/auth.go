package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/lionswap/reservation-service/internal/domain/error"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/api/dto"
)

// UserIDKey is the gin context key the auth middleware stores the
// authenticated user ID under
const UserIDKey = "auth_user_id"

// TokenVerifier resolves a bearer token to a user ID
type TokenVerifier interface {
	Verify(token string) (uint64, error)
}

// Auth validates the Authorization header and stores the resolved user ID in
// the request context. Requests without a valid bearer token are rejected.
func Auth(verifier TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthenticated,
				Message: "Missing bearer token",
			})
			return
		}

		userID, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Rejected request with invalid token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthenticated,
				Message: "Invalid bearer token",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AuthenticatedUser returns the user ID the auth middleware resolved
func AuthenticatedUser(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
