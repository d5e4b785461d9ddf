package server

import (
	"net/http"
	"time"

	"auction-broker/internal/brokererrors"
	model "auction-broker/internal/models"
	"auction-broker/internal/repository"
	"auction-broker/services/bids/helpers"
	"auction-broker/utils"

	"github.com/gin-gonic/gin"
)

// identityHeader carries the verified user id set by the upstream identity
// provider. The provider is trusted; this service only resolves the id to a
// role and active flag.
const identityHeader = "X-User-ID"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware resolves the authenticated caller once at the boundary
// and stores a typed AuthContext for downstream handlers. Requests without a
// resolvable, active user are rejected with 401.
func IdentityMiddleware(users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(identityHeader)
		if userID == "" {
			utils.JSONError(c, http.StatusUnauthorized, brokererrors.ErrUnauthenticated, "authentication required")
			c.Abort()
			return
		}

		user, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, brokererrors.ErrUnauthenticated, "authentication required")
			utils.Warn("identity resolution failed", map[string]any{"user_id": userID, "error": err.Error()})
			c.Abort()
			return
		}
		if !user.Active {
			utils.JSONError(c, http.StatusUnauthorized, brokererrors.ErrUnauthenticated, "account deactivated")
			c.Abort()
			return
		}

		c.Set(helpers.AuthContextKey, model.AuthContext{
			UserID: user.UserID,
			Role:   user.Role,
			Active: user.Active,
		})
		c.Next()
	}
}

// RequireRole rejects callers whose resolved role does not match the tier
// required by the route group
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := helpers.AuthFromContext(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, brokererrors.ErrUnauthenticated, "authentication required")
			c.Abort()
			return
		}
		if auth.Role != role {
			utils.JSONError(c, http.StatusForbidden, brokererrors.ErrForbidden, "access denied")
			utils.Warn("role check failed", map[string]any{
				"user_id":  auth.UserID,
				"role":     string(auth.Role),
				"required": string(role),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
