package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-broker/internal/brokererrors"
	model "auction-broker/internal/models"
	"auction-broker/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Business-rule failures (wrong status, already refunded) share the 400 class
// with plain validation failures; gateway failures surface as a generic 500
// with the cause logged, never exposed.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, brokererrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, brokererrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, brokererrors.ErrEmployeeNotFound):
		return http.StatusNotFound, "employee not found"
	case errors.Is(err, brokererrors.ErrForbidden):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, brokererrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, brokererrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, brokererrors.ErrNotPending):
		return http.StatusBadRequest, "only pending bids can be approved or rejected"
	case errors.Is(err, brokererrors.ErrMissingRejectionNotes):
		return http.StatusBadRequest, "rejection reason is required"
	case errors.Is(err, brokererrors.ErrInvalidStatus):
		return http.StatusBadRequest, "invalid bid status"
	case errors.Is(err, brokererrors.ErrNotRefundable):
		return http.StatusBadRequest, "only outbid or lost bids can be refunded"
	case errors.Is(err, brokererrors.ErrAlreadyRefunded):
		return http.StatusBadRequest, "bid already refunded"
	case errors.Is(err, brokererrors.ErrNoPayment):
		return http.StatusBadRequest, "no payment found"
	case errors.Is(err, brokererrors.ErrNotDeletable):
		return http.StatusBadRequest, "only won or lost bids can be deleted"
	case errors.Is(err, brokererrors.ErrNotEmployee):
		return http.StatusBadRequest, "target user is not an employee"
	case errors.Is(err, brokererrors.ErrEmployeeInactive):
		return http.StatusBadRequest, "employee already deactivated"
	case errors.Is(err, brokererrors.ErrGatewayFailure):
		return http.StatusInternalServerError, "internal server error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// AuthContextKey is the gin context key under which the identity middleware
// stores the resolved caller identity.
const AuthContextKey = "auth_context"

// AuthFromContext returns the authorized caller identity resolved by the
// identity middleware. Handlers behind the middleware can rely on presence;
// the boolean guards direct handler tests.
func AuthFromContext(c *gin.Context) (model.AuthContext, bool) {
	v, ok := c.Get(AuthContextKey)
	if !ok {
		return model.AuthContext{}, false
	}
	auth, ok := v.(model.AuthContext)
	return auth, ok
}
