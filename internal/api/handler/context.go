package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tempofy/time-tracking/internal/core/domain"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// SetIdentity stores the authenticated caller on the request context.
func SetIdentity(c echo.Context, userID int64, role domain.Role) {
	c.Set(ctxUserID, userID)
	c.Set(ctxRole, role)
}

// Identity extracts the caller injected by the Auth middleware. A missing
// or malformed identity means the middleware did not run: reject with 401.
func Identity(c echo.Context) (int64, domain.Role, error) {
	userID, _ := c.Get(ctxUserID).(int64)
	role, _ := c.Get(ctxRole).(domain.Role)
	if userID <= 0 || !role.IsValid() {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
