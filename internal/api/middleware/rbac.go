package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tempofy/time-tracking/internal/api/handler"
	"github.com/tempofy/time-tracking/internal/core/domain"
)

// Authorizer checks a stored user's role against a requirement.
type Authorizer interface {
	Authorize(ctx context.Context, userID int64, required domain.Role) error
}

// RequireRole enforces the role hierarchy: ADMIN satisfies MANAGER and
// EMPLOYEE, MANAGER satisfies EMPLOYEE. Must run after Auth.
func RequireRole(authz Authorizer, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _, err := handler.Identity(c)
			if err != nil {
				return err
			}

			err = authz.Authorize(c.Request().Context(), userID, required)
			switch {
			case errors.Is(err, domain.ErrForbidden):
				return c.JSON(http.StatusForbidden, handler.NewErrorResponse(err))
			case err != nil:
				return err
			}
			return next(c)
		}
	}
}
