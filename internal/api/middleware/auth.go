package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tempofy/time-tracking/internal/api/handler"
	"github.com/tempofy/time-tracking/pkg/token"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

// SessionChecker reports whether token belongs to the user's current session.
type SessionChecker interface {
	HasSession(ctx context.Context, userID int64, token string) (bool, error)
}

// Auth validates the bearer token, confirms it is the token of the user's
// current session and injects the caller identity into context. Tokens from
// ended or replaced sessions are rejected even while still unexpired.
func Auth(tokens TokenParser, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			userID, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			current, err := sessions.HasSession(c.Request().Context(), userID, parts[1])
			if err != nil {
				return err
			}
			if !current {
				return echo.NewHTTPError(http.StatusUnauthorized, "session ended")
			}

			handler.SetIdentity(c, userID, claims.Role)
			return next(c)
		}
	}
}
