package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/tempofy/time-tracking/internal/api/handler"
	"github.com/tempofy/time-tracking/internal/core/domain"
	"github.com/tempofy/time-tracking/pkg/token"
)

type stubSessions struct {
	logged bool
	err    error
}

func (s stubSessions) HasSession(context.Context, int64, string) (bool, error) {
	return s.logged, s.err
}

// singleSession accepts only one token per user.
type singleSession map[int64]string

func (s singleSession) HasSession(_ context.Context, userID int64, token string) (bool, error) {
	current, ok := s[userID]
	return ok && current == token, nil
}

func signedToken(t *testing.T, issuer *token.JWTIssuer, id int64, role domain.Role) string {
	t.Helper()
	name, _ := domain.NewName("Alice Worker")
	email, _ := domain.NewEmail("alice@example.com")
	password, _ := domain.NewPassword("Valid1@Password")
	user, err := domain.NewUser(name, email, password, role, id)
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	signed, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, issuer *token.JWTIssuer, sessions SessionChecker, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := Auth(issuer, sessions)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	issuer := token.NewJWTIssuer("secret", time.Hour, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, issuer, 42, domain.RoleManager))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(issuer, stubSessions{logged: true})
	h := mw(func(c echo.Context) error {
		called = true
		userID, role, err := handler.Identity(c)
		if err != nil {
			t.Fatalf("identity not set: %v", err)
		}
		if userID != 42 {
			t.Fatalf("expected user 42, got %d", userID)
		}
		if role != domain.RoleManager {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, called := runAuth(t, token.NewJWTIssuer("secret", time.Hour, nil), stubSessions{logged: true}, "")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	rec, called := runAuth(t, token.NewJWTIssuer("secret", time.Hour, nil), stubSessions{logged: true}, "Token abc")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec, called := runAuth(t, token.NewJWTIssuer("secret", time.Hour, nil), stubSessions{logged: true}, "Bearer not-a-token")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	clock := clockwork.NewFakeClock()
	issuer := token.NewJWTIssuer("secret", time.Hour, clock)
	signed := signedToken(t, issuer, 1, domain.RoleEmployee)
	clock.Advance(2 * time.Hour)

	rec, called := runAuth(t, issuer, stubSessions{logged: true}, "Bearer "+signed)
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_SessionEnded(t *testing.T) {
	issuer := token.NewJWTIssuer("secret", time.Hour, nil)
	rec, called := runAuth(t, issuer, stubSessions{logged: false}, "Bearer "+signedToken(t, issuer, 1, domain.RoleEmployee))
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_SessionLookupFails(t *testing.T) {
	issuer := token.NewJWTIssuer("secret", time.Hour, nil)
	rec, called := runAuth(t, issuer, stubSessions{err: errors.New("store down")}, "Bearer "+signedToken(t, issuer, 1, domain.RoleEmployee))
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ReplacedToken(t *testing.T) {
	issuer := token.NewJWTIssuer("secret", time.Hour, nil)
	old := signedToken(t, issuer, 1, domain.RoleEmployee)
	current := signedToken(t, issuer, 1, domain.RoleEmployee)
	sessions := singleSession{1: current}

	rec, called := runAuth(t, issuer, sessions, "Bearer "+old)
	if called {
		t.Fatalf("should not reach next with a replaced token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec, called = runAuth(t, issuer, sessions, "Bearer "+current)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected current token to pass, got %d", rec.Code)
	}
}
