package ports

import (
	"context"

	"github.com/tempofy/time-tracking/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	User  *domain.User
	Token string
}

// AuthRepository stores users and tracks their sessions.
//
// Register assigns the id; callers pass pending users. Login fails with
// domain.ErrInvalidCredentials when the email is unknown or the password
// does not match. Logout of a user without a session is not an error.
// IsSessionToken matches only the token of the user's current session.
type AuthRepository interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	Login(ctx context.Context, email domain.Email, password domain.Password) (*LoginResult, error)
	Logout(ctx context.Context, userID int64) error
	GetUserInfo(ctx context.Context, userID int64) (*domain.User, error)
	IsUserLogged(ctx context.Context, userID int64) (bool, error)
	IsSessionToken(ctx context.Context, userID int64, token string) (bool, error)
}

// TokenIssuer mints the opaque session token handed out on login.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
