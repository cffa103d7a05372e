package ports

import (
	"context"

	"github.com/tempofy/time-tracking/internal/core/domain"
)

// RegisterInput carries raw, unvalidated registration data.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Capabilities summarises what a user may do in the time-tracking flow.
type Capabilities struct {
	Role            domain.Role
	Permissions     []domain.Role
	CanRegisterTime bool
	CanApproveTime  bool
}

// AuthService is the use-case surface. Register trusts its caller;
// SelfRegister only creates employees; RegisterBy requires the actor to
// satisfy the requested role.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	SelfRegister(ctx context.Context, input RegisterInput) (*domain.User, error)
	RegisterBy(ctx context.Context, actorID int64, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, userID int64) error
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	IsLoggedIn(ctx context.Context, userID int64) (bool, error)
	HasSession(ctx context.Context, userID int64, token string) (bool, error)
	Authorize(ctx context.Context, userID int64, required domain.Role) error
	Capabilities(ctx context.Context, userID int64) (*Capabilities, error)
}
