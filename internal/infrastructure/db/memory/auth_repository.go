// Package memory provides a process-local AuthRepository for tests,
// prototypes and single-instance deployments. Nothing is persisted.
package memory

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tempofy/time-tracking/internal/core/domain"
	"github.com/tempofy/time-tracking/internal/core/ports"
)

const defaultTokenPrefix = "mock-token-"

// OpaqueTokens issues random tokens of the form <Prefix><uuid>.
type OpaqueTokens struct {
	Prefix string
}

func (o OpaqueTokens) Issue(_ *domain.User) (string, error) {
	return o.Prefix + uuid.NewString(), nil
}

type record struct {
	user *domain.User
	hash domain.PasswordHash
}

// AuthRepository keeps users and sessions in memory. A single mutex
// serialises every operation, so the duplicate-email check and id
// assignment in Register happen atomically.
type AuthRepository struct {
	mu       sync.Mutex
	users    []record
	sessions map[int64]string

	tokens   ports.TokenIssuer
	hashCost int
	log      zerolog.Logger
}

var _ ports.AuthRepository = (*AuthRepository)(nil)

type Option func(*AuthRepository)

// WithTokenIssuer replaces the default opaque token issuer.
func WithTokenIssuer(issuer ports.TokenIssuer) Option {
	return func(r *AuthRepository) { r.tokens = issuer }
}

// WithHashCost sets the bcrypt cost used for stored credentials.
func WithHashCost(cost int) Option {
	return func(r *AuthRepository) { r.hashCost = cost }
}

func WithLogger(log zerolog.Logger) Option {
	return func(r *AuthRepository) { r.log = log }
}

func NewAuthRepository(opts ...Option) *AuthRepository {
	r := &AuthRepository{
		sessions: make(map[int64]string),
		tokens:   OpaqueTokens{Prefix: defaultTokenPrefix},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores newUser under the next sequential id (count + 1).
func (r *AuthRepository) Register(ctx context.Context, newUser *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if newUser == nil {
		return nil, domain.ErrRequiredFields
	}

	hash, err := newUser.Password().Hash(r.hashCost)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.findByEmail(newUser.Email()); ok {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	user, err := newUser.WithID(int64(len(r.users) + 1))
	if err != nil {
		return nil, fmt.Errorf("assign id: %w", err)
	}
	r.users = append(r.users, record{user: user, hash: hash})

	id, _ := user.ID()
	r.log.Debug().Int64("user_id", id).Str("role", user.Role().String()).Msg("user registered")
	return user, nil
}

// Login verifies the credentials against the stored hash and opens a
// session, replacing any previous session of the same user.
func (r *AuthRepository) Login(ctx context.Context, email domain.Email, password domain.Password) (*ports.LoginResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.findByEmail(email)
	if !ok || !rec.hash.Matches(password.Value()) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := r.tokens.Issue(rec.user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	id, _ := rec.user.ID()
	r.sessions[id] = token
	return &ports.LoginResult{User: rec.user, Token: token}, nil
}

func (r *AuthRepository) Logout(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	return nil
}

func (r *AuthRepository) GetUserInfo(ctx context.Context, userID int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.users {
		if id, ok := rec.user.ID(); ok && id == userID {
			return rec.user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *AuthRepository) IsUserLogged(ctx context.Context, userID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[userID]
	return ok, nil
}

// IsSessionToken reports whether token is the one issued by the user's
// current session. Tokens from ended or replaced sessions never match.
func (r *AuthRepository) IsSessionToken(ctx context.Context, userID int64, token string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[userID]
	if !ok || token == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(current), []byte(token)) == 1, nil
}

// Seed inserts user without the duplicate-email check. Pending users get the
// next sequential id. Test utility.
func (r *AuthRepository) Seed(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrRequiredFields
	}
	hash, err := user.Password().Hash(r.hashCost)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := user.ID(); !ok {
		if user, err = user.WithID(int64(len(r.users) + 1)); err != nil {
			return nil, err
		}
	}
	r.users = append(r.users, record{user: user, hash: hash})
	return user, nil
}

// findByEmail must be called with mu held.
func (r *AuthRepository) findByEmail(email domain.Email) (record, bool) {
	for _, rec := range r.users {
		if rec.user.Email().Equals(email) {
			return rec, true
		}
	}
	return record{}, false
}
