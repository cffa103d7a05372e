// Package token signs and verifies the HS256 session tokens handed to API
// clients on login.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/tempofy/time-tracking/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by a session token.
type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// JWTIssuer implements ports.TokenIssuer with signed, expiring tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewJWTIssuer returns an issuer that signs with secret. A non-positive ttl
// falls back to 24h and a nil clock to the wall clock.
func NewJWTIssuer(secret string, ttl time.Duration, clock clockwork.Clock) *JWTIssuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (j *JWTIssuer) Issue(user *domain.User) (string, error) {
	id, ok := user.ID()
	if !ok {
		return "", fmt.Errorf("issue token: user has no id")
	}

	now := j.clock.Now()
	claims := Claims{
		Email: user.Email().Value(),
		Role:  user.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(id, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

// Parse verifies signature, algorithm and expiry.
func (j *JWTIssuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
