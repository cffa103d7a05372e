package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tempofy/time-tracking/internal/core/domain"
	"github.com/tempofy/time-tracking/internal/core/ports"
	"github.com/tempofy/time-tracking/internal/metrics"
)

// AuthService turns raw presentation-layer input into domain objects and
// drives the AuthRepository.
type AuthService struct {
	repo   ports.AuthRepository
	limits domain.Limits
	log    zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(repo ports.AuthRepository, limits domain.Limits, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, limits: limits, log: log}
}

// Register creates a user with any role. It trusts its caller: use it for
// bootstrap and internal provisioning, SelfRegister or RegisterBy otherwise.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	roleLabel := "unknown"
	role, err := domain.ParseRole(input.Role)
	if err == nil {
		roleLabel = role.String()
	} else {
		role = domain.Role(input.Role)
	}

	user, err := s.newUser(input, role)
	if err != nil {
		s.recordValidation(err)
		metrics.RegistrationsTotal.WithLabelValues("invalid", roleLabel).Inc()
		return nil, err
	}

	created, err := s.repo.Register(ctx, user)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		metrics.RegistrationsTotal.WithLabelValues("duplicate", roleLabel).Inc()
		return nil, err
	case err != nil:
		metrics.RegistrationsTotal.WithLabelValues("error", roleLabel).Inc()
		s.log.Error().Err(err).Msg("register user")
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created", roleLabel).Inc()
	id, _ := created.ID()
	s.log.Info().Int64("user_id", id).Str("role", roleLabel).Msg("user registered")
	return created, nil
}

// SelfRegister is the anonymous sign-up path. It only creates employees; an
// omitted role means EMPLOYEE.
func (s *AuthService) SelfRegister(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(input.Role) == "" {
		input.Role = domain.RoleEmployee.String()
	}
	if role, err := domain.ParseRole(input.Role); err == nil && role != domain.RoleEmployee {
		metrics.RegistrationsTotal.WithLabelValues("forbidden", role.String()).Inc()
		s.log.Warn().Str("role", role.String()).Msg("self-registration with elevated role rejected")
		return nil, domain.ErrForbidden
	}
	return s.Register(ctx, input)
}

// RegisterBy creates a user on behalf of actorID, who must hold a role that
// satisfies the requested one.
func (s *AuthService) RegisterBy(ctx context.Context, actorID int64, input ports.RegisterInput) (*domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		s.recordValidation(err)
		metrics.RegistrationsTotal.WithLabelValues("invalid", "unknown").Inc()
		return nil, err
	}

	if err := s.Authorize(ctx, actorID, role); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.RegistrationsTotal.WithLabelValues("forbidden", role.String()).Inc()
		}
		return nil, err
	}
	return s.Register(ctx, input)
}

func (s *AuthService) newUser(input ports.RegisterInput, role domain.Role) (*domain.User, error) {
	name, err := s.limits.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := s.limits.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	password, err := s.limits.NewPassword(input.Password)
	if err != nil {
		return nil, err
	}
	return domain.NewUser(name, email, password, role)
}

// Login never reveals which part of the credentials was wrong: malformed
// input is reported exactly like a failed match.
func (s *AuthService) Login(ctx context.Context, rawEmail, rawPassword string) (*ports.LoginResult, error) {
	email, err := s.limits.NewEmail(rawEmail)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	password, err := s.limits.NewPassword(rawPassword)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.repo.Login(ctx, email, password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		s.log.Info().Msg("login rejected")
		return nil, err
	case err != nil:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Msg("login")
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	id, _ := result.User.ID()
	s.log.Info().Int64("user_id", id).Msg("user logged in")
	return result, nil
}

func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.repo.Logout(ctx, userID); err != nil {
		return err
	}
	metrics.LogoutsTotal.Inc()
	s.log.Info().Int64("user_id", userID).Msg("user logged out")
	return nil
}

func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.GetUserInfo(ctx, userID)
}

func (s *AuthService) IsLoggedIn(ctx context.Context, userID int64) (bool, error) {
	return s.repo.IsUserLogged(ctx, userID)
}

// HasSession reports whether token belongs to the user's current session.
func (s *AuthService) HasSession(ctx context.Context, userID int64, token string) (bool, error) {
	return s.repo.IsSessionToken(ctx, userID, token)
}

// Authorize returns domain.ErrForbidden unless the user's role satisfies
// required.
func (s *AuthService) Authorize(ctx context.Context, userID int64, required domain.Role) error {
	user, err := s.repo.GetUserInfo(ctx, userID)
	if err != nil {
		return err
	}

	granted, err := user.HasPermission(required)
	if err != nil {
		return err
	}
	if !granted {
		metrics.PermissionChecksTotal.WithLabelValues(required.String(), "denied").Inc()
		s.log.Warn().
			Int64("user_id", userID).
			Str("role", user.Role().String()).
			Str("required_role", required.String()).
			Msg("permission denied")
		return domain.ErrForbidden
	}

	metrics.PermissionChecksTotal.WithLabelValues(required.String(), "granted").Inc()
	return nil
}

func (s *AuthService) Capabilities(ctx context.Context, userID int64) (*ports.Capabilities, error) {
	user, err := s.repo.GetUserInfo(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.Capabilities{
		Role:            user.Role(),
		Permissions:     user.Role().Permissions(),
		CanRegisterTime: user.CanRegisterTime(),
		CanApproveTime:  user.CanApproveTime(),
	}, nil
}

func (s *AuthService) recordValidation(err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		metrics.ValidationFailuresTotal.WithLabelValues(string(de.Code), string(de.Rule)).Inc()
	}
}
