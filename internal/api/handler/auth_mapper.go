package handler

import (
	"github.com/tempofy/time-tracking/internal/core/domain"
	"github.com/tempofy/time-tracking/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
}

// --- Domain → Response ---

// toUserResponse never exposes the password.
func toUserResponse(u *domain.User) userResponse {
	id, _ := u.ID()
	return userResponse{
		ID:    id,
		Name:  u.Name().Value(),
		Email: u.Email().Value(),
		Role:  u.Role().String(),
	}
}

func toCapabilitiesResponse(c *ports.Capabilities) capabilitiesResponse {
	perms := make([]string, 0, len(c.Permissions))
	for _, p := range c.Permissions {
		perms = append(perms, p.String())
	}
	return capabilitiesResponse{
		Role:            c.Role.String(),
		Permissions:     perms,
		CanRegisterTime: c.CanRegisterTime,
		CanApproveTime:  c.CanApproveTime,
	}
}
