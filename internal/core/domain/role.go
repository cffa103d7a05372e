package domain

import "strings"

// Role is a permission level. Levels form a total order
// ADMIN > MANAGER > EMPLOYEE; the zero value is not a role.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// permissions maps each role to every role it satisfies.
var permissions = map[Role][]Role{
	RoleAdmin:    {RoleAdmin, RoleManager, RoleEmployee},
	RoleManager:  {RoleManager, RoleEmployee},
	RoleEmployee: {RoleEmployee},
}

var errInvalidRole = newError(CodeInvalidRole, RuleInvalid, "Invalid role.")

// Roles lists every role, highest first.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleEmployee}
}

// ParseRole accepts a role name in any case, surrounded by any whitespace.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", errInvalidRole
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := permissions[r]
	return ok
}

// Permissions returns a copy of the roles r satisfies. Nil for invalid roles.
func (r Role) Permissions() []Role {
	perms, ok := permissions[r]
	if !ok {
		return nil
	}
	out := make([]Role, len(perms))
	copy(out, perms)
	return out
}

// Grants reports whether holding r satisfies a requirement for required.
func (r Role) Grants(required Role) bool {
	for _, p := range permissions[r] {
		if p == required {
			return true
		}
	}
	return false
}
