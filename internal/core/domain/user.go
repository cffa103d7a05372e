package domain

var errInvalidID = newError(CodeInvalidID, RuleInvalid, "Invalid id.")

// ErrRequiredFields is returned when a user is built from missing value
// objects, or when no user is supplied at all.
var ErrRequiredFields = newError(CodeRequiredFields, RuleRequired, "Name, email and password are required.")

// User is the aggregate root of the identity context. A User without an id
// is pending: the storage collaborator assigns ids, never the aggregate.
//
// Users are immutable; WithID and WithName return fresh, re-validated copies.
type User struct {
	id       int64
	name     Name
	email    Email
	password Password
	role     Role
}

// NewUser validates role first, then the optional id, then that every value
// object is present. At most one id may be supplied and it must be positive.
func NewUser(name Name, email Email, password Password, role Role, id ...int64) (*User, error) {
	if !role.IsValid() {
		return nil, errInvalidRole
	}

	var uid int64
	switch len(id) {
	case 0:
	case 1:
		if id[0] <= 0 {
			return nil, errInvalidID
		}
		uid = id[0]
	default:
		return nil, errInvalidID
	}

	if name.IsZero() || email.IsZero() || password.IsZero() {
		return nil, ErrRequiredFields
	}

	return &User{
		id:       uid,
		name:     name,
		email:    email,
		password: password,
		role:     role,
	}, nil
}

func (u *User) Name() Name         { return u.name }
func (u *User) Email() Email       { return u.email }
func (u *User) Password() Password { return u.password }
func (u *User) Role() Role         { return u.role }

// ID returns the storage-assigned id and whether one has been assigned.
func (u *User) ID() (int64, bool) {
	return u.id, u.id > 0
}

// HasPermission reports whether the user's role satisfies required.
func (u *User) HasPermission(required Role) (bool, error) {
	if !required.IsValid() {
		return false, errInvalidRole
	}
	return u.role.Grants(required), nil
}

// CanRegisterTime is true for employees and managers. Admins administer the
// system but do not book hours.
func (u *User) CanRegisterTime() bool {
	return u.role.Grants(RoleEmployee) && !u.role.Grants(RoleAdmin)
}

// CanApproveTime is true for managers and admins.
func (u *User) CanApproveTime() bool {
	return u.role.Grants(RoleManager)
}

func (u *User) ComparePassword(candidate string) bool {
	return u.password.Compare(candidate)
}

func (u *User) WithID(id int64) (*User, error) {
	return NewUser(u.name, u.email, u.password, u.role, id)
}

func (u *User) WithName(name Name) (*User, error) {
	if u.id > 0 {
		return NewUser(name, u.email, u.password, u.role, u.id)
	}
	return NewUser(name, u.email, u.password, u.role)
}

// Equal compares users field by field.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.id == other.id &&
		u.name.Equals(other.name) &&
		u.email.Equals(other.email) &&
		u.password.Compare(other.password.value) &&
		u.role == other.role
}
