package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	name     Name
	email    Email
	password Password
}

func newFixture(t *testing.T) userFixture {
	t.Helper()
	name, err := NewName("User Name")
	require.NoError(t, err)
	email, err := NewEmail("user@mail.com")
	require.NoError(t, err)
	password, err := NewPassword("ValidPassword123!@")
	require.NoError(t, err)
	return userFixture{name: name, email: email, password: password}
}

func (f userFixture) user(t *testing.T, role Role, id ...int64) *User {
	t.Helper()
	u, err := NewUser(f.name, f.email, f.password, role, id...)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, RoleEmployee)

	assert.Equal(t, f.name, u.Name())
	assert.Equal(t, f.email, u.Email())
	assert.Equal(t, RoleEmployee, u.Role())
	assert.True(t, u.ComparePassword(f.password.Value()))

	_, ok := u.ID()
	assert.False(t, ok, "users without id are pending")
}

func TestNewUser_WithID(t *testing.T) {
	u := newFixture(t).user(t, RoleEmployee, 1)
	id, ok := u.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
}

func TestNewUser_RoundTripsValueObjects(t *testing.T) {
	f := newFixture(t)
	for _, r := range Roles() {
		u := f.user(t, r)
		assert.Equal(t, f.name.Value(), u.Name().Value())
		assert.Equal(t, f.email.Value(), u.Email().Value())
	}
}

func TestNewUser_InvalidRole(t *testing.T) {
	f := newFixture(t)
	for _, r := range []Role{"INVALID_ROLE", ""} {
		_, err := NewUser(f.name, f.email, f.password, r)
		var de *Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, CodeInvalidRole, de.Code)
	}
}

func TestNewUser_InvalidID(t *testing.T) {
	f := newFixture(t)
	for _, id := range []int64{0, -1} {
		_, err := NewUser(f.name, f.email, f.password, RoleEmployee, id)
		assert.Equal(t, CodeInvalidID, CodeOf(err), "id %d", id)
	}

	_, err := NewUser(f.name, f.email, f.password, RoleEmployee, 1, 2)
	assert.Equal(t, CodeInvalidID, CodeOf(err))
}

func TestNewUser_RoleCheckedBeforeID(t *testing.T) {
	f := newFixture(t)
	_, err := NewUser(f.name, f.email, f.password, "BOGUS", 0)
	assert.Equal(t, CodeInvalidRole, CodeOf(err))
}

func TestNewUser_RequiredFields(t *testing.T) {
	f := newFixture(t)
	cases := map[string]func() (*User, error){
		"name":     func() (*User, error) { return NewUser(Name{}, f.email, f.password, RoleEmployee) },
		"email":    func() (*User, error) { return NewUser(f.name, Email{}, f.password, RoleEmployee) },
		"password": func() (*User, error) { return NewUser(f.name, f.email, Password{}, RoleEmployee) },
	}
	for field, build := range cases {
		t.Run(field, func(t *testing.T) {
			u, err := build()
			assert.Nil(t, u)
			assert.Equal(t, CodeRequiredFields, CodeOf(err))
		})
	}
}

func TestUser_HasPermission(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		role     Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleEmployee, true},
		{RoleManager, RoleAdmin, false},
		{RoleManager, RoleManager, true},
		{RoleManager, RoleEmployee, true},
		{RoleEmployee, RoleAdmin, false},
		{RoleEmployee, RoleManager, false},
		{RoleEmployee, RoleEmployee, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.required), func(t *testing.T) {
			got, err := f.user(t, tt.role).HasPermission(tt.required)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUser_HasPermission_InvalidRequiredRole(t *testing.T) {
	u := newFixture(t).user(t, RoleEmployee)
	for _, r := range []Role{"INVALID_ROLE", ""} {
		ok, err := u.HasPermission(r)
		assert.False(t, ok)
		assert.Equal(t, CodeInvalidRole, CodeOf(err))
	}
}

func TestUser_CanRegisterTime(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.user(t, RoleEmployee).CanRegisterTime())
	assert.True(t, f.user(t, RoleManager).CanRegisterTime())
	assert.False(t, f.user(t, RoleAdmin).CanRegisterTime())
}

func TestUser_CanApproveTime(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.user(t, RoleManager).CanApproveTime())
	assert.True(t, f.user(t, RoleAdmin).CanApproveTime())
	assert.False(t, f.user(t, RoleEmployee).CanApproveTime())
}

func TestUser_ComparePassword(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, RoleEmployee)

	other, err := NewPassword("DifferentPass1!@")
	require.NoError(t, err)

	assert.True(t, u.ComparePassword(f.password.Value()))
	assert.False(t, u.ComparePassword(other.Value()))
}

func TestUser_WithID(t *testing.T) {
	original := newFixture(t).user(t, RoleEmployee)

	updated, err := original.WithID(2)
	require.NoError(t, err)
	assert.NotSame(t, original, updated)

	id, ok := updated.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(2), id)

	_, ok = original.ID()
	assert.False(t, ok, "original must not be mutated")

	_, err = original.WithID(0)
	assert.Equal(t, CodeInvalidID, CodeOf(err))
}

func TestUser_WithID_SameIDIsIdempotent(t *testing.T) {
	original := newFixture(t).user(t, RoleManager, 7)
	again, err := original.WithID(7)
	require.NoError(t, err)
	assert.NotSame(t, original, again)
	assert.True(t, original.Equal(again))
}

func TestUser_WithName(t *testing.T) {
	original := newFixture(t).user(t, RoleEmployee, 3)
	newName, err := NewName("Jane Doe")
	require.NoError(t, err)

	updated, err := original.WithName(newName)
	require.NoError(t, err)
	assert.NotSame(t, original, updated)
	assert.Equal(t, newName, updated.Name())
	assert.Equal(t, "User Name", original.Name().Value())

	id, _ := updated.ID()
	assert.Equal(t, int64(3), id)

	_, err = original.WithName(Name{})
	assert.Equal(t, CodeRequiredFields, CodeOf(err))
}

func TestUser_Equal(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, RoleEmployee, 1)
	b := f.user(t, RoleEmployee, 1)
	c := f.user(t, RoleManager, 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
