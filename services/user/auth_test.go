package user

import (
	"testing"
	"time"

	"drepto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameFromIdentifier(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
	}{
		{"jane.doe@example.com", "Jane", "Doe"},
		{"sam@clinic.in", "Sam", "User"},
		{"a.b.c@x.io", "A", "B"},
		{"9876543210", "Test", "User"},
		{"élodie@x.fr", "Élodie", "User"},
	}
	for _, tc := range cases {
		first, last := NameFromIdentifier(tc.in)
		assert.Equal(t, tc.first, first, tc.in)
		assert.Equal(t, tc.last, last, tc.in)
	}
}

func TestLogin(t *testing.T) {
	a := NewAuthContext(nil)

	u, err := a.Login(models.RoleDoctor, "priya.sharma@drepto.in")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "123", FirstName: "Priya", LastName: "Sharma", Email: "priya.sharma@drepto.in", Role: models.RoleDoctor}, *u)

	u, err = a.Login(models.RolePatient, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "9876543210@example.com", u.Email)

	cur, ok := a.Current()
	require.True(t, ok)
	assert.Equal(t, models.RolePatient, cur.Role)

	_, err = a.Login("Admin", "x@y.z")
	assert.ErrorIs(t, err, ErrInvalidRole)
	_, err = a.Login(models.RoleNurse, "  ")
	assert.ErrorIs(t, err, ErrIdentifierRequired)
}

func TestRegisterAndLogout(t *testing.T) {
	a := NewAuthContext(func() time.Time { return time.UnixMilli(1760000000000) })

	u, err := a.Register(models.User{FirstName: " Meera ", LastName: "Iyer", Email: "meera@x.in", Role: models.RoleNurse})
	require.NoError(t, err)
	assert.Equal(t, "1760000000000", u.ID)
	assert.Equal(t, "Meera", u.FirstName)

	_, err = a.Register(models.User{Email: "x@y.z", Role: models.RolePatient})
	assert.ErrorIs(t, err, ErrMissingDetails)

	a.Logout()
	_, ok := a.Current()
	assert.False(t, ok)
}
