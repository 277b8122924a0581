// models/user.go
package models

// UserRole selects which dashboard a user sees.
type UserRole string

const (
	RolePatient UserRole = "Patient"
	RoleDoctor  UserRole = "Doctor"
	RoleNurse   UserRole = "Nurse"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RolePatient || r == RoleDoctor || r == RoleNurse
}

// User is the signed-in portal user. Identity is mocked; nothing is verified.
type User struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
}
