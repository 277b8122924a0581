package user

import "drepto/models"

// AuthService is the session's sign-in context. Identity is mocked: nothing is
// verified and nothing is stored beyond the session.
type AuthService interface {
	Login(role models.UserRole, identifier string) (*models.User, error)
	Register(details models.User) (*models.User, error)
	Logout()
	Current() (*models.User, bool)
}
