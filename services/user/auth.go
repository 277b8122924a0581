package user

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"drepto/models"
)

// mockUserID is the id every mock login receives.
const mockUserID = "123"

var (
	ErrInvalidRole        = errors.New("role must be Patient, Doctor or Nurse")
	ErrIdentifierRequired = errors.New("email or phone is required")
	ErrMissingDetails     = errors.New("first name and email are required")
)

// AuthContext holds the signed-in user for one portal session.
type AuthContext struct {
	mu   sync.RWMutex
	user *models.User
	now  func() time.Time
}

var _ AuthService = (*AuthContext)(nil)

func NewAuthContext(now func() time.Time) *AuthContext {
	if now == nil {
		now = time.Now
	}
	return &AuthContext{now: now}
}

// Login signs in as role. An email identifier names the user after its local
// part; anything else becomes "Test User" at example.com.
func (a *AuthContext) Login(role models.UserRole, identifier string) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrIdentifierRequired
	}

	first, last := NameFromIdentifier(identifier)
	email := identifier
	if !strings.Contains(identifier, "@") {
		email = identifier + "@example.com"
	}
	u := &models.User{ID: mockUserID, FirstName: first, LastName: last, Email: email, Role: role}

	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
	cp := *u
	return &cp, nil
}

// NameFromIdentifier derives a display name. "jane.doe@x" gives Jane Doe,
// "sam@x" gives Sam User and a phone number gives Test User.
func NameFromIdentifier(identifier string) (first, last string) {
	local, _, found := strings.Cut(identifier, "@")
	if !found {
		return "Test", "User"
	}
	if parts := strings.Split(local, "."); len(parts) > 1 {
		return capitalize(parts[0]), capitalize(parts[1])
	}
	return capitalize(local), "User"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Register signs in a new user with a millisecond timestamp id.
func (a *AuthContext) Register(details models.User) (*models.User, error) {
	if !details.Role.Valid() {
		return nil, ErrInvalidRole
	}
	details.FirstName = strings.TrimSpace(details.FirstName)
	details.LastName = strings.TrimSpace(details.LastName)
	details.Email = strings.TrimSpace(details.Email)
	if details.FirstName == "" || details.Email == "" {
		return nil, ErrMissingDetails
	}
	details.ID = strconv.FormatInt(a.now().UnixMilli(), 10)

	a.mu.Lock()
	a.user = &details
	a.mu.Unlock()
	return &details, nil
}

// Logout clears the session user.
func (a *AuthContext) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
}

// Current returns the signed-in user.
func (a *AuthContext) Current() (*models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil, false
	}
	cp := *a.user
	return &cp, true
}
