package handlers

import (
	"net/http"

	"drepto/models"
	"drepto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCloser ends a portal session.
type SessionCloser interface {
	Remove(id string)
}

// AuthHandler serves the mock sign-in endpoints.
type AuthHandler struct {
	Sessions SessionCloser
}

func NewAuthHandler(sessions SessionCloser) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// LoginRequest selects a role and an email or phone number.
type LoginRequest struct {
	Role       models.UserRole `json:"role"`
	Identifier string          `json:"identifier"`
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := p.Auth.Login(req.Role, req.Identifier)
	if err != nil {
		writeError(c, "Login failed", err)
		return
	}
	getLogger(c).Info("User signed in", zap.String("role", string(u.Role)))
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *AuthHandler) Register(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := p.Auth.Register(models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	})
	if err != nil {
		writeError(c, "Registration failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	p.Auth.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	u, signedIn := p.Auth.Current()
	if !signedIn {
		utils.JSONError(c, http.StatusUnauthorized, "Not signed in", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// EndSession closes the portal, cancelling its timers. The stored cart survives.
func (h *AuthHandler) EndSession(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	h.Sessions.Remove(p.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}
