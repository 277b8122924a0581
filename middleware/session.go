package middleware

import (
	"context"
	"net/http"
	"strings"

	"drepto/services/portal"
	"drepto/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHeader carries the portal session id in both directions.
const SessionHeader = "X-Session-ID"

const (
	portalKey = "portal"
	loggerKey = "logger"

	maxSessionIDLen = 64
)

// PortalResolver opens or returns the portal for a session id.
type PortalResolver interface {
	Get(ctx context.Context, id string) (*portal.Portal, error)
}

// PortalSession attaches the caller's portal to the request. A request without a
// session id starts a new session; the id is echoed back so the client can reuse it.
func PortalSession(resolver PortalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if len(id) > maxSessionIDLen {
			utils.JSONError(c, http.StatusBadRequest, "Invalid session id", "session id is too long")
			return
		}
		if id == "" {
			id = uuid.NewString()
		}

		p, err := resolver.Get(c.Request.Context(), id)
		if err != nil {
			utils.GetLogger().Error("Failed to open portal session", zap.String("session", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to open session", err.Error())
			return
		}

		c.Header(SessionHeader, id)
		c.Set(portalKey, p)
		c.Set(loggerKey, utils.GetLogger().With(zap.String("session", id)))
		c.Next()
	}
}

// CurrentPortal returns the portal attached by PortalSession.
func CurrentPortal(c *gin.Context) (*portal.Portal, bool) {
	v, exists := c.Get(portalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*portal.Portal)
	return p, ok && p != nil
}
