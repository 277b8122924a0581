package handlers

import (
	"net/http"

	"drepto/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the assistant chat of a session.
type AIHandler struct{}

func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

// Chat sends one message. Model failures come back as a fallback reply, not an error.
func (h *AIHandler) Chat(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req models.AIRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := p.Assistant.Send(c.Request.Context(), p.ID, req.Text)
	if err != nil {
		writeError(c, "Invalid message", err)
		return
	}
	getLogger(c).Debug("AI reply sent", zap.Int("messages", len(resp.Messages)))
	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) History(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": p.Assistant.History(c.Request.Context(), p.ID)})
}

func (h *AIHandler) Reset(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	if err := p.Assistant.Reset(c.Request.Context(), p.ID); err != nil {
		writeError(c, "Failed to reset chat", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": p.Assistant.History(c.Request.Context(), p.ID)})
}
