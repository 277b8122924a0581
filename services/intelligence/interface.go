// File: services/intelligence/interface.go
package ai

import (
	"context"
	"errors"
	"strings"

	"drepto/models"

	"go.uber.org/zap"
)

const (
	Greeting     = "Hello! I am your Drepto AI assistant. How can I help you today?"
	EmptyReply   = "I'm sorry, I couldn't generate a response."
	FailureReply = "Sorry, I encountered an error. Please try again later."
)

var ErrEmptyMessage = errors.New("message is empty")

// Sender is the generative chat capability. Implementations return the model's
// text, which may be empty.
type Sender interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

// Assistant wraps a Sender with the chat transcript. Sender failures become a
// fixed apology in the transcript and are never returned to the caller.
type Assistant struct {
	sender Sender
	store  ContextStore
	logger *zap.Logger
}

// NewAssistant builds an assistant. A nil sender answers every message with the apology.
func NewAssistant(sender Sender, store ContextStore, logger *zap.Logger) *Assistant {
	if store == nil {
		store = NewMemoryContextStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{sender: sender, store: store, logger: logger}
}

// History returns the transcript, starting with the greeting.
func (a *Assistant) History(ctx context.Context, sessionID string) []models.ChatMessage {
	return a.load(ctx, sessionID).Messages
}

func (a *Assistant) load(ctx context.Context, sessionID string) *models.AIContext {
	aiCtx, err := a.store.Get(ctx, sessionID)
	if err != nil {
		a.logger.Warn("Failed to load chat context", zap.String("session", sessionID), zap.Error(err))
		aiCtx = &models.AIContext{}
	}
	if len(aiCtx.Messages) == 0 {
		aiCtx.Messages = []models.ChatMessage{{Role: models.RoleModel, Text: Greeting}}
	}
	return aiCtx
}

// Send appends the user's message and the model's reply to the transcript.
func (a *Assistant) Send(ctx context.Context, sessionID, text string) (*models.AIResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	aiCtx := a.load(ctx, sessionID)
	aiCtx.Messages = append(aiCtx.Messages, models.ChatMessage{Role: models.RoleUser, Text: text})

	reply := models.ChatMessage{Role: models.RoleModel, Text: a.ask(ctx, text)}
	aiCtx.Messages = append(aiCtx.Messages, reply)

	if err := a.store.Set(ctx, sessionID, aiCtx); err != nil {
		a.logger.Warn("Failed to save chat context", zap.String("session", sessionID), zap.Error(err))
	}
	return &models.AIResponse{Reply: reply, Messages: aiCtx.Messages}, nil
}

func (a *Assistant) ask(ctx context.Context, text string) string {
	if a.sender == nil {
		a.logger.Warn("AI sender not configured")
		return FailureReply
	}
	out, err := a.sender.SendMessage(ctx, text)
	if err != nil {
		a.logger.Error("AI request failed", zap.Error(err))
		return FailureReply
	}
	if strings.TrimSpace(out) == "" {
		return EmptyReply
	}
	return out
}

// Reset forgets the transcript.
func (a *Assistant) Reset(ctx context.Context, sessionID string) error {
	return a.store.Clear(ctx, sessionID)
}
