package models

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one bubble in the assistant window.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// AIRequest is the payload coming from the frontend into /api/ai/chat.
type AIRequest struct {
	Text string `json:"text"` // user's typed message
}

// AIResponse is what the chat handler returns to the frontend.
type AIResponse struct {
	Reply    ChatMessage   `json:"reply"`
	Messages []ChatMessage `json:"messages"`
}

// AIContext is the stored conversation for one session.
type AIContext struct {
	Messages []ChatMessage `json:"messages"`
}
