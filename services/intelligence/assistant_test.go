package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"drepto/models"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendMessage(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func TestAssistantGreetingFirst(t *testing.T) {
	a := NewAssistant(nil, nil, nil)
	h := a.History(context.Background(), "s1")
	require.Len(t, h, 1)
	assert.Equal(t, models.ChatMessage{Role: models.RoleModel, Text: Greeting}, h[0])
}

func TestAssistantReply(t *testing.T) {
	sender := new(mockSender)
	sender.On("SendMessage", mock.Anything, "What is a normal BP?").Return("Around 120/80 mmHg.", nil).Once()
	a := NewAssistant(sender, nil, nil)

	resp, err := a.Send(context.Background(), "s1", "  What is a normal BP?  ")
	require.NoError(t, err)
	assert.Equal(t, "Around 120/80 mmHg.", resp.Reply.Text)
	require.Len(t, resp.Messages, 3)
	assert.Equal(t, models.RoleUser, resp.Messages[1].Role)
	assert.Equal(t, "What is a normal BP?", resp.Messages[1].Text)
	assert.Len(t, a.History(context.Background(), "s1"), 3)
	sender.AssertExpectations(t)
}

func TestAssistantFallbacks(t *testing.T) {
	sender := new(mockSender)
	sender.On("SendMessage", mock.Anything, "boom").Return("", errors.New("quota exceeded"))
	sender.On("SendMessage", mock.Anything, "quiet").Return("   ", nil)
	a := NewAssistant(sender, nil, nil)

	resp, err := a.Send(context.Background(), "s1", "boom")
	require.NoError(t, err)
	assert.Equal(t, FailureReply, resp.Reply.Text)

	resp, err = a.Send(context.Background(), "s1", "quiet")
	require.NoError(t, err)
	assert.Equal(t, EmptyReply, resp.Reply.Text)

	resp, err = NewAssistant(nil, nil, nil).Send(context.Background(), "s2", "hello")
	require.NoError(t, err)
	assert.Equal(t, FailureReply, resp.Reply.Text)
}

func TestAssistantRejectsBlank(t *testing.T) {
	sender := new(mockSender)
	a := NewAssistant(sender, nil, nil)

	_, err := a.Send(context.Background(), "s1", " \n ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, a.History(context.Background(), "s1"), 1)
	sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestAssistantRedisTranscript(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sender := new(mockSender)
	sender.On("SendMessage", mock.Anything, "hi").Return("Hello there.", nil)
	store := NewRedisContextStore(client, 30*time.Minute)

	_, err := NewAssistant(sender, store, nil).Send(ctx, "sess", "hi")
	require.NoError(t, err)
	assert.True(t, mr.Exists(aiContextPrefix+"sess"))

	h := NewAssistant(sender, store, nil).History(ctx, "sess")
	require.Len(t, h, 3)
	assert.Equal(t, "Hello there.", h[2].Text)

	require.NoError(t, NewAssistant(sender, store, nil).Reset(ctx, "sess"))
	assert.False(t, mr.Exists(aiContextPrefix+"sess"))
}
