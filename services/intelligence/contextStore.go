// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"drepto/models"

	"github.com/go-redis/redis/v8"
)

const aiContextPrefix = "ai:ctx:"

// ContextStore keeps the chat transcript per session.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.AIContext, error)
	Set(ctx context.Context, sessionID string, aiCtx *models.AIContext) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.AIContext, error) {
	key := aiContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.AIContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var aiCtx models.AIContext
	if err := json.Unmarshal([]byte(data), &aiCtx); err != nil {
		return nil, err
	}
	return &aiCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, aiCtx *models.AIContext) error {
	key := aiContextPrefix + sessionID
	b, err := json.Marshal(aiCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	key := aiContextPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

// MemoryContextStore is the in-process store used when Redis is not configured.
type MemoryContextStore struct {
	mu   sync.Mutex
	data map[string][]models.ChatMessage
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{data: make(map[string][]models.ChatMessage)}
}

func (s *MemoryContextStore) Get(_ context.Context, sessionID string) (*models.AIContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.data[sessionID]
	return &models.AIContext{Messages: append([]models.ChatMessage(nil), msgs...)}, nil
}

func (s *MemoryContextStore) Set(_ context.Context, sessionID string, aiCtx *models.AIContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = append([]models.ChatMessage(nil), aiCtx.Messages...)
	return nil
}

func (s *MemoryContextStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
