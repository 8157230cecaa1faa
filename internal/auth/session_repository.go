package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"coride/internal/model"
)

// SessionKey is the well-known key under which the current-session user record
// is stored, scoped by session ID.
const SessionKey = "coride-user"

// SessionRepository persists the current-session user record.
// Get returns (nil, nil) when there is no record.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*model.User, error)
	Set(ctx context.Context, sessionID string, user *model.User, ttl time.Duration) error
	Clear(ctx context.Context, sessionID string) error
}

func sessionKey(sessionID string) string {
	return SessionKey + ":" + sessionID
}

// RedisSessionRepository stores session records as JSON in Redis.
type RedisSessionRepository struct {
	client *redis.Client
}

// Ensure RedisSessionRepository implements SessionRepository
var _ SessionRepository = (*RedisSessionRepository)(nil)

// NewRedisSessionRepository creates a Redis-backed session repository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// Get loads the session record.
func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (*model.User, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &user, nil
}

// Set stores the session record with TTL.
func (r *RedisSessionRepository) Set(ctx context.Context, sessionID string, user *model.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(sessionID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Clear removes the session record.
func (r *RedisSessionRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

type memorySession struct {
	payload   []byte
	expiresAt time.Time
}

func (s memorySession) expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && !now.Before(s.expiresAt)
}

// MemorySessionRepository keeps session records in process memory. Records are
// stored as JSON so they round-trip exactly like the Redis variant.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	now      func() time.Time
}

// Ensure MemorySessionRepository implements SessionRepository
var _ SessionRepository = (*MemorySessionRepository)(nil)

// NewMemorySessionRepository creates an in-memory session repository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

// Get loads the session record, dropping it if expired.
func (r *MemorySessionRepository) Get(ctx context.Context, sessionID string) (*model.User, error) {
	key := sessionKey(sessionID)

	r.mu.RLock()
	s, ok := r.sessions[key]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.expired(r.now()) {
		r.mu.Lock()
		delete(r.sessions, key)
		r.mu.Unlock()
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(s.payload, &user); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &user, nil
}

// Set stores the session record and evicts expired ones. A zero ttl never
// expires.
func (r *MemorySessionRepository) Set(ctx context.Context, sessionID string, user *model.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	now := r.now()
	s := memorySession{payload: payload}
	if ttl > 0 {
		s.expiresAt = now.Add(ttl)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for key, existing := range r.sessions {
		if existing.expired(now) {
			delete(r.sessions, key)
		}
	}
	r.sessions[sessionKey(sessionID)] = s
	return nil
}

// Clear removes the session record.
func (r *MemorySessionRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.sessions, sessionKey(sessionID))
	r.mu.Unlock()
	return nil
}
