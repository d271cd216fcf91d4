package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/imammufiid/bnyu-admin/internal/cache"
)

const sessionKeyPrefix = "session:"

// Identity is the authenticated admin identity persisted across restarts.
// It carries exactly what the dashboard shows in the profile view.
type Identity struct {
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	Put(ctx context.Context, sessionID string, identity Identity, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Identity, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionStore persists admin identities in Redis, keyed by session ID.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Put stores or rewrites the identity for a session with TTL.
func (s *SessionStore) Put(ctx context.Context, sessionID string, identity Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

// Get retrieves the identity for a session. A missing record reads as a
// logged-out session.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*Identity, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil || data == nil {
		return nil, fmt.Errorf("session not found")
	}
	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal identity: %w", err)
	}
	return &identity, nil
}

// Delete removes a session record.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
