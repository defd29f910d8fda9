// File: services/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"

	"menagio/models"
	"menagio/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Save(ctx context.Context, session *models.WizardSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore is the production store: JSON-marshaled sessions under
// the wizard key prefix with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore builds a store on the shared cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{}
}

func (st *RedisSessionStore) client() *redis.Client {
	if st.Client != nil {
		return st.Client
	}
	return utils.GetCacheClient()
}

// Get loads a session. Any miss reads as an expired session.
func (st *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := st.client().Get(ctx, utils.WizardSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

// Save writes the session back and refreshes its TTL.
func (st *RedisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	key := utils.WizardSessionPrefix + session.SessionID
	if err := st.client().Set(ctx, key, data, utils.WizardSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

// Delete removes the session.
func (st *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return st.client().Del(ctx, utils.WizardSessionPrefix+sessionID).Err()
}
