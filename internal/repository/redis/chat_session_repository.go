package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/contract"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ChatSessionRepository keeps sessions as JSON values in Redis. Selected by
// SESSION_STORE=redis; session expiry stays an external concern, so no TTL
// is set here.
type ChatSessionRepository struct {
	client *goredis.Client
}

func NewChatSessionRepository(client *goredis.Client) contract.ChatSessionRepository {
	return &ChatSessionRepository{client: client}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("waiter:session:%s", id)
}

func (r *ChatSessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session entity.ChatSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

func (r *ChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	return r.Save(ctx, session)
}

func (r *ChatSessionRepository) Save(ctx context.Context, session *entity.ChatSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.Id, err)
	}
	return r.client.Set(ctx, sessionKey(session.Id), raw, 0).Err()
}
