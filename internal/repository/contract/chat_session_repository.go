package contract

import (
	"context"

	"github.com/sajjad006/ardine-backend/internal/entity"

	"github.com/google/uuid"
)

// ChatSessionRepository is the session store consumed by the chat turn loop.
// Get returns (nil, nil) for an unknown id; the caller decides whether that
// means "mint a new session".
type ChatSessionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)
	Create(ctx context.Context, session *entity.ChatSession) error
	Save(ctx context.Context, session *entity.ChatSession) error
}
