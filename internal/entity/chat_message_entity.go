package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one role/content row of a session transcript. Immutable
// once created; the transcript only ever grows.
type ChatMessage struct {
	Id            uuid.UUID
	Chat          string
	Role          string // system | user | assistant
	ChatSessionId uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
