package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assessment is a submitted career test: the full answer set plus the
// recommendation text the model returned for it.
type Assessment struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Answers        []string
	Recommendation string
	CreatedAt      time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
