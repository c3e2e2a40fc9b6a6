package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"margadarsaka-be/pkg/store"
)

// SessionRepository keeps per-session assessment state in process memory.
// Entries expire with the user's session; nothing here is shared across
// sessions.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.AssessmentSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.AssessmentSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.AssessmentSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
