package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/google/uuid"
)

// RefreshSession ties a refresh token to the user it was issued for.
type RefreshSession struct {
	Token     string
	UserId    uuid.UUID
	IssuedAt  time.Time
	IpAddress string
	UserAgent string
}

// SessionRepository stores refresh sessions in-process with a TTL. Sessions
// are deliberately not persisted: a restart logs everyone out, which is
// acceptable for this product.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *RefreshSession) {
	r.cache.Set(session.Token, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(token string) (*RefreshSession, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*RefreshSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(token string) {
	r.cache.Delete(token)
}
