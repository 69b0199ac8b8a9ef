package session

import (
	"context"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore backs sessions with an in-process cache. Suitable for tests
// and single-node development; production uses RedisStore.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore() Store {
	return &MemoryStore{
		cache: gocache.New(TTL, 10*TTL),
	}
}

func (s *MemoryStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	s.cache.Set(token, userID, TTL)
	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, found := s.cache.Get(token)
	if !found {
		return uuid.Nil, ErrNotFound
	}
	userID, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	return userID, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.cache.Delete(token)
	return nil
}
