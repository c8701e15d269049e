package repository

import (
	"context"
	"errors"
	"time"

	"gamerflow_service/internal/playback/domain"
	"gamerflow_service/pkg/database"
)

const sessionKeyPrefix = "playback:session:"

// SessionRepository playback session 存取 (TTL)
type SessionRepository interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type sessionRepository struct {
	kv database.RedisRepository[domain.Session]
}

// NewSessionRepository create SessionRepository on top of redis KV
func NewSessionRepository(kv database.RedisRepository[domain.Session]) SessionRepository {
	return &sessionRepository{kv: kv}
}

func (r *sessionRepository) Save(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	return r.kv.Set(ctx, sessionKeyPrefix+s.ID, *s, ttl)
}

func (r *sessionRepository) Find(ctx context.Context, id string) (*domain.Session, error) {
	s, err := r.kv.Get(ctx, sessionKeyPrefix+id)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Touch(ctx context.Context, id string, ttl time.Duration) error {
	return r.kv.ExtendTTL(ctx, sessionKeyPrefix+id, ttl)
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.kv.Del(ctx, sessionKeyPrefix+id)
}
