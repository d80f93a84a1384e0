package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"

	"github.com/redis/go-redis/v9"
)

type SessionRepository interface {
	Save(id string, session *model.Session, ttl time.Duration) error
	// Find возвращает сессию и продлевает её TTL (скользящее истечение).
	Find(id string, ttl time.Duration) (*model.Session, error)
	Delete(id string) error
}

type sessionRepository struct {
	rdb *redis.Client
	ctx context.Context
}

func NewSessionRepository(rdb *redis.Client) (SessionRepository, error) {
	ctx := context.Background()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &sessionRepository{
		rdb: rdb,
		ctx: ctx,
	}, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *sessionRepository) Save(id string, session *model.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.rdb.Set(s.ctx, sessionKey(id), data, ttl).Err()
}

func (s *sessionRepository) Find(id string, ttl time.Duration) (*model.Session, error) {
	key := sessionKey(id)
	data, err := s.rdb.Get(s.ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	// Каждое обращение сдвигает момент истечения
	if err := s.rdb.Expire(s.ctx, key, ttl).Err(); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *sessionRepository) Delete(id string) error {
	return s.rdb.Del(s.ctx, sessionKey(id)).Err()
}
