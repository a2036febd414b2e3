package sessions

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mizusawa-dev/swimtrack/internal/domain/common/errorz"
)

// Storage keeps session tokens. A token maps to the user id that logged in
// with it and expires with the configured TTL.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

// Create issues a fresh token for the user.
func (s *Storage) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := s.redis.Set(ctx, token, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to its user id.
func (s *Storage) Get(ctx context.Context, token string) (uint, error) {
	data, err := s.redis.Get(ctx, token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, errorz.ErrInvalidSession
		}
		return 0, err
	}
	userID, err := strconv.ParseUint(data, 10, 64)
	if err != nil {
		return 0, errorz.ErrInvalidSession
	}
	return uint(userID), nil
}

// Delete ends the session.
func (s *Storage) Delete(ctx context.Context, token string) error {
	return s.redis.Del(ctx, token).Err()
}
