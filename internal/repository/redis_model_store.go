package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

// RedisModelStore keeps the model artifact in Redis so several engine
// replicas share one trained model. SET replaces the value atomically.
type RedisModelStore struct {
	cli *redis.Client
	key string
}

func NewRedisModelStore(cli *redis.Client, key string) *RedisModelStore {
	if key == "" {
		key = "alpha:model:artifact"
	}
	return &RedisModelStore{cli: cli, key: key}
}

func (s *RedisModelStore) Save(ctx context.Context, blob []byte) error {
	if err := s.cli.Set(ctx, s.key, blob, 0).Err(); err != nil {
		return fmt.Errorf("save artifact to redis: %w", err)
	}
	return nil
}

func (s *RedisModelStore) Load(ctx context.Context) ([]byte, error) {
	blob, err := s.cli.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, models.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("load artifact from redis: %w", err)
	}
	return blob, nil
}
