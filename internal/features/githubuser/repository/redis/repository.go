package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/hereisnaman/api.gitfa.me/internal/common/errors"
	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/models"
	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/repository"
)

const userKey = "user:%s"

type redisRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewUserRepository creates a Redis-backed cache store. Records are written
// with the given TTL so Redis expires them without application involvement.
func NewUserRepository(client redis.Cmdable, ttl time.Duration) repository.UserRepository {
	return &redisRepository{
		client: client,
		ttl:    ttl,
	}
}

func key(username string) string {
	return fmt.Sprintf(userKey, strings.ToLower(username))
}

func (r *redisRepository) Get(ctx context.Context, username string) (*models.UserRecord, error) {
	data, err := r.client.Get(ctx, key(username)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewCacheError("get", err).WithDetail("username", username)
	}

	var record models.UserRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, apperrors.NewCacheError("decode", err).WithDetail("username", username)
	}
	return &record, nil
}

func (r *redisRepository) Upsert(ctx context.Context, record *models.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.NewCacheError("encode", err).WithDetail("username", record.Username)
	}

	if err := r.client.Set(ctx, key(record.Username), data, r.ttl).Err(); err != nil {
		return apperrors.NewCacheError("set", err).WithDetail("username", record.Username)
	}
	return nil
}
