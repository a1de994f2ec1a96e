package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

type redisProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisProfileCache(rdb *redis.Client, ttl time.Duration) profile.Cache {
	return &redisProfileCache{rdb: rdb, ttl: ttl}
}

func profileKey(ownerID uuid.UUID) string { return "profile:" + ownerID.String() }

func (c *redisProfileCache) Get(ctx context.Context, ownerID uuid.UUID) (*profile.Record, error) {
	b, err := c.rdb.Get(ctx, profileKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, profile.ErrCacheMiss
		}
		return nil, err
	}
	var rec profile.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *redisProfileCache) Set(ctx context.Context, rec *profile.Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, profileKey(rec.OwnerID), b, c.ttl).Err()
}

func (c *redisProfileCache) Delete(ctx context.Context, ownerID uuid.UUID) error {
	return c.rdb.Del(ctx, profileKey(ownerID)).Err()
}
