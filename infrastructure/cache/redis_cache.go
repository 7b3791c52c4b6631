package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/model"
)

const snapshotKeyPrefix = "cycle:videos:"

// NewCache connects to Redis and verifies the connection with a ping.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// RedisSnapshotCache stores aggregation snapshots as JSON values with a TTL.
// Clear scans the key prefix and deletes every snapshot, matching the
// coarse-grained invalidation policy.
type RedisSnapshotCache struct {
	client *redis.Client
}

func NewRedisSnapshotCache(client *redis.Client) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client}
}

func (c *RedisSnapshotCache) Get(ctx context.Context, key string) ([]model.Video, bool, error) {
	raw, err := c.client.Get(ctx, snapshotKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var videos []model.Video
	if err := json.Unmarshal(raw, &videos); err != nil {
		return nil, false, fmt.Errorf("decode cached snapshot: %w", err)
	}
	return videos, true, nil
}

func (c *RedisSnapshotCache) Set(ctx context.Context, key string, videos []model.Video, ttl time.Duration) error {
	raw, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return c.client.Set(ctx, snapshotKeyPrefix+key, raw, ttl).Err()
}

func (c *RedisSnapshotCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, snapshotKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
