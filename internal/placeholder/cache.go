package placeholder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is the injectable resolution cache owned by the resolver. Entries
// live for the process lifetime (memory backend) or until the store drops
// them (redis backend); the pipeline never invalidates or evicts. A racing
// duplicate computation is acceptable: keys are derived deterministically
// from inputs, so the worst case is one redundant external call.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// cacheKey derives the entry key from the first 100 characters of the
// template plus the industry and project name.
func cacheKey(template, industry, projectName string) string {
	prefix := template
	if len(prefix) > 100 {
		prefix = prefix[:100]
	}
	sum := sha256.Sum256([]byte(prefix + "|" + industry + "|" + projectName))
	return "resolve:" + hex.EncodeToString(sum[:])
}

// MemoryCache is the default in-process backend. Read/append-only under a
// RWMutex; entries are never evicted.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *MemoryCache) Set(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// NopCache disables caching entirely. Useful in tests asserting external
// call counts without cache interference.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, bool) { return "", false }
func (NopCache) Set(context.Context, string, string)        {}

// RedisCache shares resolved templates across instances. Failures degrade
// to a cache miss; a broken cache must never fail a resolution.
type RedisCache struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisCache(client *redis.Client, log *zap.Logger) *RedisCache {
	return &RedisCache{client: client, log: log}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("redis cache get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return v, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		c.log.Warn("redis cache set failed", zap.String("key", key), zap.Error(err))
	}
}
