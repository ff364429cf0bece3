package rediscache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sdejt/planaula-backend/internal/logger"
)

// GenerationTTL bounds how long a cached generation stays valid.
const GenerationTTL = 24 * time.Hour

// GenerationCache is a content-addressed store for raw generator output.
// Entries are written on success only; eviction is age-only.
type GenerationCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, text string, ttl time.Duration) error
}

// NewGenerationCache returns a redis-backed cache when REDIS_ADDR is set and
// an in-process cache otherwise.
func NewGenerationCache(log *logger.Logger) (GenerationCache, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Info("REDIS_ADDR not set, using in-memory generation cache")
		return NewMemoryCache(), nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisCache{
		log: log.With("service", "GenerationCache"),
		rdb: rdb,
	}, nil
}

type redisCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	text, err := c.rdb.Get(ctx, cacheKey(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return text, true, nil
}

func (c *redisCache) Set(ctx context.Context, key, text string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, cacheKey(key), text, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func cacheKey(key string) string { return "plangen:" + key }

type memoryEntry struct {
	text      string
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryCache builds the in-process fallback cache. It is also what tests
// use in place of redis.
func NewMemoryCache() GenerationCache {
	return &memoryCache{entries: map[string]memoryEntry{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return "", false, nil
	}
	return entry.text, true, nil
}

func (c *memoryCache) Set(_ context.Context, key, text string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{text: text, expiresAt: time.Now().Add(ttl)}
	return nil
}
