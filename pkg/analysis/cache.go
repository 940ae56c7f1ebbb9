package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cocreatr/sceneline/internal/log"
	"github.com/cocreatr/sceneline/pkg/segment"
)

// cacheTTL bounds how long a detection result is reusable.
const cacheTTL = 24 * time.Hour

// Cache stores analysis results in Redis keyed by the file's identity (path,
// size, mtime), so re-reviewing an unchanged clip skips detection entirely.
// A nil *Cache is valid and always misses.
type Cache struct {
	rdb *redis.Client
}

// NewCache connects to Redis at addr. An empty addr disables caching by
// returning nil.
func NewCache(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

// Get returns a cached result for the file, if one exists for its current
// size and mtime. Cache errors degrade to a miss.
func (c *Cache) Get(ctx context.Context, videoPath string) (segment.Result, bool) {
	if c == nil {
		return segment.Result{}, false
	}
	key, err := cacheKey(videoPath)
	if err != nil {
		return segment.Result{}, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug("analysis cache get failed", "key", key, "error", err)
		}
		return segment.Result{}, false
	}
	var res segment.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return segment.Result{}, false
	}
	return res, true
}

// Put stores a result for the file's current identity. Failures are logged
// and otherwise ignored; the cache is best-effort.
func (c *Cache) Put(ctx context.Context, videoPath string, res segment.Result) {
	if c == nil {
		return
	}
	key, err := cacheKey(videoPath)
	if err != nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		log.Debug("analysis cache put failed", "key", key, "error", err)
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

func cacheKey(videoPath string) (string, error) {
	info, err := os.Stat(videoPath)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sceneline:analysis:%s:%d:%d",
		videoPath, info.Size(), info.ModTime().Unix()), nil
}
